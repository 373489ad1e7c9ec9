package sitemap

import (
	"errors"
	"strings"
	"testing"

	"hantrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPOIRepo struct {
	pois []models.POI
	err  error
}

func (s *stubPOIRepo) GetByID(string) (*models.POI, error)     { return nil, s.err }
func (s *stubPOIRepo) GetByIDs([]string) ([]models.POI, error) { return nil, s.err }
func (s *stubPOIRepo) GetAll() ([]models.POI, error)           { return s.pois, s.err }

type stubContentRepo struct {
	subNames []string
	err      error
}

func (s *stubContentRepo) GetAll() ([]models.KContent, error)                  { return nil, s.err }
func (s *stubContentRepo) GetBySubName(string) ([]models.KContent, error)      { return nil, s.err }
func (s *stubContentRepo) GetByPOI(string) ([]models.KContent, error)          { return nil, s.err }
func (s *stubContentRepo) GetByCategory(models.Category) ([]models.KContent, error) {
	return nil, s.err
}
func (s *stubContentRepo) SubNames() ([]string, error) { return s.subNames, s.err }

type stubPackageRepo struct {
	pkgs []models.TravelPackage
	err  error
}

func (s *stubPackageRepo) GetByID(string) (*models.TravelPackage, error) { return nil, s.err }
func (s *stubPackageRepo) GetAll() ([]models.TravelPackage, error)       { return s.pkgs, s.err }
func (s *stubPackageRepo) GetByCategory(string) ([]models.TravelPackage, error) {
	return nil, s.err
}

func TestBuildIncludesDynamicEntries(t *testing.T) {
	svc := NewService("https://hantrip.example.com",
		&stubPOIRepo{pois: []models.POI{{ID: "poi-hybe"}}},
		&stubContentRepo{subNames: []string{"BTS"}},
		&stubPackageRepo{pkgs: []models.TravelPackage{{ID: "seoul-5d"}}},
		zap.NewNop())

	out, err := svc.Build()
	require.NoError(t, err)
	body := string(out)

	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>https://hantrip.example.com/</loc>")
	assert.Contains(t, body, "<loc>https://hantrip.example.com/pois/poi-hybe</loc>")
	assert.Contains(t, body, "<loc>https://hantrip.example.com/contents/spot/BTS</loc>")
	assert.Contains(t, body, "<loc>https://hantrip.example.com/packages/seoul-5d</loc>")
	assert.Contains(t, body, "/maps/route/")
	assert.Contains(t, body, "<changefreq>daily</changefreq>")
	assert.Contains(t, body, "<priority>1.0</priority>")
}

func TestBuildFallsBackToStaticOnDynamicFailure(t *testing.T) {
	boom := errors.New("mongo down")
	svc := NewService("https://hantrip.example.com",
		&stubPOIRepo{err: boom},
		&stubContentRepo{err: boom},
		&stubPackageRepo{err: boom},
		zap.NewNop())

	out, err := svc.Build()
	require.NoError(t, err)
	body := string(out)

	assert.Contains(t, body, "<loc>https://hantrip.example.com/maps</loc>")
	assert.Contains(t, body, "<loc>https://hantrip.example.com/contents</loc>")
	assert.NotContains(t, body, "/pois/")
	assert.NotContains(t, body, "/contents/spot/")
	assert.NotContains(t, body, "/packages/seoul")
}

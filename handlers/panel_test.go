package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hantrip/models"
	"hantrip/services/layout"
	"hantrip/services/panel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPOIRepo struct {
	pois []models.POI
}

func (s *stubPOIRepo) GetByID(id string) (*models.POI, error) {
	for i := range s.pois {
		if s.pois[i].ID == id {
			return &s.pois[i], nil
		}
	}
	return nil, nil
}

func (s *stubPOIRepo) GetByIDs(ids []string) ([]models.POI, error) {
	var out []models.POI
	for _, id := range ids {
		if p, _ := s.GetByID(id); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPOIRepo) GetAll() ([]models.POI, error) { return s.pois, nil }

type stubContentRepo struct{}

func (stubContentRepo) GetAll() ([]models.KContent, error) { return nil, nil }

func (stubContentRepo) GetBySubName(string) ([]models.KContent, error) { return nil, nil }

func (stubContentRepo) GetByPOI(string) ([]models.KContent, error) { return nil, nil }

func (stubContentRepo) GetByCategory(models.Category) ([]models.KContent, error) {
	return nil, nil
}

func (stubContentRepo) SubNames() ([]string, error) { return nil, nil }

type stubCart struct {
	items []models.CartItem
}

func (s *stubCart) Get(context.Context, string) ([]models.CartItem, error) { return s.items, nil }

func (s *stubCart) Add(_ context.Context, _ string, item models.CartItem) ([]models.CartItem, error) {
	s.items = append(s.items, item)
	return s.items, nil
}

func (s *stubCart) Remove(context.Context, string, string) ([]models.CartItem, error) {
	return s.items, nil
}

func (s *stubCart) Toggle(context.Context, string, models.CartItem) ([]models.CartItem, bool, error) {
	return s.items, false, nil
}

func (s *stubCart) Contains(context.Context, string, string) (bool, error) { return false, nil }

func (s *stubCart) Clear(context.Context, string) error { return nil }

func panelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	pois := &stubPOIRepo{pois: []models.POI{
		{ID: "poi-hybe", Name: models.Bilingual{EN: "HYBE Insight"}},
		{ID: "poi-gwangjang", Name: models.Bilingual{EN: "Gwangjang Market"}},
	}}
	carted := &stubCart{items: []models.CartItem{
		{ID: models.CartItemID(models.CartItemPOI, "poi-hybe"), Type: models.CartItemPOI, POIID: "poi-hybe"},
		{ID: models.CartItemID(models.CartItemPOI, "poi-gwangjang"), Type: models.CartItemPOI, POIID: "poi-gwangjang"},
	}}
	svc := panel.NewService(pois, stubContentRepo{}, carted, zap.NewNop())
	h := &PanelHandler{PanelService: svc}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("visitorID", "v1") })
	r.GET("/api/panel", h.GetPanelHandler)
	return r
}

func TestGetPanelHandlerCart(t *testing.T) {
	// The resolver answers the cart panel on the maps page when POIs are
	// carted; the panel endpoint must serve a body for that type.
	res := layout.Resolve(layout.Input{Path: "/maps", Intent: layout.WidthRoutes, CartHasPOIs: true})
	require.Equal(t, layout.PanelCart, res.Panel)

	r := panelRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/panel?type=cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "poi-hybe")
	assert.Contains(t, w.Body.String(), "poi-gwangjang")
}

func TestGetPanelHandlerUnknownType(t *testing.T) {
	r := panelRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/panel?type=bogus", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package panel

import (
	"context"
	"errors"
	"testing"

	"hantrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePOIRepo struct {
	pois []models.POI
	err  error
}

func (f *fakePOIRepo) GetByID(id string) (*models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.pois {
		if f.pois[i].ID == id {
			return &f.pois[i], nil
		}
	}
	return nil, nil
}

func (f *fakePOIRepo) GetByIDs(ids []string) ([]models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.POI
	for _, id := range ids {
		if p, _ := f.GetByID(id); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePOIRepo) GetAll() ([]models.POI, error) {
	return f.pois, f.err
}

type fakeContentRepo struct {
	contents []models.KContent
	err      error
}

func (f *fakeContentRepo) GetAll() ([]models.KContent, error) { return f.contents, f.err }

func (f *fakeContentRepo) GetBySubName(subName string) ([]models.KContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.KContent
	for _, c := range f.contents {
		if c.SubName.EN == subName || c.SubName.KO == subName {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) GetByPOI(poiID string) ([]models.KContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.KContent
	for _, c := range f.contents {
		if c.POIID == poiID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) GetByCategory(models.Category) ([]models.KContent, error) {
	return f.contents, f.err
}

func (f *fakeContentRepo) SubNames() ([]string, error) { return nil, f.err }

type fakeCart struct {
	items []models.CartItem
	err   error
}

func (f *fakeCart) Get(context.Context, string) ([]models.CartItem, error) { return f.items, f.err }

func (f *fakeCart) Add(_ context.Context, _ string, item models.CartItem) ([]models.CartItem, error) {
	f.items = append(f.items, item)
	return f.items, nil
}

func (f *fakeCart) Remove(context.Context, string, string) ([]models.CartItem, error) {
	return f.items, nil
}

func (f *fakeCart) Toggle(context.Context, string, models.CartItem) ([]models.CartItem, bool, error) {
	return f.items, false, nil
}

func (f *fakeCart) Contains(_ context.Context, _ string, itemID string) (bool, error) {
	for _, it := range f.items {
		if it.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCart) Clear(context.Context, string) error { return nil }

func seedService(t *testing.T) (*Service, *fakePOIRepo, *fakeContentRepo, *fakeCart) {
	t.Helper()
	pois := &fakePOIRepo{pois: []models.POI{
		{
			ID:         "poi-hybe",
			Name:       models.Bilingual{EN: "HYBE Insight", KO: "하이브 인사이트"},
			Address:    models.Bilingual{EN: "42 Hangang-daero, Yongsan-gu, Seoul"},
			Categories: []string{"kpop"},
			EntryFee:   "22,000 KRW",
		},
		{
			ID:      "poi-gwangjang",
			Name:    models.Bilingual{EN: "Gwangjang Market", KO: "광장시장"},
			Address: models.Bilingual{EN: "88 Changgyeonggung-ro, Jongno-gu, Seoul"},
		},
	}}
	contents := &fakeContentRepo{contents: []models.KContent{
		{ID: "c1", SubName: models.Bilingual{EN: "BTS"}, POIID: "poi-hybe", SpotName: "HYBE Insight", Category: models.CategoryKpop},
		{ID: "c2", SubName: models.Bilingual{EN: "BTS"}, POIID: "poi-missing", SpotName: "Mural Alley", Category: models.CategoryKpop},
	}}
	carted := &fakeCart{items: []models.CartItem{
		{ID: models.CartItemID(models.CartItemPOI, "poi-hybe"), Type: models.CartItemPOI, POIID: "poi-hybe"},
	}}
	return NewService(pois, contents, carted, zap.NewNop()), pois, contents, carted
}

func TestStaticNav(t *testing.T) {
	svc, _, _, _ := seedService(t)

	p := svc.StaticNav("contents", "ko")
	assert.Equal(t, "contents", p.Panel)
	require.NotEmpty(t, p.Links)
	assert.Equal(t, "/contents/kpop", p.Links[0].Href)

	// Unknown panel and language fall back rather than failing.
	p = svc.StaticNav("bogus", "fr")
	assert.Equal(t, "home", p.Panel)
	assert.NotEmpty(t, p.Links)
}

func TestRoutePanelTabs(t *testing.T) {
	svc, _, _, _ := seedService(t)
	rt := &models.Route{
		ID:         "seoul-palace-walk",
		Name:       "Seoul Palace Walk",
		Start:      models.RouteLocation{Address: "161 Sajik-ro"},
		End:        models.RouteLocation{Address: "Insadong-gil"},
		Transport:  []string{"walk", "subway"},
		Duration:   "4 hours",
		Distance:   "3.2 km",
		Difficulty: models.DifficultyEasy,
		Waypoints:  []models.RouteLocation{{Name: "Bukchon Hanok Village"}},
	}

	p := svc.RoutePanel(rt)
	assert.Equal(t, []string{"home", "reviews", "photos", "info"}, p.Tabs)
	require.NotEmpty(t, p.Home)
	assert.True(t, p.Home[0].Copyable)
	assert.Equal(t, "161 Sajik-ro", p.Home[0].Value)
	assert.Equal(t, "walk, subway", p.Home[2].Value)
	assert.Len(t, p.Waypoints, 1)
}

func TestSearchPanelPOICard(t *testing.T) {
	svc, _, _, _ := seedService(t)

	p := svc.SearchPanel(context.Background(), "v1", &models.Selection{Type: models.SelectionPOI, POIID: "poi-hybe"}, "en")
	require.NotNil(t, p.Card)
	assert.Empty(t, p.Error)
	assert.Equal(t, "poi-hybe", p.Card.POI.ID)
	assert.True(t, p.Card.InCart)
	assert.Len(t, p.Card.Contents, 1)
	assert.Equal(t, "/pois/poi-hybe", p.Card.DetailsLink)
}

func TestSearchPanelContentCard(t *testing.T) {
	svc, _, _, _ := seedService(t)

	p := svc.SearchPanel(context.Background(), "v1", &models.Selection{Type: models.SelectionContent, SubName: "BTS"}, "en")
	require.NotNil(t, p.Card)
	assert.False(t, p.Card.InCart)
	require.Len(t, p.Card.Related, 2)

	// Resolvable POI keeps its drill-down target; a dangling reference does not.
	assert.Equal(t, "poi-hybe", p.Card.Related[0].POIID)
	assert.Empty(t, p.Card.Related[1].POIID)
}

func TestSearchPanelInlineErrors(t *testing.T) {
	svc, pois, _, _ := seedService(t)

	p := svc.SearchPanel(context.Background(), "v1", &models.Selection{Type: models.SelectionPOI, POIID: "nope"}, "en")
	assert.Nil(t, p.Card)
	assert.Equal(t, "place not found", p.Error)

	pois.err = errors.New("mongo down")
	p = svc.SearchPanel(context.Background(), "v1", &models.Selection{Type: models.SelectionPOI, POIID: "poi-hybe"}, "en")
	assert.Nil(t, p.Card)
	assert.NotEmpty(t, p.Error)
}

func TestDrillDown(t *testing.T) {
	svc, _, _, _ := seedService(t)

	sel, err := svc.DrillDown(context.Background(), "poi-hybe", "ko")
	require.NoError(t, err)
	assert.Equal(t, models.SelectionPOI, sel.Type)
	assert.Equal(t, "하이브 인사이트", sel.Name)

	_, err = svc.DrillDown(context.Background(), "poi-missing", "en")
	assert.Error(t, err)
}

func TestCartList(t *testing.T) {
	t.Run("carted places in cart order", func(t *testing.T) {
		svc, _, _, carted := seedService(t)
		carted.items = append(carted.items, models.CartItem{
			ID:    models.CartItemID(models.CartItemPOI, "poi-gwangjang"),
			Type:  models.CartItemPOI,
			POIID: "poi-gwangjang",
		})

		p := svc.CartList(context.Background(), "v1", "en")
		assert.False(t, p.Empty)
		require.Len(t, p.Rows, 2)
		assert.Equal(t, "poi-hybe", p.Rows[0].POIID)
		assert.Equal(t, "poi-gwangjang", p.Rows[1].POIID)
		for i, row := range p.Rows {
			assert.Equal(t, i+1, row.Index)
			assert.Equal(t, 2, row.Total)
			assert.True(t, row.InCart)
		}
	})

	t.Run("empty cart yields the empty state", func(t *testing.T) {
		svc, _, _, carted := seedService(t)
		carted.items = nil

		p := svc.CartList(context.Background(), "v1", "en")
		assert.True(t, p.Empty)
		assert.Empty(t, p.Rows)
		assert.NotEmpty(t, p.Message)
	})

	t.Run("empty state on cart failure", func(t *testing.T) {
		svc, _, _, carted := seedService(t)
		carted.err = errors.New("redis down")

		p := svc.CartList(context.Background(), "v1", "en")
		assert.True(t, p.Empty)
		assert.Empty(t, p.Rows)
	})
}

func TestCompanionList(t *testing.T) {
	svc, pois, _, _ := seedService(t)

	t.Run("stable order with positions and cart flags", func(t *testing.T) {
		p := svc.CompanionList(context.Background(), "v1", "en")
		require.Len(t, p.Rows, 2)
		assert.False(t, p.Empty)

		first := svc.CompanionList(context.Background(), "v1", "en")
		assert.Equal(t, p.Rows, first.Rows)

		byID := map[string]CompanionRow{}
		for i, row := range p.Rows {
			assert.Equal(t, i+1, row.Index)
			assert.Equal(t, 2, row.Total)
			byID[row.POIID] = row
		}
		assert.True(t, byID["poi-hybe"].InCart)
		assert.False(t, byID["poi-gwangjang"].InCart)
		assert.Equal(t, "kpop", byID["poi-hybe"].Category)
	})

	t.Run("caps the list length", func(t *testing.T) {
		for i := 0; i < 30; i++ {
			pois.pois = append(pois.pois, models.POI{ID: string(rune('A' + i))})
		}
		p := svc.CompanionList(context.Background(), "v1", "en")
		assert.Len(t, p.Rows, CompanionListLimit)
	})

	t.Run("empty state on fetch failure", func(t *testing.T) {
		pois.err = errors.New("mongo down")
		p := svc.CompanionList(context.Background(), "v1", "en")
		assert.True(t, p.Empty)
		assert.Empty(t, p.Rows)
		assert.NotEmpty(t, p.Message)
	})
}

// Package panel assembles side-panel body payloads for the resolved panel
// types. A data fetch failure never fails the surrounding layout: the search
// panel degrades to an inline error payload and the maps companion list to an
// empty state.
package panel

import (
	"context"
	"fmt"
	"strings"

	contentRepo "hantrip/database/repository/content"
	poiRepo "hantrip/database/repository/poi"
	"hantrip/models"
	"hantrip/services/cart"
	"hantrip/services/search"

	"go.uber.org/zap"
)

// CompanionListLimit caps the maps companion list.
const CompanionListLimit = 20

// NavLink is one entry in a static navigation panel.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NavPayload is the body for the home, contents and info panels. The link
// lists are hand-authored and carry no data dependency.
type NavPayload struct {
	Panel string    `json:"panel"`
	Links []NavLink `json:"links"`
}

// Field is a labelled value; copyable fields get a copy affordance in the UI.
type Field struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Copyable bool   `json:"copyable,omitempty"`
}

// RoutePayload is the body for the route panel.
type RoutePayload struct {
	Route     models.Route           `json:"route"`
	Tabs      []string               `json:"tabs"`
	Home      []Field                `json:"home"`
	Info      []Field                `json:"info"`
	Waypoints []models.RouteLocation `json:"waypoints"`
}

// RelatedSpot is a sibling place sharing the card's content grouping. When the
// POI resolves, tapping it drills down into that POI.
type RelatedSpot struct {
	ContentID string `json:"contentId"`
	Name      string `json:"name"`
	POIID     string `json:"poiId,omitempty"`
	SpotName  string `json:"spotName,omitempty"`
}

// DetailCard is the resolved search-selection card.
type DetailCard struct {
	Kind        models.SelectionType `json:"kind"`
	POI         *models.POI          `json:"poi,omitempty"`
	Contents    []models.KContent    `json:"contents,omitempty"`
	InCart      bool                 `json:"inCart"`
	Related     []RelatedSpot        `json:"related,omitempty"`
	DetailsLink string               `json:"detailsLink,omitempty"`
}

// SearchPayload is the body for the search panel. Exactly one of Card and
// Error is meaningful.
type SearchPayload struct {
	Card  *DetailCard `json:"card,omitempty"`
	Error string      `json:"error,omitempty"`
}

// CompanionRow is one row of the maps companion list.
type CompanionRow struct {
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	POIID    string `json:"poiId"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Address  string `json:"address"`
	EntryFee string `json:"entryFee,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	InCart   bool   `json:"inCart"`
}

// CompanionPayload is the body for the maps companion list.
type CompanionPayload struct {
	Rows    []CompanionRow `json:"rows"`
	Empty   bool           `json:"empty,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Service assembles the panel bodies.
type Service struct {
	pois     poiRepo.POIRepository
	contents contentRepo.KContentRepository
	carts    cart.Service
	logger   *zap.Logger
}

// NewService creates the panel service.
func NewService(pois poiRepo.POIRepository, contents contentRepo.KContentRepository, carts cart.Service, logger *zap.Logger) *Service {
	return &Service{pois: pois, contents: contents, carts: carts, logger: logger}
}

var navLinks = map[string]map[string][]NavLink{
	"home": {
		"en": {
			{Label: "Explore the map", Href: "/maps"},
			{Label: "K-culture contents", Href: "/contents"},
			{Label: "Travel packages", Href: "/packages"},
			{Label: "Curated routes", Href: "/maps/route"},
		},
		"ko": {
			{Label: "지도 둘러보기", Href: "/maps"},
			{Label: "K-컬처 콘텐츠", Href: "/contents"},
			{Label: "여행 패키지", Href: "/packages"},
			{Label: "추천 루트", Href: "/maps/route"},
		},
	},
	"contents": {
		"en": {
			{Label: "K-pop spots", Href: "/contents/kpop"},
			{Label: "K-beauty", Href: "/contents/kbeauty"},
			{Label: "K-food", Href: "/contents/kfood"},
			{Label: "Festivals", Href: "/contents/kfestival"},
			{Label: "K-drama locations", Href: "/contents/kdrama"},
		},
		"ko": {
			{Label: "K-팝 스팟", Href: "/contents/kpop"},
			{Label: "K-뷰티", Href: "/contents/kbeauty"},
			{Label: "K-푸드", Href: "/contents/kfood"},
			{Label: "페스티벌", Href: "/contents/kfestival"},
			{Label: "K-드라마 촬영지", Href: "/contents/kdrama"},
		},
	},
	"info": {
		"en": {
			{Label: "Getting around", Href: "/info/transport"},
			{Label: "T-money and payments", Href: "/info/payments"},
			{Label: "Emergency contacts", Href: "/info/emergency"},
		},
		"ko": {
			{Label: "교통 안내", Href: "/info/transport"},
			{Label: "티머니와 결제", Href: "/info/payments"},
			{Label: "긴급 연락처", Href: "/info/emergency"},
		},
	},
}

// StaticNav returns the hand-authored nav list for the home, contents and
// info panels. Unknown panels and languages fall back to home/English.
func (s *Service) StaticNav(panel, lang string) *NavPayload {
	byLang, ok := navLinks[panel]
	if !ok {
		panel = "home"
		byLang = navLinks[panel]
	}
	links, ok := byLang[lang]
	if !ok {
		links = byLang["en"]
	}
	return &NavPayload{Panel: panel, Links: links}
}

// RoutePanel builds the route panel body: header data, a fixed tab set, the
// copyable home-tab fields and the structured info-tab fields.
func (s *Service) RoutePanel(rt *models.Route) *RoutePayload {
	return &RoutePayload{
		Route: *rt,
		Tabs:  []string{"home", "reviews", "photos", "info"},
		Home: []Field{
			{Label: "Start", Value: rt.Start.Address, Copyable: true},
			{Label: "End", Value: rt.End.Address, Copyable: true},
			{Label: "Transport", Value: joinComma(rt.Transport)},
			{Label: "Duration", Value: rt.Duration},
		},
		Info: []Field{
			{Label: "Distance", Value: rt.Distance},
			{Label: "Difficulty", Value: string(rt.Difficulty)},
			{Label: "Tags", Value: joinComma(rt.Tags)},
		},
		Waypoints: rt.Waypoints,
	}
}

// SearchPanel resolves the active selection into a detail card. Fetch
// failures produce an inline error payload, not a failed response.
func (s *Service) SearchPanel(ctx context.Context, visitorID string, sel *models.Selection, lang string) *SearchPayload {
	if sel == nil {
		return &SearchPayload{}
	}

	switch sel.Type {
	case models.SelectionPOI:
		return s.poiCard(ctx, visitorID, sel.POIID, lang)
	case models.SelectionContent:
		return s.contentCard(ctx, visitorID, sel.SubName, lang)
	default:
		return &SearchPayload{Error: "nothing selected"}
	}
}

func (s *Service) poiCard(ctx context.Context, visitorID, poiID, lang string) *SearchPayload {
	poi, err := s.pois.GetByID(poiID)
	if err != nil {
		s.logger.Error("failed to load POI for search panel", zap.String("poiId", poiID), zap.Error(err))
		return &SearchPayload{Error: "failed to load place details"}
	}
	if poi == nil {
		return &SearchPayload{Error: "place not found"}
	}

	contents, err := s.contents.GetByPOI(poiID)
	if err != nil {
		s.logger.Warn("failed to load contents for POI card", zap.String("poiId", poiID), zap.Error(err))
		contents = nil
	}

	card := &DetailCard{
		Kind:        models.SelectionPOI,
		POI:         poi,
		Contents:    contents,
		InCart:      s.inCart(ctx, visitorID, models.CartItemID(models.CartItemPOI, poiID)),
		DetailsLink: "/pois/" + poiID,
	}
	return &SearchPayload{Card: card}
}

func (s *Service) contentCard(ctx context.Context, visitorID, subName, lang string) *SearchPayload {
	contents, err := s.contents.GetBySubName(subName)
	if err != nil {
		s.logger.Error("failed to load contents for search panel", zap.String("subName", subName), zap.Error(err))
		return &SearchPayload{Error: "failed to load contents"}
	}
	if len(contents) == 0 {
		return &SearchPayload{Error: "contents not found"}
	}

	card := &DetailCard{
		Kind:        models.SelectionContent,
		Contents:    contents,
		InCart:      s.inCart(ctx, visitorID, models.CartItemID(models.CartItemContent, subName)),
		Related:     s.relatedSpots(contents, lang),
		DetailsLink: "/contents/spot/" + subName,
	}
	return &SearchPayload{Card: card}
}

// relatedSpots lists the grouping's sibling places. A dangling POI reference
// keeps the row but without a drill-down target.
func (s *Service) relatedSpots(contents []models.KContent, lang string) []RelatedSpot {
	ids := make([]string, 0, len(contents))
	for _, c := range contents {
		if c.POIID != "" {
			ids = append(ids, c.POIID)
		}
	}
	resolved := map[string]bool{}
	if pois, err := s.pois.GetByIDs(ids); err == nil {
		for _, p := range pois {
			resolved[p.ID] = true
		}
	} else {
		s.logger.Warn("failed to resolve related spot POIs", zap.Error(err))
	}

	spots := make([]RelatedSpot, 0, len(contents))
	for _, c := range contents {
		spot := RelatedSpot{
			ContentID: c.ID,
			Name:      c.SubName.Pick(lang),
			SpotName:  c.SpotName,
		}
		if resolved[c.POIID] {
			spot.POIID = c.POIID
		}
		spots = append(spots, spot)
	}
	return spots
}

// DrillDown resolves a related spot's POI into a fresh selection. Returns an
// error when the POI does not resolve, in which case the selection stays.
func (s *Service) DrillDown(ctx context.Context, poiID, lang string) (*models.Selection, error) {
	poi, err := s.pois.GetByID(poiID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve spot: %w", err)
	}
	if poi == nil {
		return nil, fmt.Errorf("spot %s not found", poiID)
	}
	return &models.Selection{
		Type:  models.SelectionPOI,
		POIID: poi.ID,
		Name:  poi.Name.Pick(lang),
	}, nil
}

// CompanionList builds the maps companion list: up to CompanionListLimit POIs
// in stable pseudo-shuffled order, each row carrying its position and cart
// flag. A fetch failure produces the empty state.
func (s *Service) CompanionList(ctx context.Context, visitorID, lang string) *CompanionPayload {
	pois, err := s.pois.GetAll()
	if err != nil {
		s.logger.Error("failed to load POIs for companion list", zap.Error(err))
		return &CompanionPayload{Empty: true, Message: "places are unavailable right now"}
	}
	if len(pois) == 0 {
		return &CompanionPayload{Empty: true, Message: "no places to show"}
	}

	ordered := search.StableOrder(pois)
	if len(ordered) > CompanionListLimit {
		ordered = ordered[:CompanionListLimit]
	}

	carted := s.cartIDs(ctx, visitorID)
	rows := make([]CompanionRow, len(ordered))
	for i, poi := range ordered {
		rows[i] = CompanionRow{
			Index:    i + 1,
			Total:    len(ordered),
			POIID:    poi.ID,
			Name:     poi.Name.Pick(lang),
			Category: poi.PrimaryCategory(),
			Address:  poi.Address.Pick(lang),
			EntryFee: poi.EntryFee,
			ImageURL: poi.ImageURL,
			InCart:   carted[models.CartItemID(models.CartItemPOI, poi.ID)],
		}
	}
	return &CompanionPayload{Rows: rows}
}

// CartList builds the cart panel body: the carted POIs in the order they were
// added, in the same row shape as the companion list. Failures and an empty
// cart both degrade to the empty state.
func (s *Service) CartList(ctx context.Context, visitorID, lang string) *CompanionPayload {
	if s.carts == nil || visitorID == "" {
		return &CompanionPayload{Empty: true, Message: "your trip cart is empty"}
	}

	items, err := s.carts.Get(ctx, visitorID)
	if err != nil {
		s.logger.Error("failed to load cart for cart panel", zap.Error(err))
		return &CompanionPayload{Empty: true, Message: "your trip cart is unavailable right now"}
	}

	ids := cart.POIIDs(items)
	if len(ids) == 0 {
		return &CompanionPayload{Empty: true, Message: "your trip cart is empty"}
	}

	pois, err := s.pois.GetByIDs(ids)
	if err != nil {
		s.logger.Error("failed to load carted POIs", zap.Error(err))
		return &CompanionPayload{Empty: true, Message: "places are unavailable right now"}
	}
	if len(pois) == 0 {
		return &CompanionPayload{Empty: true, Message: "your trip cart is empty"}
	}

	rows := make([]CompanionRow, len(pois))
	for i, poi := range pois {
		rows[i] = CompanionRow{
			Index:    i + 1,
			Total:    len(pois),
			POIID:    poi.ID,
			Name:     poi.Name.Pick(lang),
			Category: poi.PrimaryCategory(),
			Address:  poi.Address.Pick(lang),
			EntryFee: poi.EntryFee,
			ImageURL: poi.ImageURL,
			InCart:   true,
		}
	}
	return &CompanionPayload{Rows: rows}
}

func (s *Service) inCart(ctx context.Context, visitorID, itemID string) bool {
	if s.carts == nil || visitorID == "" {
		return false
	}
	in, err := s.carts.Contains(ctx, visitorID, itemID)
	if err != nil {
		s.logger.Warn("failed to check cart membership", zap.String("itemId", itemID), zap.Error(err))
		return false
	}
	return in
}

func (s *Service) cartIDs(ctx context.Context, visitorID string) map[string]bool {
	ids := map[string]bool{}
	if s.carts == nil || visitorID == "" {
		return ids
	}
	items, err := s.carts.Get(ctx, visitorID)
	if err != nil {
		s.logger.Warn("failed to load cart for companion list", zap.Error(err))
		return ids
	}
	for _, it := range items {
		ids[it.ID] = true
	}
	return ids
}

func joinComma(parts []string) string {
	return strings.Join(parts, ", ")
}

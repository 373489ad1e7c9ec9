// Package maps bridges third-party map SDKs to the app's POI, cart, and
// selection state. The app-level logic (numbered icons, cart-order polyline,
// marker-click selection) is written once; providers differ only in their
// readiness probes.
package maps

import (
	"context"
	"strings"

	"hantrip/models"

	"go.uber.org/zap"
)

// ViewInput is everything needed to build a map view.
type ViewInput struct {
	Center models.GeoPoint
	Zoom   int
	POIs   []models.POI
	// CartOrder maps POI id to its 1-based position in the cart.
	CartOrder    map[string]int
	HasSelection bool
	RouteEnabled bool
	Lang         string
}

// Marker is one map pin.
type Marker struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Position models.GeoPoint `json:"position"`
	Icon     string          `json:"icon"`
	Number   int             `json:"number,omitempty"`
}

// View is the serialized map state handed to the client SDK.
type View struct {
	Provider string            `json:"provider"`
	Center   models.GeoPoint   `json:"center"`
	Zoom     int               `json:"zoom"`
	Markers  []Marker          `json:"markers"`
	Polyline []models.GeoPoint `json:"polyline,omitempty"`
}

// Adapter is the provider-facing surface. Implementations must not assume
// the SDK is available synchronously.
type Adapter interface {
	Provider() string
	// Ready blocks until the provider answers its readiness probe or the
	// bounded retry budget is spent.
	Ready(ctx context.Context) error
	BuildView(in ViewInput) *View
	// ResolveMarkerClick maps a marker id (or, as a fallback, a marker DOM
	// title) to a POI selection. Returns nil when nothing matches.
	ResolveMarkerClick(idOrTitle string, pois []models.POI, lang string) *models.Selection
}

const markerIDPrefix = "poi:"

// MarkerID derives the marker id for a POI.
func MarkerID(poiID string) string {
	return markerIDPrefix + poiID
}

// BuildView assembles markers and the cart polyline for any provider. A POI
// gets a numbered pin only while it is in the cart and no search result is
// active; a POI without a valid location is skipped and logged, never fatal.
func BuildView(provider string, in ViewInput, logger *zap.Logger) *View {
	view := &View{Provider: provider, Center: in.Center, Zoom: in.Zoom}

	for _, poi := range in.POIs {
		if poi.Location == nil || !poi.Location.Valid() {
			logger.Warn("skipping marker without a usable location",
				zap.String("provider", provider),
				zap.String("poiId", poi.ID))
			continue
		}

		m := Marker{
			ID:       MarkerID(poi.ID),
			Title:    poi.Name.Pick(in.Lang),
			Position: *poi.Location,
		}
		if n, ok := in.CartOrder[poi.ID]; ok && !in.HasSelection {
			m.Number = n
			m.Icon = NumberedPinIcon(n)
		} else {
			m.Icon = DefaultPinIcon()
		}
		view.Markers = append(view.Markers, m)
	}

	view.Polyline = cartPolyline(in)
	return view
}

// cartPolyline connects cart POIs in cart order. It is drawn only when route
// display is enabled and at least two carted POIs with usable coordinates are
// present in the loaded list; it is independent of the active selection.
func cartPolyline(in ViewInput) []models.GeoPoint {
	if !in.RouteEnabled || len(in.CartOrder) < 2 {
		return nil
	}

	ordered := make([]models.POI, 0, len(in.CartOrder))
	for _, poi := range in.POIs {
		if _, ok := in.CartOrder[poi.ID]; ok && poi.Location != nil && poi.Location.Valid() {
			ordered = append(ordered, poi)
		}
	}
	if len(ordered) < 2 {
		return nil
	}

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if in.CartOrder[ordered[j].ID] < in.CartOrder[ordered[i].ID] {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}

	line := make([]models.GeoPoint, len(ordered))
	for i, poi := range ordered {
		line[i] = *poi.Location
	}
	return line
}

// resolveMarkerClick is the shared id-then-title lookup. Some SDKs do not
// expose reliable click targets, so a DOM title match is the fallback.
func resolveMarkerClick(idOrTitle string, pois []models.POI, lang string) *models.Selection {
	if id, ok := strings.CutPrefix(idOrTitle, markerIDPrefix); ok {
		for _, poi := range pois {
			if poi.ID == id {
				return poiSelection(poi, lang)
			}
		}
	}
	for _, poi := range pois {
		if poi.Name.EN == idOrTitle || poi.Name.KO == idOrTitle {
			return poiSelection(poi, lang)
		}
	}
	return nil
}

func poiSelection(poi models.POI, lang string) *models.Selection {
	return &models.Selection{
		Type:  models.SelectionPOI,
		POIID: poi.ID,
		Name:  poi.Name.Pick(lang),
	}
}

// models/route.go
package models

// Difficulty grades a route.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// RouteLocation is a named place on a route.
type RouteLocation struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location GeoPoint `json:"location"`
}

// RouteMarker is a named marker in a route's map data.
type RouteMarker struct {
	Name     string   `json:"name"`
	Location GeoPoint `json:"location"`
}

// RouteMapData describes how a route is drawn.
type RouteMapData struct {
	Center   GeoPoint      `json:"center"`
	Zoom     int           `json:"zoom"`
	Bounds   [2]GeoPoint   `json:"bounds"`
	Polyline []GeoPoint    `json:"polyline"`
	Markers  []RouteMarker `json:"markers"`
}

// Route is a curated travel route from the static in-code catalog; routes are
// not database-backed.
type Route struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Start       RouteLocation   `json:"start"`
	End         RouteLocation   `json:"end"`
	Waypoints   []RouteLocation `json:"waypoints,omitempty"`
	Duration    string          `json:"duration"`
	Distance    string          `json:"distance"`
	Transport   []string        `json:"transport"`
	Difficulty  Difficulty      `json:"difficulty"`
	Tags        []string        `json:"tags"`
	MapData     RouteMapData    `json:"mapData"`
}

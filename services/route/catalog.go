// Package route serves the curated travel-route catalog. Routes are authored
// in code, not the database.
package route

import "hantrip/models"

var catalog = []models.Route{
	{
		ID:          "seoul-palace-walk",
		Name:        "Seoul Palace Walk",
		Description: "A half-day walk linking Gyeongbokgung, Bukchon Hanok Village and Insadong.",
		Start: models.RouteLocation{
			Name:     "Gyeongbokgung Palace",
			Address:  "161 Sajik-ro, Jongno-gu, Seoul",
			Location: models.GeoPoint{Lng: 126.9770, Lat: 37.5796},
		},
		End: models.RouteLocation{
			Name:     "Insadong Culture Street",
			Address:  "Insadong-gil, Jongno-gu, Seoul",
			Location: models.GeoPoint{Lng: 126.9850, Lat: 37.5744},
		},
		Waypoints: []models.RouteLocation{
			{
				Name:     "Bukchon Hanok Village",
				Address:  "37 Gyedong-gil, Jongno-gu, Seoul",
				Location: models.GeoPoint{Lng: 126.9850, Lat: 37.5826},
			},
		},
		Duration:   "4 hours",
		Distance:   "3.2 km",
		Transport:  []string{"walk"},
		Difficulty: models.DifficultyEasy,
		Tags:       []string{"history", "hanok", "palace"},
		MapData: models.RouteMapData{
			Center: models.GeoPoint{Lng: 126.9820, Lat: 37.5790},
			Zoom:   14,
			Bounds: [2]models.GeoPoint{
				{Lng: 126.9700, Lat: 37.5700},
				{Lng: 126.9900, Lat: 37.5870},
			},
			Polyline: []models.GeoPoint{
				{Lng: 126.9770, Lat: 37.5796},
				{Lng: 126.9850, Lat: 37.5826},
				{Lng: 126.9850, Lat: 37.5744},
			},
			Markers: []models.RouteMarker{
				{Name: "Gyeongbokgung Palace", Location: models.GeoPoint{Lng: 126.9770, Lat: 37.5796}},
				{Name: "Bukchon Hanok Village", Location: models.GeoPoint{Lng: 126.9850, Lat: 37.5826}},
				{Name: "Insadong Culture Street", Location: models.GeoPoint{Lng: 126.9850, Lat: 37.5744}},
			},
		},
	},
	{
		ID:          "hongdae-kpop-night",
		Name:        "Hongdae K-pop Night",
		Description: "Evening route through Hongdae's busking streets, record shops and K-pop landmarks.",
		Start: models.RouteLocation{
			Name:     "Hongik Univ. Station Exit 9",
			Address:  "Yanghwa-ro, Mapo-gu, Seoul",
			Location: models.GeoPoint{Lng: 126.9237, Lat: 37.5571},
		},
		End: models.RouteLocation{
			Name:     "KT&G Sangsang Madang",
			Address:  "65 Eoulmadang-ro, Mapo-gu, Seoul",
			Location: models.GeoPoint{Lng: 126.9205, Lat: 37.5507},
		},
		Duration:   "3 hours",
		Distance:   "2.1 km",
		Transport:  []string{"walk", "subway"},
		Difficulty: models.DifficultyEasy,
		Tags:       []string{"kpop", "nightlife", "busking"},
		MapData: models.RouteMapData{
			Center: models.GeoPoint{Lng: 126.9221, Lat: 37.5539},
			Zoom:   15,
			Bounds: [2]models.GeoPoint{
				{Lng: 126.9150, Lat: 37.5480},
				{Lng: 126.9290, Lat: 37.5600},
			},
			Polyline: []models.GeoPoint{
				{Lng: 126.9237, Lat: 37.5571},
				{Lng: 126.9221, Lat: 37.5539},
				{Lng: 126.9205, Lat: 37.5507},
			},
			Markers: []models.RouteMarker{
				{Name: "Hongik Univ. Station Exit 9", Location: models.GeoPoint{Lng: 126.9237, Lat: 37.5571}},
				{Name: "KT&G Sangsang Madang", Location: models.GeoPoint{Lng: 126.9205, Lat: 37.5507}},
			},
		},
	},
	{
		ID:          "busan-coastal-day",
		Name:        "Busan Coastal Day",
		Description: "Haeundae Beach to Haedong Yonggungsa along the coastal line, with a seafood stop at Millak.",
		Start: models.RouteLocation{
			Name:     "Haeundae Beach",
			Address:  "Haeundae-gu, Busan",
			Location: models.GeoPoint{Lng: 129.1604, Lat: 35.1587},
		},
		End: models.RouteLocation{
			Name:     "Haedong Yonggungsa Temple",
			Address:  "86 Yonggung-gil, Gijang-gun, Busan",
			Location: models.GeoPoint{Lng: 129.2233, Lat: 35.1884},
		},
		Waypoints: []models.RouteLocation{
			{
				Name:     "Millak Waterside Park",
				Address:  "Millak-dong, Suyeong-gu, Busan",
				Location: models.GeoPoint{Lng: 129.1282, Lat: 35.1551},
			},
		},
		Duration:   "7 hours",
		Distance:   "14 km",
		Transport:  []string{"bus", "walk"},
		Difficulty: models.DifficultyModerate,
		Tags:       []string{"coast", "temple", "kfood"},
		MapData: models.RouteMapData{
			Center: models.GeoPoint{Lng: 129.1750, Lat: 35.1700},
			Zoom:   12,
			Bounds: [2]models.GeoPoint{
				{Lng: 129.1200, Lat: 35.1500},
				{Lng: 129.2300, Lat: 35.1900},
			},
			Polyline: []models.GeoPoint{
				{Lng: 129.1604, Lat: 35.1587},
				{Lng: 129.1282, Lat: 35.1551},
				{Lng: 129.2233, Lat: 35.1884},
			},
			Markers: []models.RouteMarker{
				{Name: "Haeundae Beach", Location: models.GeoPoint{Lng: 129.1604, Lat: 35.1587}},
				{Name: "Millak Waterside Park", Location: models.GeoPoint{Lng: 129.1282, Lat: 35.1551}},
				{Name: "Haedong Yonggungsa Temple", Location: models.GeoPoint{Lng: 129.2233, Lat: 35.1884}},
			},
		},
	},
}

// All returns the full catalog.
func All() []models.Route {
	out := make([]models.Route, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns the route with the given id, or nil.
func ByID(id string) *models.Route {
	for i := range catalog {
		if catalog[i].ID == id {
			r := catalog[i]
			return &r
		}
	}
	return nil
}

// ResolveSelected resolves the active route: an explicit selection takes
// precedence over an id parsed from the URL. Unknown ids resolve to nil.
func ResolveSelected(selectedID, urlID string) *models.Route {
	if selectedID != "" {
		if r := ByID(selectedID); r != nil {
			return r
		}
	}
	if urlID != "" {
		return ByID(urlID)
	}
	return nil
}

// models/travel_package.go
package models

// ItineraryDay is a single day in a package itinerary.
type ItineraryDay struct {
	Day        int      `bson:"day" json:"day"`
	City       string   `bson:"city" json:"city"`
	Activities []string `bson:"activities" json:"activities"`
}

// TravelPackage is a curated multi-day tour offering. Itinerary length is
// expected to match Duration but is not enforced; it is display data only.
type TravelPackage struct {
	ID         string         `bson:"id" json:"id"`
	Name       string         `bson:"name" json:"name"`
	Duration   int            `bson:"duration" json:"duration"`
	Concept    string         `bson:"concept" json:"concept"`
	Cities     []string       `bson:"cities" json:"cities"`
	Highlights []string       `bson:"highlights" json:"highlights"`
	Included   []string       `bson:"included" json:"included"`
	Itinerary  []ItineraryDay `bson:"itinerary" json:"itinerary"`
	Category   string         `bson:"category" json:"category"`
	ImageURL   string         `bson:"imageUrl" json:"imageUrl"`
}

// models/poi.go
package models

// POI is a point of interest. Records are authored by external data-management
// scripts; the application only ever reads them.
type POI struct {
	ID                  string    `bson:"id" json:"id"`
	Name                Bilingual `bson:"name" json:"name"`
	Address             Bilingual `bson:"address" json:"address"`
	Location            *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Categories          []string  `bson:"categories" json:"categories"`
	Hours               string    `bson:"hours" json:"hours"`
	EntryFee            string    `bson:"entryFee" json:"entryFee"`
	ReservationRequired bool      `bson:"reservationRequired" json:"reservationRequired"`
	ImageURL            string    `bson:"imageUrl" json:"imageUrl"`
}

// PrimaryCategory returns the first category tag, or empty when none exist.
func (p *POI) PrimaryCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}

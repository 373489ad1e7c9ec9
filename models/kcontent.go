// models/kcontent.go
package models

// KContent links a thematic sub-name (artist, brand, place) to a POI and a
// category. POIID may dangle; callers treat an unresolvable POI as absent.
type KContent struct {
	ID          string    `bson:"id" json:"id"`
	SubName     Bilingual `bson:"subName" json:"subName"`
	POIID       string    `bson:"poiId" json:"poiId"`
	SpotName    string    `bson:"spotName" json:"spotName"`
	Description string    `bson:"description" json:"description"`
	Tags        []string  `bson:"tags" json:"tags"`
	Popularity  *float64  `bson:"popularity,omitempty" json:"popularity,omitempty"`
	Category    Category  `bson:"category" json:"category"`
}

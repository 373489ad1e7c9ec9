// models/artist.go
package models

// Artist is a K-pop artist record tied to a content sub-name.
type Artist struct {
	ID      string    `bson:"id" json:"id"`
	Name    Bilingual `bson:"name" json:"name"`
	Group   string    `bson:"group" json:"group"`
	Agency  string    `bson:"agency" json:"agency"`
	SubName string    `bson:"subName" json:"subName"`
}

// models/shared.go
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Bilingual is the canonical English/Korean text pair. Documents from the
// earliest data-migration era store a bare string where newer ones store an
// embedded document ({name_en, name_ko}, {subName_en, subName_ko}, or
// {en, ko}); both eras are resolved here so nothing downstream ever sees the
// raw union.
type Bilingual struct {
	EN string `bson:"en" json:"en"`
	KO string `bson:"ko" json:"ko"`
}

// Pick projects the text for the given language, falling back to the other
// locale when one side is empty.
func (b Bilingual) Pick(lang string) string {
	if lang == "ko" {
		if b.KO != "" {
			return b.KO
		}
		return b.EN
	}
	if b.EN != "" {
		return b.EN
	}
	return b.KO
}

// UnmarshalBSONValue accepts both the legacy bare-string form and the
// embedded-document form.
func (b *Bilingual) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull:
		*b = Bilingual{}
		return nil
	case bson.TypeString:
		s := rv.StringValue()
		b.EN = s
		b.KO = s
		return nil
	case bson.TypeEmbeddedDocument:
		var doc map[string]string
		if err := bson.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode bilingual document: %w", err)
		}
		b.fromMap(doc)
		return nil
	}
	return fmt.Errorf("unsupported bilingual BSON type: %s", t)
}

// UnmarshalJSON mirrors the BSON behavior for JSON payloads.
func (b *Bilingual) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.EN = s
		b.KO = s
		return nil
	}
	var doc map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode bilingual value: %w", err)
	}
	b.fromMap(doc)
	return nil
}

func (b *Bilingual) fromMap(doc map[string]string) {
	for k, v := range doc {
		switch {
		case k == "en" || strings.HasSuffix(k, "_en"):
			b.EN = v
		case k == "ko" || strings.HasSuffix(k, "_ko"):
			b.KO = v
		}
	}
}

// GeoPoint is a longitude/latitude pair.
type GeoPoint struct {
	Lng float64 `bson:"lng" json:"lng"`
	Lat float64 `bson:"lat" json:"lat"`
}

// Valid reports whether both components are finite numbers.
func (p GeoPoint) Valid() bool {
	for _, v := range []float64{p.Lng, p.Lat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Category is the closed set of K-content categories.
type Category string

const (
	CategoryKpop      Category = "kpop"
	CategoryKbeauty   Category = "kbeauty"
	CategoryKfood     Category = "kfood"
	CategoryKfestival Category = "kfestival"
	CategoryKdrama    Category = "kdrama"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryKpop, CategoryKbeauty, CategoryKfood, CategoryKfestival, CategoryKdrama}
}

// Valid reports whether the category is one of the fixed enum values.
func (c Category) Valid() bool {
	switch c {
	case CategoryKpop, CategoryKbeauty, CategoryKfood, CategoryKfestival, CategoryKdrama:
		return true
	}
	return false
}

// ParseCategory resolves a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

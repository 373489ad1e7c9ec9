// models/selection.go
package models

// SelectionType tags what a search-result selection points at.
type SelectionType string

const (
	SelectionPOI     SelectionType = "poi"
	SelectionContent SelectionType = "content"
)

// Selection is the thing currently focused for display: a POI or a content
// grouping. At most one is active per visitor; nil means no selection.
type Selection struct {
	Type    SelectionType `json:"type"`
	POIID   string        `json:"poiId,omitempty"`
	SubName string        `json:"subName,omitempty"`
	Name    string        `json:"name"`
}

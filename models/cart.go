// models/cart.go
package models

import "fmt"

// CartItemType tags what a cart item references.
type CartItemType string

const (
	CartItemPOI     CartItemType = "poi"
	CartItemContent CartItemType = "content"
	CartItemPackage CartItemType = "package"
)

// CartItem is one entry in a visitor's trip cart. The ID is derived
// deterministically from the item type and the referenced id, so the same
// place can never appear twice.
type CartItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CartItemType `json:"type"`
	POIID     string       `json:"poiId,omitempty"`
	SubName   string       `json:"subName,omitempty"`
	PackageID string       `json:"packageId,omitempty"`
}

// CartItemID derives the identity string for a cart item.
func CartItemID(t CartItemType, ref string) string {
	return fmt.Sprintf("%s-%s", t, ref)
}

// NewPOICartItem builds a cart item for a POI.
func NewPOICartItem(poi *POI, lang string) CartItem {
	return CartItem{
		ID:    CartItemID(CartItemPOI, poi.ID),
		Name:  poi.Name.Pick(lang),
		Type:  CartItemPOI,
		POIID: poi.ID,
	}
}

// NewContentCartItem builds a cart item for a content grouping.
func NewContentCartItem(subName, name string) CartItem {
	return CartItem{
		ID:      CartItemID(CartItemContent, subName),
		Name:    name,
		Type:    CartItemContent,
		SubName: subName,
	}
}

// NewPackageCartItem builds a cart item for a travel package.
func NewPackageCartItem(pkg *TravelPackage) CartItem {
	return CartItem{
		ID:        CartItemID(CartItemPackage, pkg.ID),
		Name:      pkg.Name,
		Type:      CartItemPackage,
		PackageID: pkg.ID,
	}
}

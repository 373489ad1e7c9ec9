package cart

import (
	"testing"

	"hantrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poiItem(id, name string) models.CartItem {
	return models.CartItem{
		ID:    models.CartItemID(models.CartItemPOI, id),
		Name:  name,
		Type:  models.CartItemPOI,
		POIID: id,
	}
}

func TestAddItemDeduplicatesByIdentity(t *testing.T) {
	var items []models.CartItem

	items = AddItem(items, poiItem("1", "Gyeongbokgung"))
	items = AddItem(items, poiItem("2", "Hongdae"))
	items = AddItem(items, poiItem("1", "Gyeongbokgung again"))
	items = AddItem(items, poiItem("1", "Gyeongbokgung"))

	require.Len(t, items, 2)
	assert.Equal(t, "poi-1", items[0].ID)
	assert.Equal(t, "poi-2", items[1].ID)
	// The first payload for an identity wins.
	assert.Equal(t, "Gyeongbokgung", items[0].Name)
}

func TestRemoveAfterAddRestoresCart(t *testing.T) {
	base := []models.CartItem{poiItem("1", "Gyeongbokgung"), poiItem("2", "Hongdae")}

	withExtra := AddItem(base, poiItem("3", "Bukchon"))
	restored := RemoveItem(withExtra, "poi-3")

	require.Len(t, restored, len(base))
	for i := range base {
		assert.Equal(t, base[i].ID, restored[i].ID)
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	items := []models.CartItem{poiItem("1", "a"), poiItem("2", "b"), poiItem("3", "c")}

	items = RemoveItem(items, "poi-2")
	require.Len(t, items, 2)
	assert.Equal(t, "poi-1", items[0].ID)
	assert.Equal(t, "poi-3", items[1].ID)

	// Removing something absent is a no-op.
	items = RemoveItem(items, "poi-9")
	assert.Len(t, items, 2)
}

func TestContainsItem(t *testing.T) {
	items := []models.CartItem{poiItem("1", "a")}
	assert.True(t, ContainsItem(items, "poi-1"))
	assert.False(t, ContainsItem(items, "poi-2"))
	assert.False(t, ContainsItem(nil, "poi-1"))
}

func TestHasPOIsAndPOIIDs(t *testing.T) {
	pkg := models.CartItem{ID: "package-p1", Type: models.CartItemPackage, PackageID: "p1"}
	assert.False(t, HasPOIs([]models.CartItem{pkg}))

	items := []models.CartItem{pkg, poiItem("2", "b"), poiItem("1", "a")}
	assert.True(t, HasPOIs(items))
	// Cart order, not id order.
	assert.Equal(t, []string{"2", "1"}, POIIDs(items))
}

func TestCartItemIDDerivation(t *testing.T) {
	assert.Equal(t, "poi-abc", models.CartItemID(models.CartItemPOI, "abc"))
	assert.Equal(t, "package-xyz", models.CartItemID(models.CartItemPackage, "xyz"))

	poi := models.POI{ID: "abc", Name: models.Bilingual{EN: "Namsan", KO: "남산"}}
	item := models.NewPOICartItem(&poi, "ko")
	assert.Equal(t, "poi-abc", item.ID)
	assert.Equal(t, "남산", item.Name)
}

package cart

import (
	"context"

	"hantrip/models"
)

// Service manages a visitor's trip cart: an ordered, de-duplicated selection
// of POIs, content groupings, and packages. The cart survives reloads and is
// emptied only by an explicit clear.
type Service interface {
	Get(ctx context.Context, visitorID string) ([]models.CartItem, error)
	// Add appends the item unless its identity is already present, in which
	// case the call is a no-op.
	Add(ctx context.Context, visitorID string, item models.CartItem) ([]models.CartItem, error)
	Remove(ctx context.Context, visitorID, itemID string) ([]models.CartItem, error)
	// Toggle adds the item when absent and removes it when present; the bool
	// reports whether the item is in the cart afterwards.
	Toggle(ctx context.Context, visitorID string, item models.CartItem) ([]models.CartItem, bool, error)
	Contains(ctx context.Context, visitorID, itemID string) (bool, error)
	Clear(ctx context.Context, visitorID string) error
}

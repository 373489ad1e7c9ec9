package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"hantrip/models"

	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "cart:"

// AddItem returns the list with the item appended, or the list unchanged when
// the identity is already present.
func AddItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	if ContainsItem(items, item.ID) {
		return items
	}
	return append(items, item)
}

// RemoveItem returns the list without the identified item, preserving the
// order of the rest.
func RemoveItem(items []models.CartItem, itemID string) []models.CartItem {
	for i, it := range items {
		if it.ID == itemID {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// ContainsItem reports whether the identity is present.
func ContainsItem(items []models.CartItem, itemID string) bool {
	for _, it := range items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// HasPOIs reports whether any cart entry references a POI.
func HasPOIs(items []models.CartItem) bool {
	for _, it := range items {
		if it.Type == models.CartItemPOI {
			return true
		}
	}
	return false
}

// POIIDs returns the referenced POI ids in cart order.
func POIIDs(items []models.CartItem) []string {
	var ids []string
	for _, it := range items {
		if it.Type == models.CartItemPOI {
			ids = append(ids, it.POIID)
		}
	}
	return ids
}

// RedisCartService implements Service on Redis, one JSON blob per visitor.
type RedisCartService struct {
	Client *redis.Client
}

// NewRedisCartService creates a cart service backed by the given client.
func NewRedisCartService(client *redis.Client) Service {
	return &RedisCartService{Client: client}
}

func cartKey(visitorID string) string {
	return cartKeyPrefix + visitorID
}

func (s *RedisCartService) load(ctx context.Context, visitorID string) ([]models.CartItem, error) {
	data, err := s.Client.Get(ctx, cartKey(visitorID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for %s: %w", visitorID, err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for %s: %w", visitorID, err)
	}
	return items, nil
}

func (s *RedisCartService) save(ctx context.Context, visitorID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for %s: %w", visitorID, err)
	}
	// No TTL: the cart survives until the visitor clears it.
	if err := s.Client.Set(ctx, cartKey(visitorID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart for %s: %w", visitorID, err)
	}
	return nil
}

// Get returns the visitor's cart in insertion order.
func (s *RedisCartService) Get(ctx context.Context, visitorID string) ([]models.CartItem, error) {
	return s.load(ctx, visitorID)
}

// Add appends the item unless already present.
func (s *RedisCartService) Add(ctx context.Context, visitorID string, item models.CartItem) ([]models.CartItem, error) {
	items, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	updated := AddItem(items, item)
	if len(updated) == len(items) {
		return items, nil
	}
	if err := s.save(ctx, visitorID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the identified item.
func (s *RedisCartService) Remove(ctx context.Context, visitorID, itemID string) ([]models.CartItem, error) {
	items, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	updated := RemoveItem(items, itemID)
	if len(updated) == len(items) {
		return items, nil
	}
	if err := s.save(ctx, visitorID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Toggle adds or removes the item and reports membership afterwards.
func (s *RedisCartService) Toggle(ctx context.Context, visitorID string, item models.CartItem) ([]models.CartItem, bool, error) {
	items, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, false, err
	}

	var updated []models.CartItem
	inCart := false
	if ContainsItem(items, item.ID) {
		updated = RemoveItem(items, item.ID)
	} else {
		updated = AddItem(items, item)
		inCart = true
	}

	if err := s.save(ctx, visitorID, updated); err != nil {
		return nil, false, err
	}
	return updated, inCart, nil
}

// Contains reports whether the identity is in the visitor's cart.
func (s *RedisCartService) Contains(ctx context.Context, visitorID, itemID string) (bool, error) {
	items, err := s.load(ctx, visitorID)
	if err != nil {
		return false, err
	}
	return ContainsItem(items, itemID), nil
}

// Clear empties the visitor's cart.
func (s *RedisCartService) Clear(ctx context.Context, visitorID string) error {
	if err := s.Client.Del(ctx, cartKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart for %s: %w", visitorID, err)
	}
	return nil
}

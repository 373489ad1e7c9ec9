package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hantrip/models"
	"hantrip/services/layout"

	"github.com/go-redis/redis/v8"
)

const (
	stateKeyPrefix = "uistate:"
	stateTTL       = 30 * 24 * time.Hour

	// defaultSheetHeight is used until the client reports its viewport.
	defaultSheetHeight = 400
)

// RedisStateService implements Service on Redis, one JSON blob per visitor.
type RedisStateService struct {
	Client *redis.Client
}

// NewRedisStateService creates a state service backed by the given client.
func NewRedisStateService(client *redis.Client) Service {
	return &RedisStateService{Client: client}
}

func stateKey(visitorID string) string {
	return stateKeyPrefix + visitorID
}

func defaultState() *UIState {
	return &UIState{
		SidebarOpen: true,
		Sheet:       *layout.NewSheet(defaultSheetHeight),
	}
}

func (s *RedisStateService) load(ctx context.Context, visitorID string) (*UIState, error) {
	data, err := s.Client.Get(ctx, stateKey(visitorID)).Result()
	if err == redis.Nil {
		return defaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state for %s: %w", visitorID, err)
	}

	var st UIState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state for %s: %w", visitorID, err)
	}
	return &st, nil
}

func (s *RedisStateService) save(ctx context.Context, visitorID string, st *UIState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state for %s: %w", visitorID, err)
	}
	if err := s.Client.Set(ctx, stateKey(visitorID), data, stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save state for %s: %w", visitorID, err)
	}
	return nil
}

func (s *RedisStateService) mutate(ctx context.Context, visitorID string, fn func(*UIState)) (*UIState, error) {
	st, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	fn(st)
	if err := s.save(ctx, visitorID, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Get returns the visitor's state, defaults when none is stored.
func (s *RedisStateService) Get(ctx context.Context, visitorID string) (*UIState, error) {
	return s.load(ctx, visitorID)
}

// SetSidebar sets the sidebar flag.
func (s *RedisStateService) SetSidebar(ctx context.Context, visitorID string, open bool) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.SidebarOpen = open })
}

// ToggleSidebar flips the sidebar flag.
func (s *RedisStateService) ToggleSidebar(ctx context.Context, visitorID string) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.SidebarOpen = !st.SidebarOpen })
}

// SetSearchMode sets the search-mode flag.
func (s *RedisStateService) SetSearchMode(ctx context.Context, visitorID string, active bool) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.SearchMode = active })
}

// SetSelection replaces the active selection and surfaces the bottom sheet.
func (s *RedisStateService) SetSelection(ctx context.Context, visitorID string, sel *models.Selection) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) {
		st.Selection = sel
		if sel != nil {
			st.Sheet.OnSelection()
		}
	})
}

// ClearSelection dismisses the active selection.
func (s *RedisStateService) ClearSelection(ctx context.Context, visitorID string) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.Selection = nil })
}

// SetRoute records the explicitly chosen route.
func (s *RedisStateService) SetRoute(ctx context.Context, visitorID, routeID string) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.RouteID = routeID })
}

// ClearRoute drops the chosen route.
func (s *RedisStateService) ClearRoute(ctx context.Context, visitorID string) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.RouteID = "" })
}

// UpdateSheet stores a new bottom-sheet snapshot.
func (s *RedisStateService) UpdateSheet(ctx context.Context, visitorID string, sheet layout.Sheet) (*UIState, error) {
	return s.mutate(ctx, visitorID, func(st *UIState) { st.Sheet = sheet })
}

package state

import (
	"context"

	"hantrip/models"
	"hantrip/services/layout"
)

// UIState is a visitor's shell state: the sidebar flag, search mode, the
// active search-result selection, the chosen route, and the bottom sheet.
// Each slice is last-write-wins; the store is read once per request and
// written on change.
type UIState struct {
	SidebarOpen bool              `json:"sidebarOpen"`
	SearchMode  bool              `json:"searchMode"`
	Selection   *models.Selection `json:"selection,omitempty"`
	RouteID     string            `json:"routeId,omitempty"`
	Sheet       layout.Sheet      `json:"sheet"`
}

// Service owns per-visitor UI state. Only these setters mutate; everything
// else reads.
type Service interface {
	Get(ctx context.Context, visitorID string) (*UIState, error)
	SetSidebar(ctx context.Context, visitorID string, open bool) (*UIState, error)
	ToggleSidebar(ctx context.Context, visitorID string) (*UIState, error)
	SetSearchMode(ctx context.Context, visitorID string, active bool) (*UIState, error)
	// SetSelection replaces the active selection and, unless a sheet drag is
	// in progress, forces the bottom sheet back to its half snap.
	SetSelection(ctx context.Context, visitorID string, sel *models.Selection) (*UIState, error)
	ClearSelection(ctx context.Context, visitorID string) (*UIState, error)
	SetRoute(ctx context.Context, visitorID, routeID string) (*UIState, error)
	ClearRoute(ctx context.Context, visitorID string) (*UIState, error)
	UpdateSheet(ctx context.Context, visitorID string, sheet layout.Sheet) (*UIState, error)
}

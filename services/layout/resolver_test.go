package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var knownPaths = []string{"/", "/contents", "/info", "/maps", "/maps/route/seoul-day-1", "/packages", "/unknown"}

func TestResolveTotality(t *testing.T) {
	valid := map[PanelType]bool{
		PanelHome: true, PanelContents: true, PanelInfo: true,
		PanelRoute: true, PanelSearch: true, PanelMaps: true,
		PanelCart: true, PanelNone: true,
	}

	for _, path := range knownPaths {
		for _, sidebarOpen := range []bool{true, false} {
			for _, intent := range []PanelWidth{WidthDefault, WidthRoutes, WidthNone} {
				for _, hasRoute := range []bool{true, false} {
					for _, hasSelection := range []bool{true, false} {
						for _, cartHasPOIs := range []bool{true, false} {
							in := Input{
								Path:         path,
								SidebarOpen:  sidebarOpen,
								Intent:       intent,
								HasRoute:     hasRoute,
								HasSelection: hasSelection,
								CartHasPOIs:  cartHasPOIs,
							}
							name := fmt.Sprintf("%s/%v/%s/%v/%v/%v", path, sidebarOpen, intent, hasRoute, hasSelection, cartHasPOIs)
							res := Resolve(in)
							assert.True(t, valid[res.Panel], "%s resolved to %q", name, res.Panel)
							assert.NotEmpty(t, res.MainClass, name)
							assert.NotEmpty(t, res.TopNavClass, name)
						}
					}
				}
			}
		}
	}
}

func TestSelectionPreemptsRouteOnMapPages(t *testing.T) {
	for _, path := range []string{"/maps", "/maps/route/seoul-day-1"} {
		for _, hasRoute := range []bool{true, false} {
			res := Resolve(Input{Path: path, Intent: WidthRoutes, HasRoute: hasRoute, HasSelection: true})
			assert.Equal(t, PanelSearch, res.Panel, "path=%s hasRoute=%v", path, hasRoute)
			assert.Equal(t, WidthRoutes, res.Width)
		}
	}
}

func TestRoutePanelFloatsOnMapsPageOnly(t *testing.T) {
	onMaps := Resolve(Input{Path: "/maps", Intent: WidthRoutes, HasRoute: true})
	assert.Equal(t, PanelRoute, onMaps.Panel)
	assert.True(t, onMaps.Floating)
	// Floating panels reserve no horizontal space.
	assert.NotContains(t, onMaps.MainClass, "panel")

	routed := Resolve(Input{Path: "/maps/route/seoul-day-1", Intent: WidthRoutes, HasRoute: true})
	assert.Equal(t, PanelRoute, routed.Panel)
	assert.False(t, routed.Floating)
	assert.Contains(t, routed.MainClass, "panel-wide")
}

func TestCartPreemptsEmptyStateOnMapsPage(t *testing.T) {
	res := Resolve(Input{Path: "/maps", Intent: WidthRoutes, CartHasPOIs: true})
	assert.Equal(t, PanelCart, res.Panel)

	// An active route still outranks the cart.
	res = Resolve(Input{Path: "/maps", Intent: WidthRoutes, HasRoute: true, CartHasPOIs: true})
	assert.Equal(t, PanelRoute, res.Panel)

	// Off the maps top-level page the cart never pre-empts.
	res = Resolve(Input{Path: "/maps/route/seoul-day-1", Intent: WidthRoutes, CartHasPOIs: true})
	assert.Equal(t, PanelNone, res.Panel)
}

func TestDefaultIntentPanels(t *testing.T) {
	cases := map[string]PanelType{
		"/":         PanelHome,
		"/contents": PanelContents,
		"/info":     PanelInfo,
		"/packages": PanelNone,
	}
	for path, want := range cases {
		res := Resolve(Input{Path: path, Intent: WidthDefault})
		assert.Equal(t, want, res.Panel, path)
		if want != PanelNone {
			assert.Equal(t, WidthDefault, res.Width, path)
			assert.True(t, res.Visible, path)
		}
	}
}

func TestDisabledIntentAlwaysNone(t *testing.T) {
	res := Resolve(Input{Path: "/", Intent: WidthNone, HasSelection: true, HasRoute: true, CartHasPOIs: true})
	assert.Equal(t, PanelNone, res.Panel)
	assert.Equal(t, WidthNone, res.Width)
	assert.False(t, res.Visible)
}

func TestSizingComposesAdditively(t *testing.T) {
	open := Resolve(Input{Path: "/", Intent: WidthDefault, SidebarOpen: true})
	assert.Contains(t, open.MainClass, "sidebar-expanded")
	assert.Contains(t, open.MainClass, "panel-default")
	assert.Contains(t, open.TopNavClass, "sidebar-expanded")

	closed := Resolve(Input{Path: "/packages", Intent: WidthDefault, SidebarOpen: false})
	assert.Contains(t, closed.MainClass, "sidebar-collapsed")
	assert.NotContains(t, closed.MainClass, "panel")

	assert.Equal(t, SidebarExpandedWidth, SidebarWidth(true))
	assert.Equal(t, SidebarCollapsedWidth, SidebarWidth(false))
	assert.Equal(t, PanelRoutesWidth, PanelPixelWidth(WidthRoutes))
	assert.Equal(t, 0, PanelPixelWidth(WidthNone))
}

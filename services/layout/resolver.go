// Package layout computes which side panel the client shell shows and how the
// main content and top navigation reflow around it. Everything here is pure
// and synchronous; unresolvable input degrades to no panel, never an error.
package layout

import "strings"

// PanelType is the closed set of side-panel variants.
type PanelType string

const (
	PanelHome     PanelType = "home"
	PanelContents PanelType = "contents"
	PanelInfo     PanelType = "info"
	PanelRoute    PanelType = "route"
	PanelSearch   PanelType = "search"
	PanelMaps     PanelType = "maps"
	PanelCart     PanelType = "cart"
	PanelNone     PanelType = "none"
)

// PanelWidth is a page's declared side-panel intent and the resolved width
// class of a visible panel.
type PanelWidth string

const (
	WidthDefault PanelWidth = "default"
	WidthRoutes  PanelWidth = "routes"
	WidthNone    PanelWidth = "none"
)

// Input carries the orthogonal pieces of state the resolver combines.
type Input struct {
	Path         string
	SidebarOpen  bool
	SearchMode   bool
	HasRoute     bool
	HasSelection bool
	CartHasPOIs  bool
	Intent       PanelWidth
}

// Resolution is the derived layout. It is recomputed on every state change
// and never persisted.
type Resolution struct {
	Panel       PanelType  `json:"panel"`
	Width       PanelWidth `json:"width"`
	Floating    bool       `json:"floating"`
	Visible     bool       `json:"visible"`
	MainClass   string     `json:"mainClass"`
	TopNavClass string     `json:"topNavClass"`
}

const mapsPath = "/maps"

// IsMapLike reports whether the path is the maps page or a routed maps page.
func IsMapLike(path string) bool {
	return path == mapsPath || strings.HasPrefix(path, mapsPath+"/route/")
}

// Resolve computes the layout for the given input. Priority order, first
// match wins; on the maps page an active selection always wins over a route,
// and cart contents pre-empt the empty state (search > route > cart > none).
func Resolve(in Input) Resolution {
	res := resolvePanel(in)
	if res.Panel == PanelNone {
		res.Width = WidthNone
	}
	res.Visible = res.Panel != PanelNone

	reserve := res.Visible && !res.Floating
	res.MainClass = mainClass(in.SidebarOpen, res.Width, reserve)
	res.TopNavClass = topNavClass(in.SidebarOpen, res.Width, reserve)
	return res
}

func resolvePanel(in Input) Resolution {
	if in.Intent == WidthNone {
		return Resolution{Panel: PanelNone}
	}

	if IsMapLike(in.Path) {
		if in.HasSelection {
			return Resolution{Panel: PanelSearch, Width: WidthRoutes}
		}
		if in.Intent == WidthRoutes {
			// The top-level maps page overlays its panel so the map is not
			// shrunk; routed maps pages reserve the column.
			floating := in.Path == mapsPath
			if in.HasRoute {
				return Resolution{Panel: PanelRoute, Width: WidthRoutes, Floating: floating}
			}
			if in.Path == mapsPath && in.CartHasPOIs {
				return Resolution{Panel: PanelCart, Width: WidthRoutes, Floating: floating}
			}
			return Resolution{Panel: PanelNone}
		}
		return Resolution{Panel: PanelNone}
	}

	if in.Intent == WidthDefault {
		switch in.Path {
		case "/":
			return Resolution{Panel: PanelHome, Width: WidthDefault}
		case "/contents":
			return Resolution{Panel: PanelContents, Width: WidthDefault}
		case "/info":
			return Resolution{Panel: PanelInfo, Width: WidthDefault}
		}
	}

	return Resolution{Panel: PanelNone}
}

package layout

import "strings"

// Fixed widths in pixels. Sidebar and panel widths combine additively into
// the main-content and top-nav offsets; a panel reserves space only while
// visible and not floating.
const (
	SidebarExpandedWidth  = 240
	SidebarCollapsedWidth = 72
	PanelDefaultWidth     = 320
	PanelRoutesWidth      = 420
)

func mainClass(sidebarOpen bool, width PanelWidth, reserve bool) string {
	cls := []string{"main-content", sidebarClass("main-content", sidebarOpen)}
	if reserve {
		cls = append(cls, panelClass("main-content", width))
	}
	return strings.Join(cls, " ")
}

func topNavClass(sidebarOpen bool, width PanelWidth, reserve bool) string {
	cls := []string{"top-nav", sidebarClass("top-nav", sidebarOpen)}
	if reserve {
		cls = append(cls, panelClass("top-nav", width))
	}
	return strings.Join(cls, " ")
}

func sidebarClass(prefix string, open bool) string {
	if open {
		return prefix + "--sidebar-expanded"
	}
	return prefix + "--sidebar-collapsed"
}

func panelClass(prefix string, width PanelWidth) string {
	if width == WidthRoutes {
		return prefix + "--panel-wide"
	}
	return prefix + "--panel-default"
}

// SidebarWidth returns the pixel width for the sidebar state.
func SidebarWidth(open bool) int {
	if open {
		return SidebarExpandedWidth
	}
	return SidebarCollapsedWidth
}

// PanelPixelWidth returns the pixel width a visible, non-floating panel
// reserves.
func PanelPixelWidth(width PanelWidth) int {
	switch width {
	case WidthDefault:
		return PanelDefaultWidth
	case WidthRoutes:
		return PanelRoutesWidth
	}
	return 0
}

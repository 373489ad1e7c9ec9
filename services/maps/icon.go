package maps

import (
	"encoding/base64"
	"fmt"
)

// Procedurally drawn marker icons, rendered as SVG data URLs: a pin shape
// with a circle, and for cart markers a centered order number.

const pinPath = "M16 2C9.4 2 4 7.4 4 14c0 9 12 22 12 22s12-13 12-22c0-6.6-5.4-12-12-12z"

// DefaultPinIcon returns the unnumbered pin.
func DefaultPinIcon() string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="38" viewBox="0 0 32 38"><path d="%s" fill="#e8590c" stroke="#ffffff" stroke-width="2"/><circle cx="16" cy="14" r="5" fill="#ffffff"/></svg>`, pinPath)
	return svgDataURL(svg)
}

// NumberedPinIcon returns a pin carrying the POI's 1-based cart position.
func NumberedPinIcon(n int) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="38" viewBox="0 0 32 38"><path d="%s" fill="#1864ab" stroke="#ffffff" stroke-width="2"/><circle cx="16" cy="14" r="8" fill="#ffffff"/><text x="16" y="18" text-anchor="middle" font-family="sans-serif" font-size="11" font-weight="bold" fill="#1864ab">%d</text></svg>`, pinPath, n)
	return svgDataURL(svg)
}

func svgDataURL(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

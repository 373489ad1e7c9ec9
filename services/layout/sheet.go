package layout

import "math"

// Snap is a named resting position for the mobile bottom sheet.
type Snap string

const (
	SnapClosed Snap = "closed"
	SnapHalf   Snap = "half"
)

const (
	// GrabStripHeight is the invisible tap target left on screen while the
	// sheet is closed.
	GrabStripHeight = 24
	// DragClickThreshold is the movement in pixels beyond which a drag
	// suppresses the synthetic click that follows pointer-up.
	DragClickThreshold = 2
	// SnapAnimationMillis is the fixed ease duration applied when the sheet
	// settles onto a snap position.
	SnapAnimationMillis = 300
)

// Sheet is the draggable bottom-sheet state machine. Visible height 0 is the
// closed snap; the configured half height is the half snap. Drags update the
// visible height continuously with no animation; release snaps to whichever
// defined height is nearest, closed winning exact ties.
type Sheet struct {
	Snap       Snap    `json:"snap"`
	HalfHeight float64 `json:"halfHeight"`
	Visible    float64 `json:"visible"`
	Dragging   bool    `json:"dragging"`
	Animating  bool    `json:"animating"`

	// Gesture bookkeeping. Persisted so a drag spans state round-trips.
	StartY        float64 `json:"startY,omitempty"`
	StartVisible  float64 `json:"startVisible,omitempty"`
	Moved         float64 `json:"moved,omitempty"`
	SuppressClick bool    `json:"suppressClick,omitempty"`
}

// NewSheet builds a closed sheet whose half snap occupies the given height
// (half the viewport below the top navigation).
func NewSheet(halfHeight float64) *Sheet {
	return &Sheet{Snap: SnapClosed, HalfHeight: halfHeight}
}

func (s *Sheet) snapHeight(snap Snap) float64 {
	if snap == SnapHalf {
		return s.HalfHeight
	}
	return 0
}

// StartDrag begins a drag gesture at the given pointer Y.
func (s *Sheet) StartDrag(y float64) {
	s.Dragging = true
	s.Animating = false
	s.StartY = y
	s.StartVisible = s.snapHeight(s.Snap)
	s.Visible = s.StartVisible
	s.Moved = 0
}

// Drag updates the visible height for a pointer move. Upward movement grows
// the sheet; the height is clamped to [0, half height].
func (s *Sheet) Drag(y float64) {
	if !s.Dragging {
		return
	}
	delta := s.StartY - y
	if d := math.Abs(delta); d > s.Moved {
		s.Moved = d
	}
	s.Visible = clamp(s.StartVisible+delta, 0, s.HalfHeight)
}

// EndDrag releases the gesture and snaps to the nearest defined height.
// Candidates are checked in order (closed first), so an exactly equidistant
// release resolves to closed.
func (s *Sheet) EndDrag() Snap {
	if !s.Dragging {
		return s.Snap
	}
	s.Dragging = false
	s.SuppressClick = s.Moved > DragClickThreshold

	best := SnapClosed
	bestDist := math.Abs(s.Visible - s.snapHeight(SnapClosed))
	if d := math.Abs(s.Visible - s.snapHeight(SnapHalf)); d < bestDist {
		best = SnapHalf
	}

	s.settle(best)
	return s.Snap
}

// TapHandle toggles the sheet between closed and half. It reports whether the
// tap took effect; the synthetic click following a real drag is swallowed.
func (s *Sheet) TapHandle() bool {
	if s.SuppressClick {
		s.SuppressClick = false
		return false
	}
	if s.Snap == SnapClosed {
		s.settle(SnapHalf)
	} else {
		s.settle(SnapClosed)
	}
	return true
}

// OnSelection forces the sheet back to half so newly selected detail content
// is visible. A gesture in progress is left alone.
func (s *Sheet) OnSelection() {
	if s.Dragging {
		return
	}
	s.settle(SnapHalf)
}

func (s *Sheet) settle(snap Snap) {
	s.Snap = snap
	s.Visible = s.snapHeight(snap)
	s.Animating = true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ModalSheet is the simpler two-state model used when route and search panels
// render as mobile sheets: visible as a large sheet or dismissed, with a
// backdrop tap and the Escape key both dismissing.
type ModalSheet struct {
	Visible bool `json:"visible"`
}

// Show presents the sheet.
func (m *ModalSheet) Show() { m.Visible = true }

// Dismiss hides the sheet.
func (m *ModalSheet) Dismiss() { m.Visible = false }

// TapBackdrop dismisses the sheet.
func (m *ModalSheet) TapBackdrop() { m.Dismiss() }

// HandleKey processes a key press and reports whether it was consumed.
func (m *ModalSheet) HandleKey(key string) bool {
	if key == "Escape" && m.Visible {
		m.Dismiss()
		return true
	}
	return false
}

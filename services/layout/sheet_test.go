package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetSnapConvergence(t *testing.T) {
	t.Run("release nearer hidden snaps closed", func(t *testing.T) {
		s := NewSheet(400)
		s.TapHandle() // open to half
		assert.Equal(t, SnapHalf, s.Snap)

		s.StartDrag(100)
		s.Drag(350) // drag down 250px, visible height 150 < 200 midpoint
		snap := s.EndDrag()
		assert.Equal(t, SnapClosed, snap)
		assert.Equal(t, 0.0, s.Visible)
		assert.True(t, s.Animating)
	})

	t.Run("release nearer half snaps half", func(t *testing.T) {
		s := NewSheet(400)
		s.TapHandle()
		s.StartDrag(100)
		s.Drag(250) // visible height 250 > 200 midpoint
		assert.Equal(t, SnapHalf, s.EndDrag())
		assert.Equal(t, 400.0, s.Visible)
	})

	t.Run("equidistant release resolves closed", func(t *testing.T) {
		s := NewSheet(400)
		s.TapHandle()
		s.StartDrag(100)
		s.Drag(300) // visible height exactly 200, halfway
		assert.Equal(t, SnapClosed, s.EndDrag())
	})
}

func TestSheetDragClamped(t *testing.T) {
	s := NewSheet(400)
	s.TapHandle()
	s.StartDrag(100)

	s.Drag(-500) // far above the start, would exceed the half height
	assert.Equal(t, 400.0, s.Visible)

	s.Drag(900) // far below, would go negative
	assert.Equal(t, 0.0, s.Visible)

	// No animation while the pointer is down.
	assert.False(t, s.Animating)
}

func TestDragSuppressesClick(t *testing.T) {
	s := NewSheet(400)
	s.TapHandle()
	assert.Equal(t, SnapHalf, s.Snap)

	// A real drag: pointer moved more than the threshold.
	s.StartDrag(100)
	s.Drag(90)
	s.EndDrag()
	snapAfterDrag := s.Snap

	// The synthetic click that follows pointer-up must not toggle.
	assert.False(t, s.TapHandle())
	assert.Equal(t, snapAfterDrag, s.Snap)

	// The next deliberate tap works again.
	assert.True(t, s.TapHandle())
	assert.NotEqual(t, snapAfterDrag, s.Snap)
}

func TestTinyDragDoesNotSuppressClick(t *testing.T) {
	s := NewSheet(400)
	s.StartDrag(100)
	s.Drag(99) // 1px, under the 2px threshold
	s.EndDrag()

	assert.True(t, s.TapHandle())
}

func TestSelectionForcesHalf(t *testing.T) {
	s := NewSheet(400)
	assert.Equal(t, SnapClosed, s.Snap)

	s.OnSelection()
	assert.Equal(t, SnapHalf, s.Snap)
	assert.Equal(t, 400.0, s.Visible)

	// A gesture in progress is not interrupted.
	s.StartDrag(100)
	s.Drag(300)
	s.OnSelection()
	assert.True(t, s.Dragging)
	assert.Equal(t, 200.0, s.Visible)
}

func TestModalSheetDismissal(t *testing.T) {
	var m ModalSheet
	m.Show()
	assert.True(t, m.Visible)

	m.TapBackdrop()
	assert.False(t, m.Visible)

	m.Show()
	assert.True(t, m.HandleKey("Escape"))
	assert.False(t, m.Visible)

	// Escape on a hidden sheet is not consumed; other keys never are.
	assert.False(t, m.HandleKey("Escape"))
	m.Show()
	assert.False(t, m.HandleKey("Enter"))
	assert.True(t, m.Visible)
}

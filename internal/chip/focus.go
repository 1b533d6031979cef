package chip

import tea "github.com/charmbracelet/bubbletea"

// FocusCoordinator is the host's focus system. A chip calls RequestFocus when
// it becomes selected and ReleaseFocus when it stops being selected; the host
// uses these to keep at most one chip selected and to move its text caret.
//
// The host reports focus changes it makes on its own through BecomeActive and
// ResignActive, which do not call back into the coordinator.
type FocusCoordinator interface {
	RequestFocus(c *TagChip)
	ReleaseFocus(c *TagChip)
}

// SetFocusCoordinator replaces the chip's coordinator. Nil detaches it.
func (c *TagChip) SetFocusCoordinator(f FocusCoordinator) {
	c.mustBeSeeded()
	c.focus = f
}

// IsActive reports whether the chip is the active input target. It always
// equals Selected.
func (c *TagChip) IsActive() bool { return c.active }

// BecomeActive tells the chip it is now the active input target. The chip
// selects itself.
func (c *TagChip) BecomeActive() tea.Cmd {
	c.mustBeSeeded()
	c.active = true
	return c.SetSelected(true)
}

// ResignActive tells the chip it lost the active input target status. The
// chip deselects itself.
func (c *TagChip) ResignActive() tea.Cmd {
	c.mustBeSeeded()
	c.active = false
	return c.SetSelected(false)
}

package chip

// Listener receives everything a chip asks of its host.
type Listener interface {
	// DidRequestSelection fires when an unselected chip is tapped. The chip
	// stays unselected until the host calls SetSelected(true).
	DidRequestSelection(c *TagChip)
	// DidRequestDelete asks the host to remove the chip. A non-nil
	// replacement is text to seed the input that takes focus next.
	DidRequestDelete(c *TagChip, replacement *string)
	// DidInputText delivers text typed while the chip held focus.
	DidInputText(c *TagChip, text string)
}

// ListenerFuncs adapts plain functions to Listener. Nil functions drop their
// event.
type ListenerFuncs struct {
	OnRequestSelection func(c *TagChip)
	OnRequestDelete    func(c *TagChip, replacement *string)
	OnInputText        func(c *TagChip, text string)
}

func (f ListenerFuncs) DidRequestSelection(c *TagChip) {
	if f.OnRequestSelection != nil {
		f.OnRequestSelection(c)
	}
}

func (f ListenerFuncs) DidRequestDelete(c *TagChip, replacement *string) {
	if f.OnRequestDelete != nil {
		f.OnRequestDelete(c, replacement)
	}
}

func (f ListenerFuncs) DidInputText(c *TagChip, text string) {
	if f.OnInputText != nil {
		f.OnInputText(c, text)
	}
}

// SetListener registers l as the chip's only listener, replacing any previous
// one. Nil removes it; events are then dropped.
func (c *TagChip) SetListener(l Listener) {
	c.mustBeSeeded()
	c.listener = l
}

// Listener returns the registered listener, or nil.
func (c *TagChip) Listener() Listener { return c.listener }

// RequestDelete asks the listener to remove this chip, optionally seeding
// the next focused input with replacement. Hosts use it for removals that
// carry text; the chip's own paths always pass nil.
func (c *TagChip) RequestDelete(replacement *string) {
	c.mustBeSeeded()
	c.emitRequestDelete(replacement)
}

func (c *TagChip) emitRequestSelection() {
	if c.listener == nil {
		log.Logf("%d selection request dropped: no listener", c.id)
		return
	}
	c.listener.DidRequestSelection(c)
}

func (c *TagChip) emitRequestDelete(replacement *string) {
	if c.listener == nil {
		log.Logf("%d delete request dropped: no listener", c.id)
		return
	}
	c.listener.DidRequestDelete(c, replacement)
}

func (c *TagChip) emitInputText(text string) {
	if c.listener == nil {
		return
	}
	c.listener.DidInputText(c, text)
}

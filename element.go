package gridview

// PositionMode describes how an element participates in layout.
type PositionMode int

const (
	// PositionFlow places the element at its natural slot in the parent.
	PositionFlow PositionMode = iota
	// PositionDetached removes the element from flow entirely; it is
	// drawn at an absolute viewport position and leaves no gap behind.
	PositionDetached
	// PositionRelative keeps the element's slot but draws it shifted
	// down by a relative offset.
	PositionRelative
)

// Element is a retained box in the rendered tree. The layout pass writes
// its rect; the positioning engine reads rects and flips position modes;
// the renderer consumes both. Callers outside this package treat elements
// as opaque handles.
type Element struct {
	parent   *Element
	children []*Element

	role string // diagnostic tag ("header", "filler", "row", ...)

	// Written by the layout pass, in viewport coordinates.
	rect Rect

	// Natural content size, maintained by whoever owns the content.
	naturalWidth  float64
	naturalHeight float64

	// Width override applied by a synchronizer. Zero value means the
	// element renders at its natural width.
	overrideWidth    float64
	hasOverrideWidth bool

	// Positioning state, owned by the sticky positioner.
	mode       PositionMode
	detachTop  float64
	detachLeft float64
	relOffset  float64

	hidden  bool
	mounted bool // set on the root while the component is mounted

	// Row elements carry their position within the materialized window.
	rowPos int
}

// NewElement creates an element with the given diagnostic role.
func NewElement(role string) *Element {
	return &Element{role: role, rowPos: -1}
}

// Role returns the element's diagnostic tag.
func (e *Element) Role() string {
	return e.role
}

// Parent returns the parent element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Append adds children to the element.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// RemoveChild detaches a single child.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			child.parent = nil
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// ClearChildren detaches all children.
func (e *Element) ClearChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = e.children[:0]
}

// SetRect records the element's laid-out box. Called by the layout pass;
// sampling code reads it back through BoundingRect.
func (e *Element) SetRect(r Rect) {
	e.rect = r
}

// BoundingRect returns the element's current box in viewport coordinates.
// A width override takes precedence over the laid-out width, so releasing
// the override and re-reading yields the natural measurement.
func (e *Element) BoundingRect() Rect {
	r := e.rect
	if e.hasOverrideWidth {
		r.Width = e.overrideWidth
	}
	return r
}

// SetNaturalSize records the element's content size.
func (e *Element) SetNaturalSize(w, h float64) {
	e.naturalWidth = w
	e.naturalHeight = h
}

// NaturalWidth returns the content width.
func (e *Element) NaturalWidth() float64 {
	return e.naturalWidth
}

// NaturalHeight returns the content height.
func (e *Element) NaturalHeight() float64 {
	return e.naturalHeight
}

// SetWidth applies a width override.
func (e *Element) SetWidth(w float64) {
	e.overrideWidth = w
	e.hasOverrideWidth = true
}

// ReleaseWidth returns the element to its natural width.
func (e *Element) ReleaseWidth() {
	e.overrideWidth = 0
	e.hasOverrideWidth = false
}

// WidthOverridden reports whether a width override is in effect.
func (e *Element) WidthOverridden() bool {
	return e.hasOverrideWidth
}

// OverrideWidth returns the applied width override, or 0 when none is set.
func (e *Element) OverrideWidth() float64 {
	return e.overrideWidth
}

// DetachAt takes the element out of flow and pins it at an absolute
// viewport position.
func (e *Element) DetachAt(top, left float64) {
	e.mode = PositionDetached
	e.detachTop = top
	e.detachLeft = left
}

// SlideTo keeps the element in flow but shifts it down by offset.
func (e *Element) SlideTo(offset float64) {
	e.mode = PositionRelative
	e.relOffset = offset
}

// Reflow returns the element to normal flow positioning.
func (e *Element) Reflow() {
	e.mode = PositionFlow
	e.detachTop = 0
	e.detachLeft = 0
	e.relOffset = 0
}

// Mode returns the current position mode.
func (e *Element) Mode() PositionMode {
	return e.mode
}

// DetachedAt returns the absolute position applied by DetachAt.
func (e *Element) DetachedAt() (top, left float64) {
	return e.detachTop, e.detachLeft
}

// RelativeOffset returns the offset applied by SlideTo.
func (e *Element) RelativeOffset() float64 {
	return e.relOffset
}

// Hide makes the element (and its subtree) invisible.
func (e *Element) Hide() {
	e.hidden = true
}

// Show makes the element visible again.
func (e *Element) Show() {
	e.hidden = false
}

// Hidden reports whether the element itself is hidden.
func (e *Element) Hidden() bool {
	return e.hidden
}

// Visible walks to the root and reports whether the element is part of a
// mounted tree with no hidden ancestor. Geometry sampled from an
// invisible element is meaningless, so positioning ticks check this
// before touching any state.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
		if n.parent == nil {
			return n.mounted
		}
	}
	return false
}

// Closest returns the nearest element, starting from e and walking up,
// for which match returns true. Returns nil when no ancestor matches.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for n := e; n != nil; n = n.parent {
		if match(n) {
			return n
		}
	}
	return nil
}

// contains reports whether other is e or a descendant of e.
func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

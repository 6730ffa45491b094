package gridview

// Viewport is the scroll region whose position drives all header
// positioning decisions. It is always an explicit dependency: the core
// never reaches for an ambient window. Subscriptions return their own
// cancel func; callers own releasing them.
type Viewport interface {
	// Metrics samples the viewport's outer bounding box. Implementations
	// must report current geometry, not a cached snapshot.
	Metrics() Metrics
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
}

// scroller is implemented by viewports that expose their scroll offset.
// The layout pass uses it to place document content; the core positioning
// logic never reads it directly.
type scroller interface {
	ScrollTop() float64
}

// contentSizer is implemented by viewports that clamp scrolling against a
// known content height.
type contentSizer interface {
	SetContentHeight(h float64)
}

// DefaultScrollbarWidth is the gutter reserved by a scroll region when
// its content overflows. One cell on a terminal.
const DefaultScrollbarWidth = 1.0

// ----------------------------------------------------------------------------
// window viewport
// ----------------------------------------------------------------------------

// WindowViewport is the root scroll region: the whole window scrolls, and
// viewport coordinates are anchored at its top-left corner. The host pumps
// it with size updates and scroll commands; the component reacts through
// the subscription callbacks.
type WindowViewport struct {
	width, height float64
	scrollTop     float64
	contentHeight float64

	scrollSig signal
	resizeSig signal
}

// NewWindowViewport creates a window viewport with the given size.
func NewWindowViewport(width, height float64) *WindowViewport {
	return &WindowViewport{width: width, height: height}
}

// Metrics implements Viewport. The window's outer box starts at the
// origin by definition.
func (w *WindowViewport) Metrics() Metrics {
	return Metrics{Outer: Rect{Top: 0, Left: 0, Width: w.width, Height: w.height}}
}

// OnScroll implements Viewport.
func (w *WindowViewport) OnScroll(fn func()) func() {
	return w.scrollSig.subscribe(fn)
}

// OnResize implements Viewport.
func (w *WindowViewport) OnResize(fn func()) func() {
	return w.resizeSig.subscribe(fn)
}

// SetSize updates the window dimensions, notifying subscribers when the
// size actually changed.
func (w *WindowViewport) SetSize(width, height float64) {
	if w.width == width && w.height == height {
		return
	}
	w.width = width
	w.height = height
	w.clamp()
	w.resizeSig.emit()
}

// SetContentHeight records the scrollable document height for clamping.
func (w *WindowViewport) SetContentHeight(h float64) {
	w.contentHeight = h
	w.clamp()
}

// ScrollTop returns the current scroll offset.
func (w *WindowViewport) ScrollTop() float64 {
	return w.scrollTop
}

// MaxScroll returns the largest valid scroll offset.
func (w *WindowViewport) MaxScroll() float64 {
	return maxf(0, w.contentHeight-w.height)
}

// ScrollTo scrolls to the given offset, clamped into range. Subscribers
// fire only when the position actually moved.
func (w *WindowViewport) ScrollTo(top float64) {
	top = clampf(top, 0, w.MaxScroll())
	if top == w.scrollTop {
		return
	}
	w.scrollTop = top
	w.scrollSig.emit()
}

// ScrollBy scrolls relative to the current position.
func (w *WindowViewport) ScrollBy(delta float64) {
	w.ScrollTo(w.scrollTop + delta)
}

func (w *WindowViewport) clamp() {
	w.scrollTop = clampf(w.scrollTop, 0, w.MaxScroll())
}

// ----------------------------------------------------------------------------
// nested element viewport
// ----------------------------------------------------------------------------

// ElementViewport is a scrollable element sitting somewhere on screen: a
// nested scroll region rather than the window itself. Its outer box is
// the element's bounding rect, sampled fresh on every Metrics call.
type ElementViewport struct {
	el            *Element
	scrollTop     float64
	contentHeight float64
	gutter        float64 // scrollbar width reserved when content overflows

	scrollSig signal
	resizeSig signal
}

// NewElementViewport wraps a scroll region element.
func NewElementViewport(el *Element) *ElementViewport {
	return &ElementViewport{el: el, gutter: DefaultScrollbarWidth}
}

// Element returns the underlying scroll region element.
func (v *ElementViewport) Element() *Element {
	return v.el
}

// Metrics implements Viewport.
func (v *ElementViewport) Metrics() Metrics {
	return Metrics{Outer: v.el.BoundingRect()}
}

// OnScroll implements Viewport.
func (v *ElementViewport) OnScroll(fn func()) func() {
	return v.scrollSig.subscribe(fn)
}

// OnResize implements Viewport.
func (v *ElementViewport) OnResize(fn func()) func() {
	return v.resizeSig.subscribe(fn)
}

// SetRect moves or resizes the scroll region on screen. A size change
// notifies resize subscribers; a pure move does not.
func (v *ElementViewport) SetRect(r Rect) {
	old := v.el.BoundingRect().Size()
	v.el.SetRect(r)
	v.clamp()
	if old.DiffersBy(r.Size(), 1e-9) {
		v.resizeSig.emit()
	}
}

// SetGutter overrides the scrollbar width reserved on overflow.
func (v *ElementViewport) SetGutter(w float64) {
	v.gutter = w
}

// SetContentHeight records the scrolled content height for clamping and
// overflow detection.
func (v *ElementViewport) SetContentHeight(h float64) {
	v.contentHeight = h
	v.clamp()
}

// Overflows reports whether the content is taller than the region, which
// is what makes the scrollbar gutter appear.
func (v *ElementViewport) Overflows() bool {
	return v.contentHeight > v.el.BoundingRect().Height
}

// ClientWidth returns the width available to content: the region width
// minus the scrollbar gutter when one is showing.
func (v *ElementViewport) ClientWidth() float64 {
	w := v.el.BoundingRect().Width
	if v.Overflows() {
		w -= v.gutter
	}
	return maxf(0, w)
}

// ScrollTop returns the current scroll offset.
func (v *ElementViewport) ScrollTop() float64 {
	return v.scrollTop
}

// MaxScroll returns the largest valid scroll offset.
func (v *ElementViewport) MaxScroll() float64 {
	return maxf(0, v.contentHeight-v.el.BoundingRect().Height)
}

// ScrollTo scrolls to the given offset, clamped into range.
func (v *ElementViewport) ScrollTo(top float64) {
	top = clampf(top, 0, v.MaxScroll())
	if top == v.scrollTop {
		return
	}
	v.scrollTop = top
	v.scrollSig.emit()
}

// ScrollBy scrolls relative to the current position.
func (v *ElementViewport) ScrollBy(delta float64) {
	v.ScrollTo(v.scrollTop + delta)
}

func (v *ElementViewport) clamp() {
	v.scrollTop = clampf(v.scrollTop, 0, v.MaxScroll())
}

package gridview

// Options configure a TableView at construction. Scrolling behavior is
// fixed for the component's lifetime; everything else flows in later
// through Set.
type Options struct {
	Scrolling ScrollingOptions

	// Classes are free-form tags carried by the component, useful for
	// telling instances apart in logs.
	Classes []string

	// Theme overrides the default styles.
	Theme *Theme

	// RowHeight is the height of one body row. Defaults to 1.
	RowHeight float64

	// Gap is the space between columns, in cells. Defaults to 2.
	Gap int

	// List injects a virtualization engine, mostly for tests. When set,
	// the engine's own viewport drives the component. When nil the
	// TableView owns a VirtualList built on the configured viewport.
	List ListView
}

// ScrollingOptions is the loosely-typed scrolling configuration accepted
// at construction. Header takes any of the shapes NormalizeHeader
// understands.
type ScrollingOptions struct {
	// Viewport is the scrollable ancestor. Nil means the window adapter.
	// Ignored (forced to an internal scroll region) when the header
	// type is fixed.
	Viewport Viewport

	// Virtualized controls whether body rows are materialized in a
	// window or all at once.
	Virtualized bool

	// Header is the header configuration in any accepted shape: a type
	// name, a number or func (sticky offset), a map, or a HeaderSpec.
	Header any
}

// ScrollingConfig is the canonical scrolling configuration, immutable
// after construction.
type ScrollingConfig struct {
	Viewport    Viewport
	Virtualized bool
	Header      HeaderSpec
}

// StateUpdate is a partial update merged into the table state by Set.
// Nil fields keep their previous values; only what the caller names
// changes.
type StateUpdate struct {
	Cols     []Column
	HeadRows []Row
	BodyRows []Row
	FootRows []Row
	Events   map[string]RowHandler
}

// tableState is the merged state. Created empty at construction, mutated
// only through Set.
type tableState struct {
	cols     []Column
	headRows []Row
	bodyRows []Row
	footRows []Row
	events   map[string]RowHandler
}

// TableView renders a columnar dataset with a virtualized body and a
// header that can stay behind while the rows scroll. It owns its element
// subtree outright; callers must not reposition the elements directly.
//
// The lifecycle is configure once, Set repeatedly, Render to mount:
//
//	tv := gridview.New(gridview.Options{
//		Scrolling: gridview.ScrollingOptions{Viewport: vp, Virtualized: true, Header: "sticky"},
//	})
//	tv.Set(gridview.StateUpdate{Cols: cols, BodyRows: rows})
//	tv.Render()
type TableView struct {
	cfg     ScrollingConfig
	host    Viewport // viewport as provided (or defaulted); differs from cfg.Viewport in fixed mode
	classes []string
	theme   Theme
	rowH    float64
	gap     int

	state     tableState
	colWidths []int
	selected  int

	root      *Element
	container *Element
	headerEl  *Element
	fillerEl  *Element
	bodyEl    *Element
	scrollEl  *Element         // fixed mode: the internal scroll region
	region    *ElementViewport // fixed mode: viewport over scrollEl

	list     ListView
	ownsList bool
	header   *headerView
	footer   *footerView
	sticky   *stickyPositioner
	sync     *widthSync

	notify notifier
	subs   []func()

	docTop, docLeft float64
	frame           Rect // fixed-mode placement on screen
	hasFrame        bool

	laying   bool
	rendered bool
	removed  bool
}

// New builds a TableView from options. The header configuration is
// normalized here, exactly once; malformed input degrades to a static
// header rather than failing.
func New(opts Options) *TableView {
	t := &TableView{
		classes:  opts.Classes,
		theme:    DefaultTheme(),
		rowH:     opts.RowHeight,
		gap:      opts.Gap,
		selected: -1,
	}
	if opts.Theme != nil {
		t.theme = *opts.Theme
	}
	if t.rowH <= 0 {
		t.rowH = 1
	}
	if t.gap <= 0 {
		t.gap = 2
	}

	t.cfg.Header = NormalizeHeader(opts.Scrolling.Header)
	t.cfg.Virtualized = opts.Scrolling.Virtualized

	t.root = NewElement("table")
	t.container = NewElement("container")
	t.headerEl = NewElement("header")
	t.fillerEl = NewElement("filler")
	t.fillerEl.Hide()
	t.bodyEl = NewElement("body")
	t.scrollEl = NewElement("scrollRegion")

	vp := opts.Scrolling.Viewport
	if opts.List != nil {
		// An injected engine brings its own viewport.
		t.list = opts.List
		if lv := opts.List.Viewport(); lv != nil {
			vp = lv
		}
	}
	if vp == nil {
		vp = NewWindowViewport(80, 24)
	}
	t.host = vp

	if t.cfg.Header.Type == HeaderFixed {
		if ev, ok := vp.(*ElementViewport); ok && opts.List != nil {
			t.region = ev
		} else {
			// The configured viewport is ignored in fixed mode; the
			// header must live outside whatever scrolls, so the
			// component supplies its own scroll region.
			t.region = NewElementViewport(t.scrollEl)
			vp = t.region
		}
	}
	t.cfg.Viewport = vp

	footerEl := NewElement("footer")
	t.header = newHeaderView(t.headerEl, &t.theme)
	t.footer = newFooterView(footerEl, &t.theme)
	t.assembleTree(footerEl)

	return t
}

// assembleTree builds the element structure for the configured pipeline.
// Static and sticky share one shape; fixed keeps the header and footer
// outside the scroll region.
func (t *TableView) assembleTree(footerEl *Element) {
	t.root.ClearChildren()
	t.container.ClearChildren()
	t.scrollEl.ClearChildren()

	if t.cfg.Header.Type == HeaderFixed {
		t.scrollEl.Append(t.bodyEl)
		t.root.Append(t.headerEl, t.scrollEl, footerEl)
		t.container = t.root
		return
	}
	t.container.Append(t.headerEl, t.fillerEl, t.bodyEl, footerEl)
	t.root.Append(t.container)
}

// footerElement is the element owned by the footer delegate.
func (t *TableView) footerElement() *Element {
	return t.footer.el
}

// Config returns the canonical scrolling configuration.
func (t *TableView) Config() ScrollingConfig {
	return t.cfg
}

// Classes returns the tags given at construction.
func (t *TableView) Classes() []string {
	return t.classes
}

// Viewport returns the scroll region driving positioning decisions. In
// fixed mode this is the internal region, not the viewport passed in.
func (t *TableView) Viewport() Viewport {
	return t.cfg.Viewport
}

// Root returns the component's root element.
func (t *TableView) Root() *Element {
	return t.root
}

// On subscribes to a TableView notification and returns an unsubscribe
// func. External subscriptions survive re-renders; only Remove severs
// them implicitly by tearing the component down.
func (t *TableView) On(e Event, fn func()) func() {
	return t.notify.on(e, fn)
}

// PlaceAt positions the component inside the scrolled document, top
// pixels below the document origin. Content above the table is what
// gives a sticky header something to scroll past.
func (t *TableView) PlaceAt(top, left float64) *TableView {
	t.docTop, t.docLeft = top, left
	if t.rendered {
		t.layout()
	}
	return t
}

// SetFrame pins the component to a screen rect. Only meaningful in fixed
// mode, where the component is not part of any scrolled flow; other
// modes ignore it.
func (t *TableView) SetFrame(r Rect) *TableView {
	t.frame, t.hasFrame = r, true
	if t.rendered {
		t.layout()
	}
	return t
}

// Select highlights one body row. Pass a negative index to clear.
func (t *TableView) Select(index int) *TableView {
	if index == t.selected {
		return t
	}
	t.selected = index
	if t.rendered && t.list != nil {
		// Re-installing the template forces the window to re-render.
		t.list.Set(ListConfig{RowTemplate: t.rowTemplate()})
	}
	return t
}

// Selected returns the highlighted row index, -1 when none.
func (t *TableView) Selected() int {
	return t.selected
}

// ----------------------------------------------------------------------------
// public contract
// ----------------------------------------------------------------------------

// Set merges a partial update into the table state. Only fields present
// in the update change; everything else keeps its prior value. Body rows
// re-source the virtualization engine; events are forwarded to it
// verbatim. Column sizing hints are recomputed and the header and footer
// delegates redraw on every call, even an empty one. The optional done
// callbacks fire once the engine has applied the update.
func (t *TableView) Set(update StateUpdate, done ...func()) *TableView {
	var lc ListConfig

	if update.Cols != nil {
		t.state.cols = update.Cols
		lc.RowTemplate = t.rowTemplate() // widths changed, rows must re-render
	}
	if update.HeadRows != nil {
		t.state.headRows = update.HeadRows
	}
	if update.FootRows != nil {
		t.state.footRows = update.FootRows
	}
	if update.BodyRows != nil {
		t.state.bodyRows = update.BodyRows
		lc.Items = RowSlice(update.BodyRows)
	}
	if update.Events != nil {
		t.state.events = update.Events
		lc.Events = update.Events
	}

	t.refreshColumns()
	t.redrawDelegates()

	if t.rendered && t.list != nil {
		t.list.Set(lc)
		t.layout()
	}
	for _, fn := range done {
		if fn != nil {
			fn()
		}
	}
	return t
}

// Render mounts the component, selecting one of the three pipelines from
// the header type. Sticky wires the positioner to bound changes and
// redraws; fixed wires the width synchronizer to redraws; static needs
// neither. Rendering again releases the previous cycle's subscriptions
// before taking new ones, so handlers never accumulate across renders.
// The optional callbacks run once mounting completes.
func (t *TableView) Render(done ...func()) *TableView {
	t.releaseSubs()
	t.removed = false
	t.sticky = nil
	t.sync = nil
	t.root.mounted = true

	gridLogger.Debug("render", "mode", t.cfg.Header.Type,
		"virtualized", t.cfg.Virtualized, "classes", t.classes)

	if t.list == nil || t.ownsList {
		if t.list != nil {
			t.list.Remove()
		}
		t.list = NewVirtualList(t.cfg.Viewport, t.bodyEl, t.rowH, t.cfg.Virtualized)
		t.ownsList = true
	}

	vp := t.cfg.Viewport
	t.track(vp.OnScroll(t.boundChanged))
	t.track(vp.OnResize(t.resized))
	t.track(t.list.OnWillRedraw(func() { t.notify.emit(WillRedraw) }))
	t.track(t.list.OnDidRedraw(func() { t.notify.emit(DidRedraw) }))

	switch t.cfg.Header.Type {
	case HeaderSticky:
		t.sticky = newStickyPositioner(vp, t.cfg.Header, t.container, t.headerEl, t.fillerEl, t.bodyEl)
		tick := func() {
			// A redraw can change content sizes; positioning must sample
			// settled geometry, so lay out before ticking.
			t.layout()
			t.sticky.Tick()
			t.header.SetStuck(t.sticky.Engaged())
		}
		t.track(t.notify.on(DidChangeBound, tick))
		t.track(t.notify.on(DidRedraw, tick))
	case HeaderFixed:
		if t.region != nil {
			t.sync = newWidthSync(t.root, t.headerEl, t.bodyEl, t.region)
			t.track(t.notify.on(DidRedraw, func() {
				t.layout()
				t.sync.Sync()
			}))
		}
	}

	t.refreshColumns()
	t.redrawDelegates()
	t.layout()
	t.pushState()

	t.list.Render(func() {
		t.layout()
		for _, fn := range done {
			if fn != nil {
				fn()
			}
		}
	})
	t.rendered = true
	return t
}

// ScrollToItem delegates to the virtualization engine; the table has no
// scrolling logic of its own.
func (t *TableView) ScrollToItem(index int) *TableView {
	if t.list != nil {
		t.list.ScrollToItem(index)
	}
	return t
}

// IndexOfElement maps an element inside a rendered row back to its
// logical data index, combining the row's window position with the
// engine's first materialized index. ok is false when el is not part of
// any rendered row.
func (t *TableView) IndexOfElement(el *Element) (index int, ok bool) {
	if el == nil || t.list == nil || !t.root.contains(el) {
		return 0, false
	}
	row := el.Closest(func(n *Element) bool { return n.rowPos >= 0 })
	if row == nil {
		return 0, false
	}
	return row.rowPos + t.list.IndexFirst(), true
}

// DispatchRow fires the row event handler registered under name for the
// given data index. Unknown names and indexes are ignored.
func (t *TableView) DispatchRow(name string, index int) {
	if d, ok := t.list.(interface{ Dispatch(string, int) }); ok {
		d.Dispatch(name, index)
	}
}

// Remove tears the component down: header delegate, virtualization
// engine, footer delegate, each tolerating the others being absent, then
// every live subscription. Safe to call more than once; Render mounts
// the component again afterwards.
func (t *TableView) Remove() {
	if t.removed {
		return
	}
	t.removed = true
	t.releaseSubs()

	if t.header != nil {
		t.header.Remove()
	}
	if t.list != nil {
		t.list.Remove()
		if t.ownsList {
			t.list = nil
		}
	}
	if t.footer != nil {
		t.footer.Remove()
	}
	t.sticky = nil
	t.sync = nil
	t.rendered = false
	t.root.mounted = false
	gridLogger.Debug("removed", "classes", t.classes)
}

// ----------------------------------------------------------------------------
// internals
// ----------------------------------------------------------------------------

func (t *TableView) track(unsub func()) {
	t.subs = append(t.subs, unsub)
}

func (t *TableView) releaseSubs() {
	for _, unsub := range t.subs {
		unsub()
	}
	t.subs = nil
}

// boundChanged runs on viewport scroll: previously sampled geometry is
// stale, so lay out again and tell everyone who positions against it.
func (t *TableView) boundChanged() {
	t.layout()
	t.notify.emit(DidChangeBound)
}

// resized additionally recomputes column widths, since the available
// width is part of the sizing input.
func (t *TableView) resized() {
	t.refreshColumns()
	t.redrawDelegates()
	t.boundChanged()
}

// pushState feeds the full current state into a freshly mounted engine.
func (t *TableView) pushState() {
	lc := ListConfig{RowTemplate: t.rowTemplate()}
	if t.state.bodyRows != nil {
		lc.Items = RowSlice(t.state.bodyRows)
	}
	if t.state.events != nil {
		lc.Events = t.state.events
	}
	t.list.Set(lc)
}

// rowTemplate renders one body row: cells fitted to the current column
// widths, then the zebra or selection style for that index.
func (t *TableView) rowTemplate() RowTemplate {
	return func(row Row, index int) string {
		line := joinCells(row, t.state.cols, t.colWidths, t.gap)
		return t.theme.RowFor(index, t.selected).Render(line)
	}
}

// refreshColumns re-renders the column sizing hints: resolves widths
// against the available width and updates the body's natural width.
func (t *TableView) refreshColumns() {
	t.colWidths = resolveColumnWidths(t.state.cols, t.availWidth(), t.gap)
	nat := float64(columnsNaturalWidth(t.colWidths, t.gap))
	t.bodyEl.SetNaturalSize(nat, t.bodyEl.NaturalHeight())
}

// availWidth is the width column sizing resolves against: the client
// width of a nested region (so the scrollbar gutter is not fought over),
// the outer width otherwise.
func (t *TableView) availWidth() int {
	if ev, ok := t.cfg.Viewport.(*ElementViewport); ok {
		if w := int(ev.ClientWidth()); w > 0 {
			return w
		}
	}
	return int(t.cfg.Viewport.Metrics().Outer.Width)
}

func (t *TableView) redrawDelegates() {
	t.header.Redraw(t.state.cols, t.state.headRows, t.colWidths, t.gap)
	t.footer.Redraw(t.state.cols, t.state.footRows, t.colWidths, t.gap)
}

// effectiveWidth is an element's width for layout purposes: the
// synchronizer's override when one is in force, the natural width
// otherwise.
func effectiveWidth(el *Element) float64 {
	if el.WidthOverridden() {
		return el.OverrideWidth()
	}
	return el.NaturalWidth()
}

// layout writes fresh rects for the whole subtree from the current
// scroll position and content sizes. It runs before positioning ticks on
// the same event, so a tick always samples geometry that reflects the
// event it is reacting to. Re-entrant calls (a rect change notifying a
// viewport which lays out again) collapse into the outer pass.
func (t *TableView) layout() {
	if t.removed || t.laying {
		return
	}
	t.laying = true
	defer func() { t.laying = false }()

	if t.cfg.Header.Type == HeaderFixed && t.region != nil {
		t.layoutFixed()
		return
	}
	t.layoutFlow()
}

// layoutFlow stacks header, filler, body and footer inside the scrolled
// document. A detached header is pinned at its absolute position and
// leaves no slot behind; the filler, when shown, occupies that gap.
func (t *TableView) layoutFlow() {
	m := t.cfg.Viewport.Metrics()
	scrollTop := 0.0
	if sc, ok := t.cfg.Viewport.(scroller); ok {
		scrollTop = sc.ScrollTop()
	}

	top := m.Outer.Top + t.docTop - scrollTop
	left := m.Outer.Left + t.docLeft
	bodyW := effectiveWidth(t.bodyEl)
	headerW := effectiveWidth(t.headerEl)
	footerEl := t.footerElement()

	cy := top
	if t.headerEl.Mode() == PositionDetached {
		dt, dl := t.headerEl.DetachedAt()
		t.headerEl.SetRect(Rect{Top: dt, Left: dl, Width: headerW, Height: t.headerEl.NaturalHeight()})
	} else {
		t.headerEl.SetRect(Rect{Top: cy, Left: left, Width: headerW, Height: t.headerEl.NaturalHeight()})
		cy += t.headerEl.NaturalHeight()
	}
	if !t.fillerEl.Hidden() {
		t.fillerEl.SetRect(Rect{Top: cy, Left: left, Width: bodyW, Height: t.fillerEl.NaturalHeight()})
		cy += t.fillerEl.NaturalHeight()
	}
	t.bodyEl.SetRect(Rect{Top: cy, Left: left, Width: bodyW, Height: t.bodyEl.NaturalHeight()})
	cy += t.bodyEl.NaturalHeight()
	footerEl.SetRect(Rect{Top: cy, Left: left, Width: effectiveWidth(footerEl), Height: footerEl.NaturalHeight()})
	cy += footerEl.NaturalHeight()

	t.container.SetRect(Rect{Top: top, Left: left, Width: maxf(bodyW, headerW), Height: cy - top})
	t.root.SetRect(t.container.BoundingRect())

	if cs, ok := t.cfg.Viewport.(contentSizer); ok {
		cs.SetContentHeight(t.docTop + (cy - top))
	}
}

// layoutFixed pins the component to its screen frame: header on top, the
// scroll region below it, footer underneath. Only the body scrolls. The
// region rect is applied last so a resize notification from it samples
// finished geometry.
func (t *TableView) layoutFixed() {
	fr := t.frame
	if !t.hasFrame {
		fr = t.host.Metrics().Outer
	}

	rootW := fr.Width
	if t.root.WidthOverridden() {
		rootW = t.root.OverrideWidth()
	}
	headerH := t.headerEl.NaturalHeight()
	footerEl := t.footerElement()
	footerH := footerEl.NaturalHeight()
	regionH := maxf(0, fr.Height-headerH-footerH)
	tableW := effectiveWidth(t.bodyEl)

	t.root.SetRect(Rect{Top: fr.Top, Left: fr.Left, Width: rootW, Height: fr.Height})
	t.headerEl.SetRect(Rect{Top: fr.Top, Left: fr.Left, Width: effectiveWidth(t.headerEl), Height: headerH})
	t.bodyEl.SetRect(Rect{
		Top:    fr.Top + headerH - t.region.ScrollTop(),
		Left:   fr.Left,
		Width:  tableW,
		Height: t.bodyEl.NaturalHeight(),
	})
	footerEl.SetRect(Rect{Top: fr.Top + headerH + regionH, Left: fr.Left, Width: effectiveWidth(footerEl), Height: footerH})

	t.region.SetContentHeight(t.bodyEl.NaturalHeight())
	t.region.SetRect(Rect{Top: fr.Top + headerH, Left: fr.Left, Width: rootW, Height: regionH})
}

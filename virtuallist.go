package gridview

import "math"

// VirtualList materializes only the rows that intersect the viewport,
// plus a small margin, and recycles everything else. It implements the
// ListView contract consumed by TableView.
type VirtualList struct {
	vp          Viewport
	body        *Element
	rowH        float64
	virtualized bool
	margin      int // extra rows kept above and below the visible band

	items    Items
	events   map[string]RowHandler
	template RowTemplate

	indexFirst int
	indexStop  int // one past the last materialized row
	rowEls     []*Element
	lines      []string

	willRedraw signal
	didRedraw  signal

	subs    []func()
	dirty   bool // set when data or config changed since the last window
	removed bool
}

// NewVirtualList creates a list engine that materializes rows into body,
// driven by the given viewport. rowHeight is the fixed height of one row;
// virtualized false materializes everything.
func NewVirtualList(vp Viewport, body *Element, rowHeight float64, virtualized bool) *VirtualList {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	return &VirtualList{
		vp:          vp,
		body:        body,
		rowH:        rowHeight,
		virtualized: virtualized,
		margin:      2,
		indexFirst:  0,
		indexStop:   0,
	}
}

// Margin sets how many extra rows are materialized beyond each edge of
// the visible band.
func (v *VirtualList) Margin(rows int) *VirtualList {
	if rows >= 0 {
		v.margin = rows
	}
	return v
}

// Set implements ListView. Nil fields leave the previous value in place.
func (v *VirtualList) Set(cfg ListConfig) {
	if cfg.Items != nil {
		v.items = cfg.Items
		v.dirty = true
	}
	if cfg.Events != nil {
		v.events = cfg.Events
	}
	if cfg.RowTemplate != nil {
		v.template = cfg.RowTemplate
		v.dirty = true
	}
	v.syncContentHeight()
	v.redraw()
}

// Render implements ListView: subscribes to the viewport and materializes
// the first window.
func (v *VirtualList) Render(done func()) {
	v.subs = append(v.subs,
		v.vp.OnScroll(v.redraw),
		v.vp.OnResize(func() {
			v.dirty = true // a resize can change row widths even when the range holds
			v.redraw()
		}),
	)
	v.dirty = true
	v.syncContentHeight()
	v.redraw()
	if done != nil {
		done()
	}
}

// OnWillRedraw implements ListView.
func (v *VirtualList) OnWillRedraw(fn func()) func() {
	return v.willRedraw.subscribe(fn)
}

// OnDidRedraw implements ListView.
func (v *VirtualList) OnDidRedraw(fn func()) func() {
	return v.didRedraw.subscribe(fn)
}

// Viewport implements ListView.
func (v *VirtualList) Viewport() Viewport {
	return v.vp
}

// IndexFirst implements ListView.
func (v *VirtualList) IndexFirst() int {
	return v.indexFirst
}

// ItemCount returns the total number of rows in the data source.
func (v *VirtualList) ItemCount() int {
	if v.items == nil {
		return 0
	}
	return v.items.Len()
}

// ScrollToItem implements ListView: scrolls the minimal distance that
// brings the row fully into view. No-op when the viewport cannot scroll
// or the index is out of range.
func (v *VirtualList) ScrollToItem(index int) {
	sc, ok := v.vp.(interface {
		ScrollTop() float64
		ScrollTo(top float64)
	})
	if !ok || index < 0 || index >= v.ItemCount() {
		return
	}

	outer := v.vp.Metrics().Outer
	br := v.body.BoundingRect()
	rowTop := br.Top + float64(index)*v.rowH
	rowBottom := rowTop + v.rowH

	switch {
	case rowTop < outer.Top:
		sc.ScrollTo(sc.ScrollTop() + rowTop - outer.Top)
	case rowBottom > outer.Bottom():
		sc.ScrollTo(sc.ScrollTop() + rowBottom - outer.Bottom())
	}
}

// Dispatch invokes the handler bound to event for the given row. Unknown
// events and out-of-range rows are ignored.
func (v *VirtualList) Dispatch(event string, index int) {
	fn := v.events[event]
	if fn == nil || v.items == nil || index < 0 || index >= v.items.Len() {
		return
	}
	rows := v.items.Slice(index, index+1)
	if len(rows) == 1 {
		fn(index, rows[0])
	}
}

// Remove implements ListView. Safe to call more than once.
func (v *VirtualList) Remove() {
	if v.removed {
		return
	}
	v.removed = true
	for _, unsub := range v.subs {
		unsub()
	}
	v.subs = nil
	v.body.ClearChildren()
	v.rowEls = nil
	v.lines = nil
	v.indexFirst = 0
	v.indexStop = 0
}

// WindowRange returns the materialized half-open row range.
func (v *VirtualList) WindowRange() (first, stop int) {
	return v.indexFirst, v.indexStop
}

// Line returns the rendered line for an absolute row index, or "" when
// that row is not materialized.
func (v *VirtualList) Line(index int) (string, bool) {
	if index < v.indexFirst || index >= v.indexStop {
		return "", false
	}
	return v.lines[index-v.indexFirst], true
}

// RowElements returns the materialized row elements in window order.
func (v *VirtualList) RowElements() []*Element {
	return v.rowEls
}

// RowHeight returns the fixed per-row height.
func (v *VirtualList) RowHeight() float64 {
	return v.rowH
}

// ----------------------------------------------------------------------------
// window maintenance
// ----------------------------------------------------------------------------

// window computes the half-open row range to materialize for the current
// geometry.
func (v *VirtualList) window() (first, stop int) {
	total := v.ItemCount()
	if total == 0 {
		return 0, 0
	}
	if !v.virtualized {
		return 0, total
	}

	outer := v.vp.Metrics().Outer
	br := v.body.BoundingRect()

	first = int(math.Floor((outer.Top-br.Top)/v.rowH)) - v.margin
	count := int(math.Ceil(outer.Height/v.rowH)) + 2*v.margin

	if first < 0 {
		first = 0
	}
	if first > total {
		first = total
	}
	stop = first + count
	if stop > total {
		stop = total
	}
	return first, stop
}

// redraw re-materializes the window. It only announces a redraw when the
// range or the content actually changed; pure scrolls within the margin
// stay silent.
func (v *VirtualList) redraw() {
	if v.removed {
		return
	}
	first, stop := v.window()
	if !v.dirty && first == v.indexFirst && stop == v.indexStop {
		return
	}

	v.willRedraw.emit()

	v.indexFirst = first
	v.indexStop = stop
	v.dirty = false
	v.materialize()

	v.didRedraw.emit()
}

// materialize rebuilds the row elements and rendered lines for the
// current window.
func (v *VirtualList) materialize() {
	needed := v.indexStop - v.indexFirst

	v.body.ClearChildren()
	if cap(v.rowEls) < needed {
		v.rowEls = make([]*Element, needed)
		v.lines = make([]string, needed)
	} else {
		v.rowEls = v.rowEls[:needed]
		v.lines = v.lines[:needed]
	}
	if needed == 0 {
		return
	}

	br := v.body.BoundingRect()
	rows := v.items.Slice(v.indexFirst, v.indexStop)

	for i, row := range rows {
		abs := v.indexFirst + i
		el := NewElement("row")
		el.rowPos = i
		el.SetNaturalSize(br.Width, v.rowH)
		el.SetRect(Rect{
			Top:    br.Top + float64(abs)*v.rowH,
			Left:   br.Left,
			Width:  br.Width,
			Height: v.rowH,
		})
		v.rowEls[i] = el
		if v.template != nil {
			v.lines[i] = v.template(row, abs)
		} else {
			v.lines[i] = ""
		}
	}
	v.body.Append(v.rowEls...)
}

// syncContentHeight keeps the body's natural height in step with the
// data size. The layout pass reads it back to clamp viewport scrolling.
func (v *VirtualList) syncContentHeight() {
	h := float64(v.ItemCount()) * v.rowH
	v.body.SetNaturalSize(v.body.NaturalWidth(), h)
}

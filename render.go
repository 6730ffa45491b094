package gridview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines composes the component's visible frame: one styled line per
// viewport row, padded to the viewport width. The flow pipelines paint
// whatever the viewport currently shows of the document; the fixed
// pipeline paints header, scroll region and footer in their pinned
// places. Content wider than the viewport is left alone rather than
// clipped.
func (t *TableView) Lines() []string {
	if t.removed || !t.root.mounted {
		return nil
	}
	if t.cfg.Header.Type == HeaderFixed && t.region != nil {
		return t.linesFixed()
	}
	return t.linesFlow()
}

// RenderInto writes the composed frame into f starting at row 0.
func (t *TableView) RenderInto(f *Frame) {
	for y, line := range t.Lines() {
		f.SetLine(y, line)
	}
}

// linesFlow walks the viewport row by row and asks each element in turn
// whether it covers that row. A detached header is painted last so it
// overlays whatever scrolled beneath it.
func (t *TableView) linesFlow() []string {
	m := t.cfg.Viewport.Metrics()
	h := int(m.Outer.Height)
	w := int(m.Outer.Width)
	if h <= 0 {
		return nil
	}

	_, nested := t.cfg.Viewport.(*ElementViewport)
	footerEl := t.footerElement()

	out := make([]string, h)
	for y := 0; y < h; y++ {
		vy := m.Outer.Top + float64(y)
		line := ""

		switch {
		case t.headerInFlowAt(vy):
			line = t.header.Line(int(vy - t.headerDrawTop()))
		case !t.fillerEl.Hidden() && rectCovers(t.fillerEl.BoundingRect(), vy):
			line = t.theme.Filler.Render("")
		case rectCovers(t.bodyEl.BoundingRect(), vy):
			line = t.bodyLineAt(vy)
		case rectCovers(footerEl.BoundingRect(), vy):
			line = t.footer.Line(int(vy - footerEl.BoundingRect().Top))
		}
		out[y] = padLine(line, w)
	}

	if t.headerEl.Mode() == PositionDetached {
		top, left := t.headerEl.DetachedAt()
		for i := 0; i < t.header.Height(); i++ {
			y := int(top) - int(m.Outer.Top) + i
			if y < 0 || y >= h {
				continue
			}
			indent := int(left - m.Outer.Left)
			if indent < 0 {
				indent = 0
			}
			out[y] = padLine(strings.Repeat(" ", indent)+t.header.Line(i), w)
		}
	}

	if nested {
		t.overlayScrollbar(out, w)
	}
	return out
}

// headerInFlowAt reports whether the in-flow header (possibly slid down
// by the nested-sticky offset) covers viewport row vy.
func (t *TableView) headerInFlowAt(vy float64) bool {
	if t.headerEl.Mode() == PositionDetached || t.headerEl.Hidden() {
		return false
	}
	top := t.headerDrawTop()
	return vy >= top && vy < top+t.headerEl.NaturalHeight()
}

// headerDrawTop is where the in-flow header actually paints: its slot,
// shifted when the nested regime slid it.
func (t *TableView) headerDrawTop() float64 {
	top := t.headerEl.BoundingRect().Top
	if t.headerEl.Mode() == PositionRelative {
		top += t.headerEl.RelativeOffset()
	}
	return top
}

// bodyLineAt resolves the viewport row to a data row and returns its
// rendered line. Rows outside the materialized window paint blank; they
// will exist by the next redraw.
func (t *TableView) bodyLineAt(vy float64) string {
	br := t.bodyEl.BoundingRect()
	idx := int(math.Floor((vy - br.Top) / t.rowH))
	if line, ok := t.lineFor(idx); ok {
		return line
	}
	return ""
}

func (t *TableView) lineFor(idx int) (string, bool) {
	if lv, ok := t.list.(interface{ Line(int) (string, bool) }); ok {
		return lv.Line(idx)
	}
	return "", false
}

// linesFixed paints the pinned layout: header rows, then the scroll
// region's slice of the body with a scrollbar gutter on its right edge,
// then footer rows.
func (t *TableView) linesFixed() []string {
	rootR := t.root.BoundingRect()
	w := int(rootR.Width)
	rm := t.region.Metrics().Outer
	regionH := int(rm.Height)

	out := make([]string, 0, int(rootR.Height))
	for i := 0; i < t.header.Height(); i++ {
		out = append(out, padLine(t.header.Line(i), w))
	}
	for y := 0; y < regionH; y++ {
		line := t.bodyLineAt(rm.Top + float64(y))
		line = padLine(line, w-t.gutterWidth())
		out = append(out, line+t.scrollbarCell(y, regionH))
	}
	for i := 0; i < t.footer.Height(); i++ {
		out = append(out, padLine(t.footer.Line(i), w))
	}
	return out
}

// overlayScrollbar appends the gutter to every line of a nested region's
// frame.
func (t *TableView) overlayScrollbar(lines []string, w int) {
	g := t.gutterWidth()
	if g == 0 {
		return
	}
	h := len(lines)
	for y := 0; y < h; y++ {
		lines[y] = padLine(lines[y], w-g) + t.scrollbarCell(y, h)
	}
}

// gutterWidth is the width the scrollbar occupies right now: zero when
// the content fits.
func (t *TableView) gutterWidth() int {
	ev, ok := t.cfg.Viewport.(*ElementViewport)
	if !ok || !ev.Overflows() {
		return 0
	}
	return int(ev.Element().BoundingRect().Width - ev.ClientWidth())
}

// scrollbarCell renders the gutter cell for row y of a viewport vh rows
// tall: a thumb sized proportionally to the visible share of the
// content, floor one row, on a plain track.
func (t *TableView) scrollbarCell(y, vh int) string {
	ev, ok := t.cfg.Viewport.(*ElementViewport)
	if !ok || !ev.Overflows() || vh < 1 {
		return ""
	}
	g := t.gutterWidth()
	if g < 1 {
		return ""
	}

	content := float64(vh) + ev.MaxScroll()
	thumb := int(float64(vh) * float64(vh) / content)
	if thumb < 1 {
		thumb = 1
	}
	pos := 0
	if ev.MaxScroll() > 0 {
		pos = int(float64(vh-thumb) * ev.ScrollTop() / ev.MaxScroll())
	}

	cell := t.theme.Track.Render(strings.Repeat("│", g))
	if y >= pos && y < pos+thumb {
		cell = t.theme.Thumb.Render(strings.Repeat("█", g))
	}
	return cell
}

// padLine pads a styled line with spaces out to width display cells.
// Lines already wider are returned unchanged; horizontal clipping is out
// of scope.
func padLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// rectCovers reports whether vertical position vy falls inside r.
func rectCovers(r Rect, vy float64) bool {
	return vy >= r.Top && vy < r.Top+r.Height
}

package gridview

// headerView renders the column title line plus any extra head rows into
// styled lines, and keeps its element's natural size in step. TableView
// asks it to redraw on every Set and tears it down independently on
// Remove.
type headerView struct {
	el    *Element
	theme *Theme
	lines []string
	plain []string // unstyled text, re-styled when engagement flips
	stuck bool
}

func newHeaderView(el *Element, theme *Theme) *headerView {
	return &headerView{el: el, theme: theme}
}

// Redraw rebuilds the header lines from the current columns and head
// rows. A table with neither renders nothing and occupies no height.
func (h *headerView) Redraw(cols []Column, headRows []Row, widths []int, gap int) {
	h.plain = h.plain[:0]
	if len(cols) > 0 {
		titles := make(Row, len(cols))
		for i, c := range cols {
			titles[i] = c.Title()
		}
		h.plain = append(h.plain, joinCells(titles, cols, widths, gap))
	}
	for _, r := range headRows {
		h.plain = append(h.plain, joinCells(r, cols, widths, gap))
	}
	h.restyle()
	h.el.SetNaturalSize(float64(columnsNaturalWidth(widths, gap)), float64(len(h.plain)))
}

// SetStuck restyles the header for the given engagement state. The text
// does not change, only the style applied to it.
func (h *headerView) SetStuck(stuck bool) {
	if h.stuck == stuck {
		return
	}
	h.stuck = stuck
	h.restyle()
}

func (h *headerView) restyle() {
	style := h.theme.HeaderFor(h.stuck)
	h.lines = h.lines[:0]
	for _, l := range h.plain {
		h.lines = append(h.lines, style.Render(l))
	}
}

// Line returns the styled header line at i, or "" past the end.
func (h *headerView) Line(i int) string {
	if i < 0 || i >= len(h.lines) {
		return ""
	}
	return h.lines[i]
}

// Height returns the number of rendered header lines.
func (h *headerView) Height() int {
	return len(h.lines)
}

// Remove releases the view's content.
func (h *headerView) Remove() {
	h.lines = nil
	h.plain = nil
	h.el.SetNaturalSize(0, 0)
}

// footerView is the header's counterpart below the body. It renders the
// foot rows only; there is no title line to repeat.
type footerView struct {
	el    *Element
	theme *Theme
	lines []string
}

func newFooterView(el *Element, theme *Theme) *footerView {
	return &footerView{el: el, theme: theme}
}

// Redraw rebuilds the footer lines from the current foot rows.
func (f *footerView) Redraw(cols []Column, footRows []Row, widths []int, gap int) {
	f.lines = f.lines[:0]
	for _, r := range footRows {
		f.lines = append(f.lines, f.theme.Footer.Render(joinCells(r, cols, widths, gap)))
	}
	f.el.SetNaturalSize(float64(columnsNaturalWidth(widths, gap)), float64(len(f.lines)))
}

// Line returns the styled footer line at i, or "" past the end.
func (f *footerView) Line(i int) string {
	if i < 0 || i >= len(f.lines) {
		return ""
	}
	return f.lines[i]
}

// Height returns the number of rendered footer lines.
func (f *footerView) Height() int {
	return len(f.lines)
}

// Remove releases the view's content.
func (f *footerView) Remove() {
	f.lines = nil
	f.el.SetNaturalSize(0, 0)
}

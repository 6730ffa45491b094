package gridview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align sets horizontal cell alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one column: its header title and how its width is
// resolved. Configure with the fluent methods; value receivers return
// copies so column literals can be shared.
//
//	gridview.Col("Name").Flex(2)
//	gridview.Col("Size").Width(10).Align(gridview.AlignRight)
//	gridview.Col("Usage").Pct(0.25)
type Column struct {
	title string
	width int     // fixed character width
	pct   float64 // fraction of the available content width
	flex  float64 // share of the leftover space
	align Align
}

// Col creates a column that takes an equal share of leftover space.
func Col(title string) Column {
	return Column{title: title, flex: 1}
}

// Width pins the column to a fixed character width.
func (c Column) Width(w int) Column {
	c.width = w
	c.pct = 0
	c.flex = 0
	return c
}

// Pct sizes the column as a fraction of the available width.
func (c Column) Pct(p float64) Column {
	c.pct = p
	c.width = 0
	c.flex = 0
	return c
}

// Flex sizes the column as a weighted share of the space left after
// fixed and percent columns are placed.
func (c Column) Flex(f float64) Column {
	c.flex = f
	c.width = 0
	c.pct = 0
	return c
}

// Align sets the cell alignment for the column.
func (c Column) Align(a Align) Column {
	c.align = a
	return c
}

// Title returns the header label.
func (c Column) Title() string {
	return c.title
}

// resolveColumnWidths turns column sizing hints into concrete character
// widths for the given available width. Fixed widths are honored first,
// then percent columns get their cut, and flex columns split whatever
// remains by weight. Every column lands at one character minimum.
func resolveColumnWidths(cols []Column, avail, gap int) []int {
	widths := make([]int, len(cols))
	if len(cols) == 0 {
		return widths
	}

	content := avail - gap*(len(cols)-1)
	if content < len(cols) {
		content = len(cols)
	}

	remaining := content
	var flexTotal float64
	for i, c := range cols {
		switch {
		case c.width > 0:
			widths[i] = c.width
			remaining -= c.width
		case c.pct > 0:
			w := int(c.pct * float64(content))
			if w < 1 {
				w = 1
			}
			widths[i] = w
			remaining -= w
		default:
			f := c.flex
			if f <= 0 {
				f = 1
			}
			flexTotal += f
		}
	}

	if flexTotal > 0 {
		if remaining < 0 {
			remaining = 0
		}
		spent := 0
		last := -1
		for i, c := range cols {
			if widths[i] != 0 {
				continue
			}
			f := c.flex
			if f <= 0 {
				f = 1
			}
			w := int(f / flexTotal * float64(remaining))
			widths[i] = w
			spent += w
			last = i
		}
		// integer leftovers go to the last flex column
		if last >= 0 && remaining > spent {
			widths[last] += remaining - spent
		}
	}

	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

// columnsNaturalWidth returns the total line width the columns occupy.
func columnsNaturalWidth(widths []int, gap int) int {
	if len(widths) == 0 {
		return 0
	}
	total := gap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// padCell fits text into width display cells, truncating with an
// ellipsis and padding per the alignment. Width-aware for double-width
// runes.
func padCell(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// joinCells renders one row of cells at the given widths, separated by
// gap spaces.
func joinCells(cells Row, cols []Column, widths []int, gap int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		a := AlignLeft
		if i < len(cols) {
			a = cols[i].align
		}
		parts[i] = padCell(cells.Cell(i), widths[i], a)
	}
	return strings.Join(parts, strings.Repeat(" ", gap))
}

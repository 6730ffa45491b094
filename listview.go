package gridview

// Row is one record of cell text, ordered to match the configured
// columns.
type Row []string

// Cell returns the cell at column i, or "" when the row is ragged.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Items is the data source handed to the list engine: an
// index-addressable, length-bearing view over the body rows. Slice
// semantics follow the usual half-open [start, stop) convention and must
// tolerate out-of-range arguments.
type Items interface {
	Len() int
	Slice(start, stop int) []Row
}

// RowSlice adapts a plain row slice to the Items interface.
type RowSlice []Row

// Len implements Items.
func (s RowSlice) Len() int {
	return len(s)
}

// Slice implements Items, clamping both bounds into range.
func (s RowSlice) Slice(start, stop int) []Row {
	if start < 0 {
		start = 0
	}
	if stop > len(s) {
		stop = len(s)
	}
	if start >= stop {
		return nil
	}
	return s[start:stop]
}

// RowHandler reacts to a user event on a single row.
type RowHandler func(index int, row Row)

// RowTemplate renders one row into a display line. The dispatcher
// installs a template that applies column sizing and theme styles; hosts
// can substitute their own.
type RowTemplate func(row Row, index int) string

// ListConfig is the state pushed into the list engine on every update.
// Zero-value fields mean "leave unchanged", mirroring the dispatcher's
// own partial-update contract.
type ListConfig struct {
	Items       Items
	Events      map[string]RowHandler
	RowTemplate RowTemplate
}

// ListView is the virtualized-list collaborator the dispatcher drives.
// The engine owns row materialization and recycling; the dispatcher only
// observes redraw boundaries and the first materialized index.
type ListView interface {
	// Set applies a partial update and triggers a redraw of the
	// materialized window.
	Set(cfg ListConfig)

	// Render performs the initial mount and invokes done once the first
	// window has been materialized.
	Render(done func())

	// OnWillRedraw subscribes to the moment just before the window is
	// rebuilt. Returns an unsubscribe func.
	OnWillRedraw(fn func()) func()

	// OnDidRedraw subscribes to redraw completion. Returns an
	// unsubscribe func.
	OnDidRedraw(fn func()) func()

	// ScrollToItem scrolls the viewport the minimal distance that makes
	// the given row index visible.
	ScrollToItem(index int)

	// Viewport returns the scroll region driving this list.
	Viewport() Viewport

	// IndexFirst returns the logical index of the first materialized
	// row, 0 when nothing is materialized.
	IndexFirst() int

	// Remove tears the engine down and releases its subscriptions.
	Remove()
}

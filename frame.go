package gridview

import "strings"

// Frame is a block of styled terminal lines representing one drawable
// surface. Lines carry their ANSI styling inline; the Surface diffs and
// flushes them row by row.
type Frame struct {
	lines  []string
	dirty  []bool
	width  int
	height int
}

// NewFrame creates an empty frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		lines:  make([]string, height),
		dirty:  make([]bool, height),
		width:  width,
		height: height,
	}
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in rows.
func (f *Frame) Height() int {
	return f.height
}

// InBounds reports whether row y exists.
func (f *Frame) InBounds(y int) bool {
	return y >= 0 && y < f.height
}

// SetLine replaces row y and marks it dirty. Out-of-bounds rows are
// ignored.
func (f *Frame) SetLine(y int, s string) {
	if !f.InBounds(y) {
		return
	}
	if f.lines[y] == s {
		return
	}
	f.lines[y] = s
	f.dirty[y] = true
}

// Line returns row y, or "" when out of bounds.
func (f *Frame) Line(y int) string {
	if !f.InBounds(y) {
		return ""
	}
	return f.lines[y]
}

// RowDirty reports whether row y changed since the dirty flags were last
// cleared.
func (f *Frame) RowDirty(y int) bool {
	return f.InBounds(y) && f.dirty[y]
}

// ClearDirtyFlags resets change tracking for the next frame.
func (f *Frame) ClearDirtyFlags() {
	for i := range f.dirty {
		f.dirty[i] = false
	}
}

// Clear empties every row and marks the frame dirty.
func (f *Frame) Clear() {
	for i := range f.lines {
		if f.lines[i] != "" {
			f.lines[i] = ""
			f.dirty[i] = true
		}
	}
}

// Resize grows or shrinks the frame, keeping whatever content still
// fits. New rows start empty and dirty.
func (f *Frame) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	lines := make([]string, height)
	dirty := make([]bool, height)
	for y := 0; y < height; y++ {
		if y < f.height {
			lines[y] = f.lines[y]
			dirty[y] = f.dirty[y]
		} else {
			dirty[y] = true
		}
	}
	f.lines = lines
	f.dirty = dirty
	f.width = width
	f.height = height
}

// String dumps the frame's rows joined by newlines, styling intact.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

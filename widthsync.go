package gridview

// widthSync keeps a fixed header's width equal to the body table it
// describes. In fixed mode the header lives permanently outside the
// scroll region, so nothing keeps the two aligned by construction; worse,
// row virtualization can flip the region's scrollbar on and off between
// redraws, shifting the body by a gutter's width. The synchronizer
// therefore re-runs after every body redraw:
//
//	scrollbar = region outer width − region client width
//	header    = table width
//	component = table width + scrollbar
//
// so the header row, the gutter, and the body all line up.
type widthSync struct {
	root   *Element // component root, sized to table + gutter
	header *Element
	body   *Element
	region *ElementViewport
}

func newWidthSync(root, header, body *Element, region *ElementViewport) *widthSync {
	return &widthSync{root: root, header: header, body: body, region: region}
}

// Sync applies the width rule for the current geometry. Skipped while the
// component is not visible, same as a positioning tick.
func (ws *widthSync) Sync() {
	if !ws.root.Visible() {
		return
	}

	table := ws.body.NaturalWidth()
	outer := ws.region.Element().BoundingRect().Width
	scrollbar := maxf(0, outer-ws.region.ClientWidth())

	ws.header.SetWidth(table)
	ws.root.SetWidth(table + scrollbar)

	gridLogger.Debug("fixed width sync",
		"table", table, "scrollbar", scrollbar, "component", table+scrollbar)
}

package gridview

// stickyPositioner decides, once per tick, whether the header should be
// detached from flow and where it belongs. A tick fires on viewport
// scroll, viewport resize, and list redraw completion; each tick samples
// geometry exactly once and uses that snapshot for every decision it
// makes.
//
// Two regimes, mirroring the two viewport kinds:
//
//   - Window viewport: once the container top scrolls past the engagement
//     line the header detaches and pins to the viewport. A filler element
//     takes its place in flow so the body does not jump upward.
//   - Nested element viewport: the header never leaves flow. It slides
//     down inside the table by a clamped relative offset, which
//     approximates stickiness without disturbing the outer document.
//
// The positioner is recreated on every render, so engagement state and
// the resize hysteresis never leak across mounts.
type stickyPositioner struct {
	vp       Viewport
	spec     HeaderSpec
	windowed bool // vp is the root window, not a nested scroll region

	container *Element
	header    *Element
	filler    *Element
	body      *Element

	engaged  bool
	lastSize Size
	hasLast  bool
}

func newStickyPositioner(vp Viewport, spec HeaderSpec, container, header, filler, body *Element) *stickyPositioner {
	_, nested := vp.(*ElementViewport)
	return &stickyPositioner{
		vp:        vp,
		spec:      spec,
		windowed:  !nested,
		container: container,
		header:    header,
		filler:    filler,
		body:      body,
	}
}

// Engaged reports whether the header is currently detached from flow.
// Only meaningful for a window viewport; the nested regime never
// detaches.
func (p *stickyPositioner) Engaged() bool {
	return p.engaged
}

// Tick runs one positioning pass. Sampling geometry from a tree that is
// not visible would write garbage into the engagement state, so such
// ticks are skipped outright and retried whenever the next one fires.
func (p *stickyPositioner) Tick() {
	if !p.container.Visible() {
		return
	}

	m := p.vp.Metrics()
	rc := p.container.BoundingRect()
	offset := p.spec.ResolveOffset()

	if p.windowed {
		p.tickWindow(m, rc, offset)
		return
	}
	p.tickNested(m, rc, offset)
}

// tickWindow handles the window-viewport regime: detach past the
// engagement line, restore on the way back. Boundary equality stays in
// flow.
func (p *stickyPositioner) tickWindow(m Metrics, rc Rect, offset float64) {
	engage := rc.Top < m.Outer.Top+offset

	if engage {
		if !p.engaged {
			p.engaged = true
			p.hasLast = false // force a width measurement on entry
			gridLogger.Debug("sticky engaged",
				"containerTop", rc.Top, "viewportTop", m.Outer.Top, "offset", offset)
		}
		p.filler.SetNaturalSize(p.header.NaturalWidth(), p.headerHeight())
		p.filler.Show()
		p.header.DetachAt(m.Outer.Top+offset, rc.Left)
		p.resyncWidths(m)
		return
	}

	if p.engaged {
		p.engaged = false
		p.header.ReleaseWidth()
		p.body.ReleaseWidth()
		gridLogger.Debug("sticky disengaged", "containerTop", rc.Top)
	}
	p.filler.Hide()
	p.header.Reflow()
}

// tickNested handles the nested-viewport regime: the filler is never
// needed, and the header slides within the table's own height.
func (p *stickyPositioner) tickNested(m Metrics, rc Rect, offset float64) {
	p.filler.Hide()
	slide := clampf(m.Outer.Top+offset-rc.Top, 0, rc.Height)
	p.header.SlideTo(slide)
}

// resyncWidths keeps the detached header and the body table pixel
// identical. Measuring forces a reflow, so it only runs when the sampled
// viewport size moved by at least one unit in either dimension since the
// last measurement: release both widths to natural, read the container's
// resulting width, then pin both elements to it.
func (p *stickyPositioner) resyncWidths(m Metrics) {
	size := m.Outer.Size()
	if p.hasLast && !size.DiffersBy(p.lastSize, 1) {
		return
	}
	p.lastSize = size
	p.hasLast = true

	p.header.ReleaseWidth()
	p.body.ReleaseWidth()
	w := maxf(p.header.NaturalWidth(), p.body.NaturalWidth())
	p.header.SetWidth(w)
	p.body.SetWidth(w)
	gridLogger.Debug("sticky width resync", "width", w,
		"viewportW", size.Width, "viewportH", size.Height)
}

// headerHeight is the header's current rendered height, which is what the
// filler must occupy while the header is out of flow.
func (p *stickyPositioner) headerHeight() float64 {
	return p.header.NaturalHeight()
}

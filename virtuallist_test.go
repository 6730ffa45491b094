package gridview

import (
	"fmt"
	"testing"
)

func listFixture(viewH float64, total int, virtualized bool) (*VirtualList, *WindowViewport, *Element) {
	vp := NewWindowViewport(80, viewH)
	body := NewElement("body")
	body.SetRect(Rect{Top: 0, Left: 0, Width: 80, Height: float64(total)})

	vl := NewVirtualList(vp, body, 1, virtualized)
	vl.Set(ListConfig{
		Items:       RowSlice(rows(total)),
		RowTemplate: func(r Row, i int) string { return fmt.Sprintf("%d:%s", i, r.Cell(0)) },
	})
	return vl, vp, body
}

func TestVirtualListWindow(t *testing.T) {
	t.Run("CoversVisiblePlusMargin", func(t *testing.T) {
		vl, _, _ := listFixture(10, 100, true)
		first, stop := vl.WindowRange()
		if first != 0 || stop != 14 {
			t.Errorf("expected window [0,14), got [%d,%d)", first, stop)
		}
		if got := len(vl.RowElements()); got != 14 {
			t.Errorf("expected 14 materialized rows, got %d", got)
		}
	})

	t.Run("FollowsTheBody", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)

		// The body scrolled 20 rows up; the window slides with it.
		body.SetRect(Rect{Top: -20, Left: 0, Width: 80, Height: 100})
		vl.redraw()

		first, stop := vl.WindowRange()
		if first != 18 || stop != 32 {
			t.Errorf("expected window [18,32), got [%d,%d)", first, stop)
		}
	})

	t.Run("ClampsAtTheEnd", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)
		body.SetRect(Rect{Top: -95, Left: 0, Width: 80, Height: 100})
		vl.redraw()

		first, stop := vl.WindowRange()
		if first != 93 || stop != 100 {
			t.Errorf("expected window [93,100), got [%d,%d)", first, stop)
		}
	})

	t.Run("NonVirtualizedMaterializesEverything", func(t *testing.T) {
		vl, _, _ := listFixture(10, 50, false)
		first, stop := vl.WindowRange()
		if first != 0 || stop != 50 {
			t.Errorf("expected window [0,50), got [%d,%d)", first, stop)
		}
	})

	t.Run("EmptyData", func(t *testing.T) {
		vl, _, _ := listFixture(10, 0, true)
		first, stop := vl.WindowRange()
		if first != 0 || stop != 0 {
			t.Errorf("expected empty window, got [%d,%d)", first, stop)
		}
		if got := len(vl.RowElements()); got != 0 {
			t.Errorf("expected no rows, got %d", got)
		}
	})

	t.Run("MarginConfigurable", func(t *testing.T) {
		vp := NewWindowViewport(80, 10)
		body := NewElement("body")
		body.SetRect(Rect{Top: 0, Left: 0, Width: 80, Height: 100})
		vl := NewVirtualList(vp, body, 1, true).Margin(0)
		vl.Set(ListConfig{Items: RowSlice(rows(100))})

		first, stop := vl.WindowRange()
		if first != 0 || stop != 10 {
			t.Errorf("expected window [0,10) with no margin, got [%d,%d)", first, stop)
		}
	})
}

func TestVirtualListRedraw(t *testing.T) {
	t.Run("ScrollWithinMarginStaysSilent", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)

		redraws := 0
		vl.OnDidRedraw(func() { redraws++ })

		// One row of movement keeps the same window.
		body.SetRect(Rect{Top: -1, Left: 0, Width: 80, Height: 100})
		vl.redraw()
		if redraws != 0 {
			t.Errorf("expected a silent in-margin scroll, got %d redraws", redraws)
		}

		// Past the margin the window moves and the redraw announces.
		body.SetRect(Rect{Top: -5, Left: 0, Width: 80, Height: 100})
		vl.redraw()
		if redraws != 1 {
			t.Errorf("expected 1 redraw, got %d", redraws)
		}
	})

	t.Run("WillBeforeDid", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)

		var order []string
		vl.OnWillRedraw(func() { order = append(order, "will") })
		vl.OnDidRedraw(func() { order = append(order, "did") })

		body.SetRect(Rect{Top: -50, Left: 0, Width: 80, Height: 100})
		vl.redraw()

		if len(order) != 2 || order[0] != "will" || order[1] != "did" {
			t.Errorf("expected will then did, got %v", order)
		}
	})

	t.Run("DataChangeRedrawsSameWindow", func(t *testing.T) {
		vl, _, _ := listFixture(10, 100, true)
		redraws := 0
		vl.OnDidRedraw(func() { redraws++ })

		vl.Set(ListConfig{Items: RowSlice(rows(100))})
		if redraws != 1 {
			t.Errorf("expected a data change to redraw in place, got %d", redraws)
		}
	})

	t.Run("LinesFollowTheWindow", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)
		body.SetRect(Rect{Top: -20, Left: 0, Width: 80, Height: 100})
		vl.redraw()

		if line, ok := vl.Line(20); !ok || line != "20:u" {
			t.Errorf("expected line 20:u, got %q (ok=%v)", line, ok)
		}
		if _, ok := vl.Line(5); ok {
			t.Error("expected rows before the window to be unmaterialized")
		}
		if _, ok := vl.Line(40); ok {
			t.Error("expected rows past the window to be unmaterialized")
		}
	})

	t.Run("RowElementGeometry", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)
		body.SetRect(Rect{Top: -20, Left: 3, Width: 80, Height: 100})
		vl.redraw()

		els := vl.RowElements()
		first, _ := vl.WindowRange()
		for i, el := range els {
			want := Rect{Top: -20 + float64(first+i), Left: 3, Width: 80, Height: 1}
			if got := el.BoundingRect(); got != want {
				t.Fatalf("row %d: expected rect %+v, got %+v", i, want, got)
			}
			if el.rowPos != i {
				t.Fatalf("row %d: expected window position %d, got %d", i, i, el.rowPos)
			}
		}
	})
}

func TestVirtualListScrollToItem(t *testing.T) {
	setup := func() (*VirtualList, *WindowViewport, *Element) {
		vl, vp, body := listFixture(10, 100, true)
		vp.SetContentHeight(100)
		return vl, vp, body
	}

	t.Run("BelowComesToBottomEdge", func(t *testing.T) {
		vl, vp, _ := setup()
		vl.ScrollToItem(50)
		if got := vp.ScrollTop(); got != 41 {
			t.Errorf("expected minimal scroll to 41, got %v", got)
		}
	})

	t.Run("AboveComesToTopEdge", func(t *testing.T) {
		vl, vp, body := setup()
		vp.ScrollTo(41)
		body.SetRect(Rect{Top: -41, Left: 0, Width: 80, Height: 100})

		vl.ScrollToItem(30)
		if got := vp.ScrollTop(); got != 30 {
			t.Errorf("expected minimal scroll to 30, got %v", got)
		}
	})

	t.Run("VisibleRowDoesNotScroll", func(t *testing.T) {
		vl, vp, body := setup()
		vp.ScrollTo(30)
		body.SetRect(Rect{Top: -30, Left: 0, Width: 80, Height: 100})

		vl.ScrollToItem(35)
		if got := vp.ScrollTop(); got != 30 {
			t.Errorf("expected no movement for a visible row, got %v", got)
		}
	})

	t.Run("OutOfRangeIgnored", func(t *testing.T) {
		vl, vp, _ := setup()
		vl.ScrollToItem(-1)
		vl.ScrollToItem(100)
		if got := vp.ScrollTop(); got != 0 {
			t.Errorf("expected no movement, got %v", got)
		}
	})
}

func TestVirtualListDispatch(t *testing.T) {
	vl, _, _ := listFixture(10, 10, true)

	var gotIndex int
	var gotRow Row
	vl.Set(ListConfig{Events: map[string]RowHandler{
		"activate": func(i int, r Row) { gotIndex, gotRow = i, r },
	}})

	vl.Dispatch("activate", 7)
	if gotIndex != 7 || gotRow.Cell(0) != "h" {
		t.Errorf("expected handler called with (7, h), got (%d, %v)", gotIndex, gotRow)
	}

	vl.Dispatch("activate", 10)
	vl.Dispatch("missing", 3)
	if gotIndex != 7 {
		t.Errorf("expected out-of-range and unknown events ignored, got %d", gotIndex)
	}
}

func TestVirtualListLifecycle(t *testing.T) {
	t.Run("RenderSubscribesRemoveReleases", func(t *testing.T) {
		vl, vp, _ := listFixture(10, 100, true)
		vl.Render(nil)

		if got := vp.scrollSig.active(); got != 1 {
			t.Fatalf("expected 1 scroll subscription, got %d", got)
		}
		if got := vp.resizeSig.active(); got != 1 {
			t.Fatalf("expected 1 resize subscription, got %d", got)
		}

		vl.Remove()
		if got := vp.scrollSig.active(); got != 0 {
			t.Errorf("expected scroll subscription released, got %d", got)
		}
		if got := vp.resizeSig.active(); got != 0 {
			t.Errorf("expected resize subscription released, got %d", got)
		}
		if got := len(vl.RowElements()); got != 0 {
			t.Errorf("expected rows recycled, got %d", got)
		}

		vl.Remove() // idempotent
	})

	t.Run("RenderInvokesDone", func(t *testing.T) {
		vl, _, _ := listFixture(10, 10, true)
		called := false
		vl.Render(func() { called = true })
		if !called {
			t.Error("expected done callback")
		}
	})

	t.Run("RemovedEngineIgnoresRedraws", func(t *testing.T) {
		vl, _, body := listFixture(10, 100, true)
		vl.Remove()

		redraws := 0
		vl.OnDidRedraw(func() { redraws++ })
		body.SetRect(Rect{Top: -50, Left: 0, Width: 80, Height: 100})
		vl.redraw()
		if redraws != 0 {
			t.Errorf("expected no redraws after removal, got %d", redraws)
		}
	})
}

// gridpager: a file pager with a sticky column header, driven directly
// by a Surface. Scroll past the banner and the header pins to the top
// of the terminal; scroll back and it drops into the document again.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"gridview"
)

var banner = []string{
	"gridpager",
	"scroll past this banner and the column header pins to the top",
	"",
}

func main() {
	verbose := flag.Bool("v", false, "log engage/disengage transitions to stderr")
	flag.Parse()
	gridview.SetVerbose(*verbose)

	surf, err := gridview.NewSurface(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := surf.EnterRawMode(); err != nil {
		log.Fatal(err)
	}
	defer surf.ExitRawMode()

	// Reserve the bottom line for the status bar.
	sz := surf.Size()
	vp := gridview.NewWindowViewport(float64(sz.Cols), float64(sz.Rows-1))

	status := ""
	rows := makeEntries(420)

	tv := gridview.New(gridview.Options{
		Scrolling: gridview.ScrollingOptions{
			Viewport:    vp,
			Virtualized: true,
			Header:      "sticky",
		},
		Classes: []string{"pager"},
	})
	tv.PlaceAt(float64(len(banner)), 0)
	tv.Set(gridview.StateUpdate{
		Cols: []gridview.Column{
			gridview.Col("NAME").Flex(2),
			gridview.Col("KIND").Width(6),
			gridview.Col("SIZE").Width(10).Align(gridview.AlignRight),
			gridview.Col("MODIFIED").Width(16),
		},
		BodyRows: rows,
		FootRows: []gridview.Row{{fmt.Sprintf("%d entries", len(rows)), "", "", ""}},
		Events: map[string]gridview.RowHandler{
			"open": func(i int, r gridview.Row) {
				status = fmt.Sprintf("opened %s", r.Cell(0))
			},
		},
	})
	tv.Render()

	sel := 0
	tv.Select(sel)

	bannerStyle := lipgloss.NewStyle().Bold(true)
	barStyle := lipgloss.NewStyle().Faint(true)

	draw := func() {
		f := surf.Frame()
		f.Clear()
		tv.RenderInto(f)
		top := int(vp.ScrollTop())
		for i, line := range banner {
			f.SetLine(i-top, bannerStyle.Render(line))
		}
		bar := "j/k move · d/u page · g/G jump · enter open · q quit"
		if status != "" {
			bar += "   " + status
		}
		f.SetLine(f.Height()-1, barStyle.Render(bar))
		surf.Flush()
	}

	keys := make(chan string, 8)
	go readKeys(keys)

	draw()
	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return
			}
			switch k {
			case "q":
				return
			case "j", "down":
				if sel < len(rows)-1 {
					sel++
					tv.Select(sel)
					tv.ScrollToItem(sel)
				}
			case "k", "up":
				if sel > 0 {
					sel--
					tv.Select(sel)
					tv.ScrollToItem(sel)
				}
			case "d":
				vp.ScrollBy(vp.Metrics().Outer.Height / 2)
			case "u":
				vp.ScrollBy(-vp.Metrics().Outer.Height / 2)
			case "g", "home":
				sel = 0
				tv.Select(sel)
				vp.ScrollTo(0)
			case "G", "end":
				sel = len(rows) - 1
				tv.Select(sel)
				tv.ScrollToItem(sel)
			case "enter":
				tv.DispatchRow("open", sel)
			}
		case ts := <-surf.ResizeChan():
			vp.SetSize(float64(ts.Cols), float64(ts.Rows-1))
		}
		draw()
	}
}

// readKeys turns raw stdin bytes into key names. Arrow keys arrive as
// three-byte escape sequences; everything else is a single rune.
func readKeys(out chan<- string) {
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			close(out)
			return
		}
		for i := 0; i < n; i++ {
			b := buf[i]
			switch {
			case b == 0x1b && i+2 < n && buf[i+1] == '[':
				switch buf[i+2] {
				case 'A':
					out <- "up"
				case 'B':
					out <- "down"
				case 'H':
					out <- "home"
				case 'F':
					out <- "end"
				}
				i += 2
			case b == '\r' || b == '\n':
				out <- "enter"
			case b == 3: // ctrl-c
				out <- "q"
			default:
				out <- string(rune(b))
			}
		}
	}
}

func makeEntries(n int) []gridview.Row {
	kinds := []string{"go", "md", "json", "yaml", "txt", "log"}
	dirs := []string{"internal", "cmd", "docs", "testdata", "scripts"}
	rows := make([]gridview.Row, n)
	for i := range rows {
		kind := kinds[i%len(kinds)]
		name := fmt.Sprintf("%s/file-%03d.%s", dirs[i%len(dirs)], i, kind)
		size := fmt.Sprintf("%d B", 137+i*61%9000)
		mod := fmt.Sprintf("2025-%02d-%02d 14:%02d", 1+i%12, 1+i%27, i%60)
		rows[i] = gridview.Row{name, kind, size, mod}
	}
	return rows
}

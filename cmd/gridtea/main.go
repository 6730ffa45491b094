// gridtea: a service fleet browser with a fixed header and footer,
// hosted inside a bubbletea program. The header row and the item count
// stay pinned while the body scrolls between them. When stdout is not a
// terminal the fleet is dumped as a static table instead.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"gridview"
)

var helpStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	tv      *gridview.TableView
	input   textinput.Model
	status  *string
	sel     int
	total   int
	jumping bool
	ready   bool
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Bottom line is ours, the rest belongs to the table.
		m.tv.SetFrame(gridview.Rect{Width: float64(msg.Width), Height: float64(msg.Height - 1)})
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.sel < m.total-1 {
				m.sel++
				m.tv.Select(m.sel)
				m.tv.ScrollToItem(m.sel)
			}
		case "k", "up":
			if m.sel > 0 {
				m.sel--
				m.tv.Select(m.sel)
				m.tv.ScrollToItem(m.sel)
			}
		case "g":
			m.sel = 0
			m.tv.Select(0)
			m.tv.ScrollToItem(0)
		case "G":
			m.sel = m.total - 1
			m.tv.Select(m.sel)
			m.tv.ScrollToItem(m.sel)
		case "enter":
			m.tv.DispatchRow("inspect", m.sel)
		case "/":
			m.jumping = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if n, err := strconv.Atoi(m.input.Value()); err == nil && n >= 0 && n < m.total {
			m.sel = n
			m.tv.Select(n)
			m.tv.ScrollToItem(n)
		}
		m.jumping = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.jumping = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "measuring terminal..."
	}
	var b strings.Builder
	for _, l := range m.tv.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if m.jumping {
		b.WriteString(m.input.View())
	} else {
		bar := "j/k move · enter inspect · / jump to row · q quit"
		if *m.status != "" {
			bar += "   " + *m.status
		}
		b.WriteString(helpStyle.Render(bar))
	}
	return b.String()
}

func main() {
	rows := makeFleet(300)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		dump(rows)
		return
	}

	status := new(string)
	tv := gridview.New(gridview.Options{
		Scrolling: gridview.ScrollingOptions{
			Virtualized: true,
			Header:      map[string]any{"type": "fixed"},
		},
		Classes: []string{"fleet"},
	})
	tv.Set(gridview.StateUpdate{
		Cols: []gridview.Column{
			gridview.Col("SERVICE").Flex(1),
			gridview.Col("REGION").Width(12),
			gridview.Col("STATUS").Width(9),
			gridview.Col("LATENCY").Width(8).Align(gridview.AlignRight),
		},
		BodyRows: rows,
		FootRows: []gridview.Row{{fmt.Sprintf("%d services", len(rows)), "", "", ""}},
		Events: map[string]gridview.RowHandler{
			"inspect": func(i int, r gridview.Row) {
				*status = fmt.Sprintf("%s is %s in %s", r.Cell(0), r.Cell(2), r.Cell(1))
			},
		},
	})
	tv.Render()
	tv.Select(0)

	ti := textinput.New()
	ti.Prompt = "jump to: "
	ti.Placeholder = "row number"
	ti.CharLimit = 6

	m := model{tv: tv, input: ti, status: status, total: len(rows)}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// dump writes the fleet as a plain table, for pipes and CI logs.
func dump(rows []gridview.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"SERVICE", "REGION", "STATUS", "LATENCY"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Cell(0), r.Cell(1), r.Cell(2), r.Cell(3)})
	}
	tw.Render()
}

func makeFleet(n int) []gridview.Row {
	regions := []string{"us-east-1", "us-west-2", "eu-west-1", "ap-south-1"}
	states := []string{"healthy", "healthy", "healthy", "degraded", "down"}
	rows := make([]gridview.Row, n)
	for i := range rows {
		rows[i] = gridview.Row{
			fmt.Sprintf("api-%03d", i),
			regions[i%len(regions)],
			states[(i*7)%len(states)],
			fmt.Sprintf("%dms", 12+(i*37)%180),
		}
	}
	return rows
}

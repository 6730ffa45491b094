package gridview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"strconv"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Surface manages the terminal display with double-buffered frames and
// per-line diff flushes. It is the window adapter's backing store: the
// size it reports (and the SIGWINCH updates it streams) is what a
// WindowViewport gets fed with.
type Surface struct {
	front  *Frame    // what's currently displayed
	back   *Frame    // what we're drawing to
	writer io.Writer // output destination (usually os.Stdout)
	fd     int       // file descriptor for terminal operations

	width  int
	height int

	origTermios *unix.Termios
	inRawMode   bool

	resizeChan chan TermSize
	sigChan    chan os.Signal

	buf bytes.Buffer // reusable buffer for building output

	// protects frame access during resize
	mu sync.Mutex
}

// TermSize is a terminal size in character cells.
type TermSize struct {
	Cols int
	Rows int
}

// NewSurface creates a surface writing to the given writer. Pass nil to
// use os.Stdout.
func NewSurface(w io.Writer) (*Surface, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	cols, rows, err := getTerminalSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}

	return &Surface{
		front:      NewFrame(cols, rows),
		back:       NewFrame(cols, rows),
		writer:     w,
		fd:         fd,
		width:      cols,
		height:     rows,
		resizeChan: make(chan TermSize, 1),
		sigChan:    make(chan os.Signal, 1),
	}, nil
}

// getTerminalSize returns the current terminal dimensions, trying the
// ioctl first, then the portable term package, then the COLUMNS/LINES
// environment some IDE terminals set.
func getTerminalSize(fd int) (int, int, error) {
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}
	if cols, rows, err := term.GetSize(fd); err == nil && cols > 0 && rows > 0 {
		return cols, rows, nil
	}
	cols, cErr := strconv.Atoi(os.Getenv("COLUMNS"))
	rows, rErr := strconv.Atoi(os.Getenv("LINES"))
	if cErr == nil && rErr == nil && cols > 0 && rows > 0 {
		return cols, rows, nil
	}
	return 0, 0, fmt.Errorf("terminal size unavailable")
}

// Size returns the current surface dimensions.
func (s *Surface) Size() TermSize {
	return TermSize{Cols: s.width, Rows: s.height}
}

// Frame returns the back frame for drawing.
func (s *Surface) Frame() *Frame {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal
// resize.
func (s *Surface) ResizeChan() <-chan TermSize {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode and switches to the
// alternate screen.
func (s *Surface) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	s.inRawMode = true

	ossignal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // enter alternate screen
	s.writeString("\x1b[2J")     // clear, so the front frame matches the real screen
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l") // hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Surface) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")   // show cursor
	s.writeString("\x1b[?1049l") // exit alternate screen

	ossignal.Stop(s.sigChan)

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals turns SIGWINCH into resize notifications.
func (s *Surface) handleSignals() {
	for range s.sigChan {
		cols, rows, err := getTerminalSize(s.fd)
		if err != nil {
			continue
		}
		if cols == s.width && rows == s.height {
			continue
		}
		s.mu.Lock()
		s.width = cols
		s.height = rows
		s.front.Resize(cols, rows)
		s.back.Resize(cols, rows)
		// Clear both frames so no stale content survives the reflow.
		s.front.Clear()
		s.back.Clear()
		s.writeString("\x1b[2J")
		s.mu.Unlock()
		// Non-blocking send, outside the lock.
		select {
		case s.resizeChan <- TermSize{Cols: cols, Rows: rows}:
		default:
		}
	}
}

// Flush writes the back frame to the terminal, emitting only the rows
// that changed since the last flush.
func (s *Surface) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	changed := 0
	for y := 0; y < s.height; y++ {
		if !s.back.RowDirty(y) {
			continue
		}
		line := s.back.Line(y)
		if line == s.front.Line(y) {
			continue
		}
		changed++
		fmt.Fprintf(&s.buf, "\x1b[%d;1H", y+1)
		s.buf.WriteString(line)
		s.buf.WriteString("\x1b[0m\x1b[K")
		s.front.SetLine(y, line)
	}
	s.back.ClearDirtyFlags()
	s.front.ClearDirtyFlags()

	if changed > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// FlushFull redraws every row without diffing.
func (s *Surface) FlushFull() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.buf.WriteString("\x1b[2J\x1b[H")
	for y := 0; y < s.height; y++ {
		line := s.back.Line(y)
		fmt.Fprintf(&s.buf, "\x1b[%d;1H", y+1)
		s.buf.WriteString(line)
		s.buf.WriteString("\x1b[0m\x1b[K")
		s.front.SetLine(y, line)
	}
	s.back.ClearDirtyFlags()
	s.front.ClearDirtyFlags()
	s.writer.Write(s.buf.Bytes())
}

// Clear clears the back frame.
func (s *Surface) Clear() {
	s.back.Clear()
}

// ShowCursor makes the cursor visible.
func (s *Surface) ShowCursor() {
	s.writeString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (s *Surface) HideCursor() {
	s.writeString("\x1b[?25l")
}

// MoveCursor moves the cursor to the given position (0-indexed).
func (s *Surface) MoveCursor(x, y int) {
	fmt.Fprintf(s.writer, "\x1b[%d;%dH", y+1, x+1)
}

func (s *Surface) writeString(str string) {
	io.WriteString(s.writer, str)
}

package preview

import (
	"bufio"
	"os"

	"github.com/konradsz/igrep/internal/domain"
)

// Orientation selects how the context window is laid out relative to the
// result list: Vertical stacks it below, Horizontal puts it beside.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Line is one numbered line of the previewed file.
type Line struct {
	Number int
	Text   string
}

// Window is the computed context around the current match. It is replaced
// wholesale on every recompute, never mutated in place.
type Window struct {
	Path      string
	MatchLine int
	Lines     []Line
}

// DefaultRadius is the number of context lines shown on each side of the
// match until the user resizes the viewer.
const DefaultRadius = 5

// Viewer maintains the context window for the currently selected match.
// It owns the only file I/O in the core: a bounded read of the lines
// around the match.
type Viewer struct {
	radius      int
	orientation Orientation
	visible     bool
	window      Window
}

// NewViewer creates a hidden viewer with the given radius.
func NewViewer(radius int) *Viewer {
	if radius < 0 {
		radius = 0
	}
	return &Viewer{radius: radius, orientation: Vertical}
}

// Visible reports whether the viewer pane should be rendered.
func (v *Viewer) Visible() bool { return v.visible }

// Orientation returns the current layout orientation.
func (v *Viewer) Orientation() Orientation { return v.orientation }

// Radius returns the configured context radius.
func (v *Viewer) Radius() int { return v.radius }

// Window returns the last computed context window.
func (v *Viewer) Window() Window { return v.window }

// ToggleVertical shows the viewer vertically, hides it if it is already
// vertical, or reorients a horizontal viewer. Toggling is idempotent in
// pairs and never recomputes by itself; the caller refreshes afterwards.
func (v *Viewer) ToggleVertical() {
	switch {
	case !v.visible:
		v.visible = true
		v.orientation = Vertical
	case v.orientation == Vertical:
		v.visible = false
	default:
		v.orientation = Vertical
	}
}

// ToggleHorizontal mirrors ToggleVertical for the horizontal layout.
func (v *Viewer) ToggleHorizontal() {
	switch {
	case !v.visible:
		v.visible = true
		v.orientation = Horizontal
	case v.orientation == Horizontal:
		v.visible = false
	default:
		v.orientation = Horizontal
	}
}

// Hide hides the viewer and drops the window.
func (v *Viewer) Hide() {
	v.visible = false
	v.window = Window{}
}

// Grow increases the radius by one, clamped to max (derived from the
// terminal height by the caller).
func (v *Viewer) Grow(max int) {
	if v.radius < max {
		v.radius++
	}
}

// Shrink decreases the radius by one, clamped to zero.
func (v *Viewer) Shrink() {
	if v.radius > 0 {
		v.radius--
	}
}

// Refresh recomputes the window for the given match. A hidden viewer
// skips the read entirely. Read failures degrade to an empty window;
// a match near either end of the file yields a truncated one.
func (v *Viewer) Refresh(m domain.Match, ok bool) {
	if !v.visible || !ok {
		v.window = Window{}
		return
	}
	v.window = readWindow(m.Path, m.LineNumber, v.radius)
}

// readWindow reads lines [center-radius, center+radius] from the file.
// Line numbers below one or beyond end of file are simply absent.
func readWindow(path string, center, radius int) Window {
	file, err := os.Open(path)
	if err != nil {
		return Window{}
	}
	defer file.Close()

	first := center - radius
	if first < 1 {
		first = 1
	}
	last := center + radius

	w := Window{Path: path, MatchLine: center}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if n > last {
			break
		}
		if n >= first {
			w.Lines = append(w.Lines, Line{Number: n, Text: scanner.Text()})
		}
	}
	if scanner.Err() != nil {
		return Window{}
	}
	return w
}

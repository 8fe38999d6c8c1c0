package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/konradsz/igrep/internal/domain"
	"github.com/konradsz/igrep/internal/preview"
	"github.com/konradsz/igrep/internal/results"
)

// Context carries everything the renderer needs for one frame.
type Context struct {
	Width  int
	Height int

	Store  *results.Store
	Viewer *preview.Viewer

	Pattern      string
	Searching    bool
	Status       string
	PendingChord string
	ShortHelp    string

	EditingPattern bool
	TextInput      *textinput.Model

	ShowKeymap    bool
	KeymapContent string
	KeymapScroll  int
}

// Renderer draws the whole screen. The list viewport offset is kept
// between frames so the cursor scrolls instead of jumping.
type Renderer struct {
	styles *Styles
	popups *PopupRenderer
	offset int
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		popups: NewPopupRenderer(styles),
	}
}

// Render produces the full frame.
func (r *Renderer) Render(ctx Context) string {
	if ctx.Width == 0 || ctx.Height == 0 {
		return "Loading..."
	}

	footer := r.renderFooter(ctx)
	bodyHeight := ctx.Height - 2 // bar + short help
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	viewer := ctx.Viewer
	switch {
	case viewer != nil && viewer.Visible() && viewer.Orientation() == preview.Horizontal:
		viewerWidth := ctx.Width / 2
		list := r.renderList(ctx, ctx.Width-viewerWidth, bodyHeight)
		pane := r.renderViewerPane(viewer.Window(), viewerWidth, bodyHeight, true)
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, pane)

	case viewer != nil && viewer.Visible():
		paneHeight := viewer.Radius()*2 + 2 // window plus border
		if paneHeight > bodyHeight/2 {
			paneHeight = bodyHeight / 2
		}
		list := r.renderList(ctx, ctx.Width, bodyHeight-paneHeight)
		pane := r.renderViewerPane(viewer.Window(), ctx.Width, paneHeight, false)
		body = list + "\n" + pane

	default:
		body = r.renderList(ctx, ctx.Width, bodyHeight)
	}

	main := body + "\n" + footer

	if ctx.EditingPattern && ctx.TextInput != nil {
		popup := "Pattern: " + ctx.TextInput.View()
		return r.popups.RenderPopupOverlay(main, popup, ctx.Height, ctx.Width)
	}
	if ctx.ShowKeymap {
		content := scrollContent(ctx.KeymapContent, ctx.KeymapScroll, ctx.Height-6)
		return r.popups.RenderPopupOverlay(main, content, ctx.Height, ctx.Width)
	}

	return main
}

// renderList draws the hierarchical result list with the cursor kept in
// view.
func (r *Renderer) renderList(ctx Context, width, height int) string {
	if height < 1 {
		height = 1
	}

	if ctx.Store == nil || ctx.Store.IsEmpty() {
		text := "No results"
		if ctx.Searching {
			text = "Searching..."
		}
		lines := make([]string, height)
		lines[0] = r.styles.Dim.Render(text)
		return strings.Join(lines, "\n")
	}

	current, _ := ctx.Store.Current()

	var lines []string
	cursorLine := 0
	for _, group := range ctx.Store.Files() {
		lines = append(lines, r.renderFileHeader(group.Path, width))
		for _, m := range group.Matches {
			isCurrent := m.Path == current.Path && m.LineNumber == current.LineNumber &&
				len(m.Spans) > 0 && len(current.Spans) > 0 && m.Spans[0] == current.Spans[0]
			if isCurrent {
				cursorLine = len(lines)
			}
			lines = append(lines, r.renderMatchLine(m, width, isCurrent))
		}
	}

	// keep the cursor visible
	if cursorLine < r.offset {
		r.offset = cursorLine
	}
	if cursorLine >= r.offset+height {
		r.offset = cursorLine - height + 1
	}
	if max := len(lines) - height; r.offset > max {
		r.offset = max
	}
	if r.offset < 0 {
		r.offset = 0
	}

	end := r.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[r.offset:end]

	out := make([]string, height)
	copy(out, visible)
	return strings.Join(out, "\n")
}

func (r *Renderer) renderFileHeader(path string, width int) string {
	return r.styles.FileHeader.Render(runewidth.Truncate(path, width, "…"))
}

// renderMatchLine draws one match with its submatch spans highlighted.
// Long lines are clipped to the viewport; span offsets index the raw
// line so clipping happens on bytes before styling.
func (r *Renderer) renderMatchLine(m domain.Match, width int, current bool) string {
	prefix := fmt.Sprintf(" %4d: ", m.LineNumber)
	avail := width - runewidth.StringWidth(prefix)
	if avail < 1 {
		avail = 1
	}

	line := m.Line
	clipped := false
	cut := len(line)
	if runewidth.StringWidth(line) > avail {
		line = runewidth.Truncate(line, avail-1, "")
		cut = len(line)
		clipped = true
	}

	textStyle := r.styles.MatchText
	spanStyle := r.styles.MatchSpan
	numStyle := r.styles.LineNumber
	if current {
		textStyle = r.styles.CurrentLine
		spanStyle = r.styles.CurrentSpan
		numStyle = r.styles.CurrentLine
	}

	var b strings.Builder
	b.WriteString(numStyle.Render(prefix))

	pos := 0
	for _, span := range m.Spans {
		if span.Start >= cut {
			break
		}
		if span.Start < pos {
			continue
		}
		end := span.End
		if end > cut {
			end = cut
		}
		if span.Start > pos {
			b.WriteString(textStyle.Render(line[pos:span.Start]))
		}
		b.WriteString(spanStyle.Render(line[span.Start:end]))
		pos = end
	}
	if pos < cut {
		b.WriteString(textStyle.Render(line[pos:cut]))
	}
	if clipped {
		b.WriteString(r.styles.Dim.Render("…"))
	}

	if current {
		if pad := width - runewidth.StringWidth(prefix+line) - boolToInt(clipped); pad > 0 {
			b.WriteString(textStyle.Render(strings.Repeat(" ", pad)))
		}
	}

	return b.String()
}

// renderViewerPane draws the context window.
func (r *Renderer) renderViewerPane(w preview.Window, width, height int, horizontal bool) string {
	contentHeight := height - 1 // border row
	if contentHeight < 1 {
		contentHeight = 1
	}

	lines := make([]string, 0, contentHeight)
	for _, l := range w.Lines {
		if len(lines) == contentHeight {
			break
		}
		numStyle := r.styles.ViewerNumber
		lineStyle := r.styles.ViewerLine
		if l.Number == w.MatchLine {
			lineStyle = r.styles.ViewerCurrent
		}
		text := runewidth.Truncate(l.Text, width-8, "…")
		lines = append(lines, numStyle.Render(fmt.Sprintf(" %4d ", l.Number))+lineStyle.Render(text))
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	border := r.styles.ViewerBorder
	if horizontal {
		border = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("241")).
			Height(height).
			Width(width - 1)
		return border.Render(content)
	}
	return border.Width(width).Render(content)
}

// renderFooter draws the short help line and the status bar.
func (r *Renderer) renderFooter(ctx Context) string {
	helpLine := r.styles.FooterHelp.Render(runewidth.Truncate(ctx.ShortHelp, ctx.Width, ""))

	state := r.styles.BarFinished.Render(" FINISHED ")
	if ctx.Searching {
		state = r.styles.BarSearching.Render(" SEARCHING ")
	}

	var middle string
	middleStyle := r.styles.BarText
	if ctx.Status != "" {
		middle = " " + ctx.Status
		middleStyle = r.styles.BarError
	} else if ctx.Store != nil {
		middle = fmt.Sprintf(" Found %d matches in %d files",
			ctx.Store.MatchCount(), ctx.Store.FileCount())
		if removed := ctx.Store.RemovedCount(); removed > 0 {
			middle += fmt.Sprintf(" (%d filtered out)", removed)
		}
	}

	var right string
	if ctx.PendingChord != "" {
		right = r.styles.BarChord.Render(ctx.PendingChord+"…") + " "
	}
	if ctx.Store != nil && !ctx.Store.IsEmpty() {
		right += r.styles.BarPosition.Render(
			fmt.Sprintf("%d/%d ", ctx.Store.CursorOrdinal(), ctx.Store.MatchCount()))
	}

	// clip the middle so the bar never wraps
	avail := ctx.Width - lipgloss.Width(state) - lipgloss.Width(right)
	if avail < 0 {
		avail = 0
	}
	middle = runewidth.Truncate(middle, avail, "…")

	pad := avail - runewidth.StringWidth(middle)
	if pad < 0 {
		pad = 0
	}
	bar := state + middleStyle.Render(middle) + strings.Repeat(" ", pad) + right

	return helpLine + "\n" + bar
}

// scrollContent windows popup content that is taller than the screen.
func scrollContent(content string, offset, height int) string {
	if height < 5 {
		height = 5
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	if max := len(lines) - height; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	visible := lines[offset : offset+height]
	if offset > 0 {
		visible[0] = "↑ (more above)"
	}
	if offset+height < len(lines) {
		visible[len(visible)-1] = "↓ (more below)"
	}
	return strings.Join(visible, "\n")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

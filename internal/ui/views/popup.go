package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// RenderPopupOverlay renders a popup centered over the main content. The
// base content is desaturated so the popup stands out; since the
// desaturated base is plain text it can be sliced at column boundaries.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.PopupBox.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	popupW := lipgloss.Width(styledPopup)
	popupH := len(popupLines)

	x := (width - popupW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - popupH) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(mainContent, "\n")
	out := make([]string, height)
	for row := 0; row < height; row++ {
		var plain string
		if row < len(baseLines) {
			plain = ansiRE.ReplaceAllString(baseLines[row], "")
		}
		if w := runewidth.StringWidth(plain); w < width {
			plain += strings.Repeat(" ", width-w)
		}

		p := row - y
		if p < 0 || p >= popupH {
			out[row] = pr.styles.Dim.Render(plain)
			continue
		}

		left := runewidth.Truncate(plain, x, "")
		right := runewidth.TruncateLeft(plain, x+popupW, "")
		out[row] = pr.styles.Dim.Render(left) + popupLines[p] + pr.styles.Dim.Render(right)
	}

	return strings.Join(out, "\n")
}

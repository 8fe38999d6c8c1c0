package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	FileHeader    lipgloss.Style
	LineNumber    lipgloss.Style
	MatchText     lipgloss.Style
	MatchSpan     lipgloss.Style
	CurrentLine   lipgloss.Style
	CurrentSpan   lipgloss.Style
	BarSearching  lipgloss.Style
	BarFinished   lipgloss.Style
	BarText       lipgloss.Style
	BarChord      lipgloss.Style
	BarError      lipgloss.Style
	BarPosition   lipgloss.Style
	FooterHelp    lipgloss.Style
	ViewerBorder  lipgloss.Style
	ViewerNumber  lipgloss.Style
	ViewerLine    lipgloss.Style
	ViewerCurrent lipgloss.Style
	PopupBox      lipgloss.Style
	Dim           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		FileHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MatchText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MatchSpan: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
		CurrentLine: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("255")),
		CurrentSpan: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true).
			Foreground(lipgloss.Color("203")),
		BarSearching: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")),
		BarFinished: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("78")),
		BarText:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		BarChord:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		BarError:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		BarPosition: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FooterHelp:  lipgloss.NewStyle().Faint(true),
		ViewerBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("241")),
		ViewerNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ViewerLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ViewerCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

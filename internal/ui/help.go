package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// KeymapRenderer handles keymap content rendering
type KeymapRenderer struct {
	keys KeyMap
}

// NewKeymapRenderer creates a new keymap renderer
func NewKeymapRenderer(keys KeyMap) *KeymapRenderer {
	return &KeymapRenderer{keys: keys}
}

// RenderKeymapContent renders the full key listing, shown both in the
// keymap popup and in the ov pager.
func (r *KeymapRenderer) RenderKeymapContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		name string
		rows [][2]string
	}{
		{"Navigation", [][2]string{
			{r.keys.NextMatch.Help().Key, r.keys.NextMatch.Help().Desc},
			{r.keys.PrevMatch.Help().Key, r.keys.PrevMatch.Help().Desc},
			{r.keys.NextFile.Help().Key, r.keys.NextFile.Help().Desc},
			{r.keys.PrevFile.Help().Key, r.keys.PrevFile.Help().Desc},
			{r.keys.Top.Help().Key, r.keys.Top.Help().Desc},
			{r.keys.Bottom.Help().Key, r.keys.Bottom.Help().Desc},
		}},
		{"Results", [][2]string{
			{r.keys.Open.Help().Key, r.keys.Open.Help().Desc},
			{r.keys.Delete.Help().Key, r.keys.Delete.Help().Desc},
			{r.keys.DeleteFile.Help().Key, r.keys.DeleteFile.Help().Desc},
			{r.keys.Rerun.Help().Key, r.keys.Rerun.Help().Desc},
			{r.keys.Pattern.Help().Key, r.keys.Pattern.Help().Desc},
		}},
		{"Context Viewer", [][2]string{
			{r.keys.ToggleV.Help().Key, r.keys.ToggleV.Help().Desc},
			{r.keys.ToggleH.Help().Key, r.keys.ToggleH.Help().Desc},
			{r.keys.Grow.Help().Key, r.keys.Grow.Help().Desc},
			{r.keys.Shrink.Help().Key, r.keys.Shrink.Help().Desc},
		}},
		{"Other", [][2]string{
			{r.keys.Keymap.Help().Key, r.keys.Keymap.Help().Desc},
			{r.keys.Quit.Help().Key, r.keys.Quit.Help().Desc},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("igrep keymap"))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.name))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString(fmt.Sprintf("  %-24s %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", row[0])),
				descStyle.Render(row[1])))
		}
	}

	b.WriteString(descStyle.Render("\n  j/k scroll · o open in pager · Esc close"))

	return strings.TrimRight(b.String(), "\n")
}

// KeymapOps shows the keymap in the ov pager
type KeymapOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewKeymapOps creates a new keymap operations instance
func NewKeymapOps(program *tea.Program) *KeymapOps {
	return &KeymapOps{
		program: program,
	}
}

// ShowKeymapInPager shows the keymap using ov
func (h *KeymapOps) ShowKeymapInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

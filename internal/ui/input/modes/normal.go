package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/konradsz/igrep/internal/ui/input/types"
)

// NormalMode is the browsing mode. Besides direct keys it runs a
// two-key chord machine: "g" and "d" arm a pending chord ("gg" jumps to
// the first match, "dd" deletes the current match, "dw" the current
// file). A key that completes no chord abandons the pending state and
// is reprocessed as ordinary input, so "dj" still moves down.
type NormalMode struct {
	pending string
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

// Pending returns the armed chord prefix ("g" or "d"), empty when idle.
// The bottom bar shows it as a hint.
func (m *NormalMode) Pending() string {
	return m.pending
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.pending = ""
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.pending = ""
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if m.pending != "" {
		return m.handleChord(msg, ctx)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "prev-match"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "next-match"}}, true

	case tea.KeyLeft, tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "prev-file"}}, true

	case tea.KeyRight, tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "next-file"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case tea.KeyDelete:
		return []types.Action{types.DeleteMatchAction{}}, true

	case tea.KeyEnter:
		if ctx.HasResults() {
			return []types.Action{types.OpenEditorAction{}}, true
		}
		return nil, true

	case tea.KeyF5:
		return []types.Action{types.RerunSearchAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "next-match"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "prev-match"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "prev-file"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "next-file"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case "g", "d":
		m.pending = msg.String()
		return nil, true // armed, wait for the second key

	case "v":
		return []types.Action{types.ToggleViewerAction{Orientation: "vertical"}}, true

	case "s":
		return []types.Action{types.ToggleViewerAction{Orientation: "horizontal"}}, true

	case "+", "=":
		return []types.Action{types.ResizeViewerAction{Delta: 1}}, true

	case "-":
		return []types.Action{types.ResizeViewerAction{Delta: -1}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModePattern,
			Data: ctx.Pattern(),
		}}, true

	case "?":
		return []types.Action{types.ToggleKeymapAction{}}, true

	case "q", "esc":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *NormalMode) handleChord(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	pending := m.pending
	m.pending = ""

	switch pending + msg.String() {
	case "gg":
		return []types.Action{types.NavigateAction{Direction: "top"}}, true
	case "dd":
		return []types.Action{types.DeleteMatchAction{}}, true
	case "dw":
		return []types.Action{types.DeleteFileAction{}}, true
	}

	// no chord completed; the key starts over as plain input
	return m.HandleKey(msg, ctx)
}

package types

// Navigation actions
type NavigateAction struct {
	Direction string // "next-match", "prev-match", "next-file", "prev-file", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// Deletion actions
type DeleteMatchAction struct{}

func (a DeleteMatchAction) Type() string { return "delete_match" }

type DeleteFileAction struct{}

func (a DeleteFileAction) Type() string { return "delete_file" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional data for the mode (prefill for text modes)
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitPatternAction struct {
	Pattern string
}

func (a SubmitPatternAction) Type() string { return "submit_pattern" }

type CancelPatternAction struct{}

func (a CancelPatternAction) Type() string { return "cancel_pattern" }

// Command actions
type OpenEditorAction struct{}

func (a OpenEditorAction) Type() string { return "open_editor" }

type RerunSearchAction struct{}

func (a RerunSearchAction) Type() string { return "rerun_search" }

type ToggleViewerAction struct {
	Orientation string // "vertical" or "horizontal"
}

func (a ToggleViewerAction) Type() string { return "toggle_viewer" }

type ResizeViewerAction struct {
	Delta int // +1 grow, -1 shrink
}

func (a ResizeViewerAction) Type() string { return "resize_viewer" }

type ToggleKeymapAction struct{}

func (a ToggleKeymapAction) Type() string { return "toggle_keymap" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

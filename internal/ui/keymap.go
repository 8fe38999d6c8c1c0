package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding for the keymap popup and the ov pager view.
type KeyMap struct {
	NextMatch  key.Binding
	PrevMatch  key.Binding
	NextFile   key.Binding
	PrevFile   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Open       key.Binding
	Delete     key.Binding
	DeleteFile key.Binding
	Rerun      key.Binding
	Pattern    key.Binding
	ToggleV    key.Binding
	ToggleH    key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Keymap     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMatch: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous match"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l/PgDn", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h/PgUp", "previous file"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("gg/Home", "first match"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/End", "last match"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open match in editor"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "d"),
			key.WithHelp("dd/Del", "exclude match"),
		),
		DeleteFile: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("dw", "exclude whole file"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "re-run search"),
		),
		Pattern: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit pattern"),
		),
		ToggleV: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle context viewer (vertical)"),
		),
		ToggleH: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle context viewer (horizontal)"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow context viewer"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink context viewer"),
		),
		Keymap: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle keymap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
	}
}

// FullHelp groups the bindings for bubbles' help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextMatch, k.PrevMatch, k.NextFile, k.PrevFile, k.Top, k.Bottom},
		{k.Open, k.Delete, k.DeleteFile, k.Rerun, k.Pattern},
		{k.ToggleV, k.ToggleH, k.Grow, k.Shrink},
		{k.Keymap, k.Quit},
	}
}

// ShortHelp is required by bubbles' help interface; the popup uses
// FullHelp only.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Pattern, k.Keymap, k.Quit}
}

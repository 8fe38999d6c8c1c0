package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/konradsz/igrep/internal/ui/input/types"
)

// PatternMode edits the search pattern. Submitting re-runs the search;
// cancelling keeps the previous pattern and results.
type PatternMode struct {
	TextInputMode
}

func NewPatternMode(ti *textinput.Model) *PatternMode {
	return &PatternMode{
		TextInputMode: NewTextInputMode(types.ModePattern, "pattern", "Pattern: ", ti),
	}
}

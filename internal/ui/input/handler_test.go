package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konradsz/igrep/internal/ui/input/types"
)

type stubContext struct {
	hasResults bool
	pattern    string
}

func (c stubContext) HasResults() bool { return c.hasResults }
func (c stubContext) Pattern() string  { return c.pattern }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashEntersPatternModeWithPrefill(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("/"), stubContext{pattern: "previous"})

	assert.Equal(t, types.ModePattern, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "previous", h.TextInput().Value())
	for _, a := range actions {
		_, isChange := a.(types.ChangeModeAction)
		assert.False(t, isChange, "mode changes are internal to the handler")
	}
}

func TestTypingUpdatesPattern(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(runes("a"), ctx)

	var got string
	for _, a := range actions {
		if u, ok := a.(types.UpdateTextAction); ok {
			got = u.Text
		}
	}
	assert.Equal(t, "a", got)
}

func TestEnterSubmitsPattern(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)

	var submitted string
	for _, a := range actions {
		if s, ok := a.(types.SubmitPatternAction); ok {
			submitted = s.Pattern
		}
	}
	assert.Equal(t, "x", submitted)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestEscCancelsPattern(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEscape}, ctx)

	var cancelled bool
	for _, a := range actions {
		if _, ok := a.(types.CancelPatternAction); ok {
			cancelled = true
		}
	}
	assert.True(t, cancelled)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestPendingChordVisibleThroughHandler(t *testing.T) {
	h := New()

	h.HandleKey(runes("d"), stubContext{})
	assert.Equal(t, "d", h.PendingChord())

	h.HandleKey(runes("d"), stubContext{})
	assert.Empty(t, h.PendingChord())
}

func TestResetReturnsToNormalMode(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("z"), ctx)
	h.Reset()

	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Empty(t, h.PendingChord())
}

package ui

import (
	"github.com/konradsz/igrep/internal/domain"
	"github.com/konradsz/igrep/internal/search"
)

// searchEventMsg delivers one feed event to the Update loop. The feed
// pointer identifies the producing run; events from a feed that is no
// longer current are dropped instead of applied.
type searchEventMsg struct {
	feed  *search.Feed
	event domain.DomainEvent
}

// feedClosedMsg signals that a feed's event channel has been drained.
type feedClosedMsg struct {
	feed *search.Feed
}

// editorFinishedMsg contains the result of a foreground editor run
type editorFinishedMsg struct {
	err error
}

// keymapPagerMsg contains the result of a keymap pager command
type keymapPagerMsg struct {
	err error
}

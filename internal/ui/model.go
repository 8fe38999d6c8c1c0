package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/konradsz/igrep/internal/config"
	"github.com/konradsz/igrep/internal/domain"
	"github.com/konradsz/igrep/internal/editor"
	"github.com/konradsz/igrep/internal/preview"
	"github.com/konradsz/igrep/internal/results"
	"github.com/konradsz/igrep/internal/search"
	"github.com/konradsz/igrep/internal/ui/input"
	inputtypes "github.com/konradsz/igrep/internal/ui/input/types"
	"github.com/konradsz/igrep/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config    *config.Config
	opts      domain.SearchOptions
	editorCmd *editor.Command

	store        *results.Store
	viewer       *preview.Viewer
	inputHandler *input.Handler
	renderer     *views.Renderer

	keys      KeyMap
	help      help.Model
	keymap    *KeymapRenderer
	keymapOps *KeymapOps

	// current feed; events carrying a different feed pointer are stale
	feed *search.Feed

	width        int
	height       int
	searching    bool
	status       string
	showKeymap   bool
	keymapScroll int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, opts domain.SearchOptions, editorCmd *editor.Command) *Model {
	keys := DefaultKeyMap()

	return &Model{
		config:       cfg,
		opts:         opts,
		editorCmd:    editorCmd,
		store:        results.NewStore(),
		viewer:       preview.NewViewer(cfg.ContextRadius),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		keys:         keys,
		help:         help.New(),
		keymap:       NewKeymapRenderer(keys),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.keymapOps = NewKeymapOps(p)
}

// Init starts the first search
func (m *Model) Init() tea.Cmd {
	m.searching = true
	m.feed = search.Start(m.opts)
	return listenFeed(m.feed)
}

// listenFeed pumps one event from the feed into the Update loop; it is
// re-armed after each delivery.
func listenFeed(f *search.Feed) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-f.Events()
		if !ok {
			return feedClosedMsg{feed: f}
		}
		return searchEventMsg{feed: f, event: event}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case searchEventMsg:
		if msg.feed != m.feed {
			// stale feed from before a re-run; drop and stop pumping it
			return m, nil
		}
		m.applyEvent(msg.event)
		return m, listenFeed(m.feed)

	case feedClosedMsg:
		if msg.feed == m.feed {
			m.searching = false
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			log.Printf("editor exited with error: %v", msg.err)
			m.status = "editor failed: " + msg.err.Error()
		}
		return m, nil

	case keymapPagerMsg:
		if msg.err != nil {
			log.Printf("keymap pager: %v", msg.err)
			m.status = "pager failed: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.showKeymap {
			return m.handleKeymapPopupKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// applyEvent folds one feed event into the session state. Events arrive
// in emission order, so matches land in the store first-seen ordered.
func (m *Model) applyEvent(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.SearchStartedEvent:
		m.searching = true
		m.status = ""

	case domain.MatchFoundEvent:
		wasEmpty := m.store.IsEmpty()
		m.store.Append(e.Match)
		if wasEmpty {
			m.refreshViewer()
		}

	case domain.SearchCompletedEvent:
		m.searching = false

	case domain.SearchFailedEvent:
		log.Printf("search failed: %s", e.Message)
		m.searching = false
		m.status = e.Message
	}
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.store.MoveCursor(directionFor(a.Direction))
		m.refreshViewer()

	case inputtypes.DeleteMatchAction:
		m.store.DeleteCurrent()
		m.refreshViewer()

	case inputtypes.DeleteFileAction:
		m.store.DeleteCurrentFile()
		m.refreshViewer()

	case inputtypes.OpenEditorAction:
		return m.openEditor()

	case inputtypes.RerunSearchAction:
		return m.rerun()

	case inputtypes.SubmitPatternAction:
		if a.Pattern != "" && a.Pattern != m.opts.Pattern {
			m.opts.Pattern = a.Pattern
			return m.rerun()
		}

	case inputtypes.ToggleViewerAction:
		if a.Orientation == "horizontal" {
			m.viewer.ToggleHorizontal()
		} else {
			m.viewer.ToggleVertical()
		}
		m.refreshViewer()

	case inputtypes.ResizeViewerAction:
		if a.Delta > 0 {
			m.viewer.Grow(m.maxRadius())
		} else {
			m.viewer.Shrink()
		}
		m.refreshViewer()

	case inputtypes.ToggleKeymapAction:
		m.showKeymap = true

	case inputtypes.QuitAction:
		if m.feed != nil {
			m.feed.Stop()
		}
		return tea.Quit
	}

	return nil
}

// rerun cancels the current feed and starts a fresh search with the
// current options. The store and input state reset so no result of the
// previous run leaks into the new one.
func (m *Model) rerun() tea.Cmd {
	if m.feed != nil {
		m.feed.Stop()
	}
	m.store.Clear()
	m.inputHandler.Reset()
	m.viewer.Refresh(domain.Match{}, false)
	m.status = ""
	m.searching = true
	m.feed = search.Start(m.opts)
	return listenFeed(m.feed)
}

// openEditor launches the configured editor on the current match. GUI
// editors detach; terminal editors take the terminal over until they
// exit.
func (m *Model) openEditor() tea.Cmd {
	match, ok := m.store.Current()
	if !ok {
		return nil
	}

	cmd, spec, err := m.editorCmd.Exec(match.Path, match.LineNumber)
	if err != nil {
		log.Printf("editor launch: %v", err)
		m.status = err.Error()
		return nil
	}

	if spec.Detached {
		if err := cmd.Start(); err != nil {
			log.Printf("editor launch: %v", err)
			m.status = "editor failed: " + err.Error()
			return nil
		}
		go func() { _ = cmd.Wait() }() // reap
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *Model) handleKeymapPopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.showKeymap = false
		m.keymapScroll = 0
		return m, nil

	case "down", "j":
		m.keymapScroll++
		return m, nil

	case "up", "k":
		if m.keymapScroll > 0 {
			m.keymapScroll--
		}
		return m, nil

	case "o":
		// open the same content in the ov pager
		if m.keymapOps == nil {
			return m, nil
		}
		m.showKeymap = false
		content := m.keymap.RenderKeymapContent()
		return m, func() tea.Msg {
			return keymapPagerMsg{err: m.keymapOps.ShowKeymapInPager(content)}
		}
	}
	return m, nil
}

func (m *Model) refreshViewer() {
	match, ok := m.store.Current()
	m.viewer.Refresh(match, ok)
}

func (m *Model) maxRadius() int {
	max := m.height/2 - 2
	if max < 1 {
		max = 1
	}
	return max
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.Context{
		Width:          m.width,
		Height:         m.height,
		Store:          m.store,
		Viewer:         m.viewer,
		Pattern:        m.opts.Pattern,
		Searching:      m.searching,
		Status:         m.status,
		PendingChord:   m.inputHandler.PendingChord(),
		ShortHelp:      m.help.ShortHelpView(m.keys.ShortHelp()),
		EditingPattern: m.inputHandler.TextInput() != nil,
		TextInput:      m.inputHandler.TextInput(),
		ShowKeymap:     m.showKeymap,
		KeymapContent:  m.keymap.RenderKeymapContent(),
		KeymapScroll:   m.keymapScroll,
	})
}

func directionFor(name string) results.Direction {
	switch name {
	case "prev-match":
		return results.PreviousMatch
	case "next-file":
		return results.NextFile
	case "prev-file":
		return results.PreviousFile
	case "top":
		return results.FirstMatch
	case "bottom":
		return results.LastMatch
	default:
		return results.NextMatch
	}
}

// modelContext adapts the model to the input handler's context interface.
type modelContext struct {
	m *Model
}

func (c modelContext) HasResults() bool {
	return !c.m.store.IsEmpty()
}

func (c modelContext) Pattern() string {
	return c.m.opts.Pattern
}

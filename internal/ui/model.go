package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"recall/internal/config"
	"recall/internal/nav"
)

// Options configure the UI.
type Options struct {
	Config config.Config
	Nav    *nav.State
	Logger *zap.Logger
}

// Model is the root application state for Bubble Tea. The config is
// read-only after construction; only the navigation state mutates, and only
// from Update.
type Model struct {
	cfg    config.Config
	nav    *nav.State
	keys   keyMap
	styles styles
	log    *zap.Logger

	width  int
	height int
	ready  bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	navState := opts.Nav
	if navState == nil {
		navState = nav.New(len(opts.Config.Pages))
	}

	return Model{
		cfg:    opts.Config,
		nav:    navState,
		keys:   defaultKeyMap(),
		styles: newStyles(opts.Config.Theme),
		log:    log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey maps a key event onto a navigation transition. Dispatch is
// total: unbound keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return m.quit(nav.Interrupted)

	case key.Matches(msg, m.keys.Quit):
		return m.quit(nav.CloseKeyPressed)

	case key.Matches(msg, m.keys.PrevPage):
		m.nav.Prev()

	case key.Matches(msg, m.keys.NextPage):
		m.nav.Next()

	default:
		m.log.Debug("ignored key", zap.String("key", msg.String()))
	}
	return m, nil
}

func (m Model) quit(reason nav.QuitReason) (tea.Model, tea.Cmd) {
	m.nav.RequestQuit(reason)
	m.log.Info("quit requested", zap.Stringer("reason", reason))
	return m, tea.Quit
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Raw mode and the alternate screen are entered before the
// loop and restored on every exit path.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

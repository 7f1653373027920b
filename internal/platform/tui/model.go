package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/core"
	"github.com/antonvlasov/tui-pong/internal/game"
	"github.com/antonvlasov/tui-pong/internal/storage"
)

// Model is the Bubble Tea model driving the game loop. It steps the
// simulation at a fixed tick rate, persists finished sessions, and swaps to
// the session history screen when asked.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	scores     *ScoresModel // Non-nil while the history screen is showing
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// updateScores delegates to the session history screen while it is showing.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The simulation is parked in the menu; keep the tick loop alive so it
	// resumes seamlessly when the history closes.
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		m.game.Resize(wsm.Width, wsm.Height)
	}

	updated, cmd := m.scores.Update(msg)
	if sm, ok := updated.(ScoresModel); ok {
		m.scores = &sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.GoingBack() {
		m.scores = nil
	}

	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// An active session interrupted by a hard quit is still recorded.
		m.saveSession(m.game.Abandon())
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The session survives: paddles
// re-clamp and the CPU paddle follows the new right edge.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m.saveSession(result.Session)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.OpenScores {
		sm := NewScoresModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sm
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSession persists a finished session, if any.
func (m Model) saveSession(session *core.SessionResult) {
	if session == nil || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveSession(*session, m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model. A non-empty
// startAt skips the menu and begins a session at that difficulty.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, startAt config.Difficulty) error {
	model := NewModel(g, store, cfg)
	if startAt != "" {
		g.StartSession(startAt)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

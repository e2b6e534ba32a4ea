package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riddle-grid/internal/core"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle"
	"github.com/vovakirdan/riddle-grid/internal/registry"
	"github.com/vovakirdan/riddle-grid/internal/storage"
)

// GameModel is the Bubble Tea model for one play session. It drives the
// fixed tick loop, feeds mapped input to the game, pops the riddle modal
// when a gate asks a question and records finished levels as runs.
type GameModel struct {
	game       registry.Game
	riddler    *riddle.Game // Set when the game exposes riddle prompts
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	modal      *promptModal

	levelStart time.Time
	prevStats  riddle.Stats
	levelSaved bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		levelStart: time.Now(),
	}
	if rg, ok := game.(*riddle.Game); ok {
		m.riddler = rg
	}
	return m
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a riddle modal is open it owns the keyboard; answers may
	// legitimately contain any letter, so only ctrl+c stays global.
	if m.modal != nil {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		cmd := m.modal.handleKey(msg)
		if m.modal.done() {
			m.modal = nil
		}
		return m, cmd
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from a finished or paused game.
	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.riddler != nil {
		// A gate bumped this tick opens the modal.
		if m.modal == nil && m.riddler.PendingPrompt() != nil {
			m.modal = newPromptModal(m.riddler)
		}
		m.recordLevel()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordLevel persists one run entry the moment a level is won, and rolls
// the per-level bookkeeping over when the next level starts.
func (m *GameModel) recordLevel() {
	if m.riddler.LevelWon() || (m.gameState.GameOver && m.gameState.Won) {
		if !m.levelSaved {
			m.saveRun(true)
			m.levelSaved = true
		}
		return
	}

	if m.levelSaved {
		// A new level has started.
		m.levelSaved = false
		m.levelStart = time.Now()
		m.prevStats = m.riddler.Stats()
	}
}

func (m *GameModel) saveRun(won bool) {
	if m.store == nil || m.riddler.LevelID() == "" {
		return
	}

	stats := m.riddler.Stats()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveRun(storage.RunEntry{
		LevelID:        m.riddler.LevelID(),
		Moves:          m.riddler.LevelMoves(),
		RiddlesSolved:  stats.RiddlesSolved - m.prevStats.RiddlesSolved,
		RulesTriggered: stats.RulesTriggered - m.prevStats.RulesTriggered,
		DurationSecs:   int(time.Since(m.levelStart).Seconds()),
		Won:            won,
	})
}

// View renders the current state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.modal != nil {
		return m.modal.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local play session for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

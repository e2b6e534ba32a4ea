// Package riddle implements the Riddle Grid game mode: a grid puzzle where
// walls, gates and pushable blocks obey a store of toggleable rules, and
// answering gate riddles rewrites those rules mid-level.
package riddle

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/riddle-grid/internal/config"
	"github.com/vovakirdan/riddle-grid/internal/core"
	sim "github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/riddles"
	"github.com/vovakirdan/riddle-grid/internal/registry"
)

func init() {
	registry.Register("riddle", func() registry.Game {
		return New()
	})
}

// Stats counts run-level progress across the campaign, for persistence.
type Stats struct {
	RiddlesSolved  int
	RulesTriggered int
}

// LevelInfo is campaign metadata for menus and CLI listings.
type LevelInfo struct {
	ID   string
	Name string
	Size string
}

type toast struct {
	text  string
	ticks int
}

// Game is the riddle mode. It owns the level campaign, the active session
// and the presentation-adjacent state (prompt, toasts, input pacing) that
// the pure resolution core deliberately knows nothing about.
type Game struct {
	cfg  config.RiddleConfig
	pace *config.PaceManager

	templates []*sim.Level
	bank      *riddles.Bank
	loadErr   error

	rng      *rand.Rand
	seed     int64
	runtime  core.RuntimeConfig
	levelIdx int
	startIdx int
	session  *sim.Session

	movesBase int // Moves committed in already-finished levels
	cooldown  int
	prompt    *Prompt
	toasts    []toast
	levelDone bool
	stats     Stats
	state     core.GameState
}

var customConfigPath string

// SetConfigPath sets a custom config YAML path used by the next New.
// Must be called before the game is created (i.e. before registry.Create).
func SetConfigPath(path string) {
	customConfigPath = path
}

// New creates the game, loading config, levels and the riddle bank.
// Content errors are deferred to Render/State so the factory stays simple;
// a game with a load error is immediately over.
func New() *Game {
	cfg, err := config.Load(customConfigPath)
	if err != nil {
		cfg = config.DefaultRiddleConfig()
	}

	g := &Game{
		cfg:  cfg,
		pace: config.NewPaceManager(cfg.Timing),
	}
	g.templates, g.bank, g.loadErr = loadContent(cfg)
	if g.loadErr == nil && len(g.templates) == 0 {
		g.loadErr = fmt.Errorf("no levels found in %s", cfg.Paths.LevelsDir)
	}
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return "riddle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Riddle Grid"
}

// Levels returns campaign metadata in play order.
func (g *Game) Levels() []LevelInfo {
	infos := make([]LevelInfo, 0, len(g.templates))
	for _, l := range g.templates {
		infos = append(infos, LevelInfo{
			ID:   l.ID,
			Name: l.Name,
			Size: fmt.Sprintf("%dx%d", l.Grid.W, l.Grid.H),
		})
	}
	return infos
}

// ContentError returns the level/riddle load error, if any.
func (g *Game) ContentError() error {
	return g.loadErr
}

// SetStartLevel selects which campaign level the next Reset begins at.
func (g *Game) SetStartLevel(idx int) {
	if idx >= 0 && idx < len(g.templates) {
		g.startIdx = idx
	}
}

// Reset starts (or restarts) the campaign at the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.levelIdx = g.startIdx
	g.movesBase = 0
	g.stats = Stats{}
	g.prompt = nil
	g.toasts = nil
	g.levelDone = false
	g.state = core.GameState{}

	if g.loadErr != nil {
		g.state.GameOver = true
		return
	}
	g.startLevel()
}

// startLevel opens a fresh session on a clone of the current template.
func (g *Game) startLevel() {
	tmpl := g.templates[g.levelIdx]
	session, err := sim.NewSession(tmpl.Clone(), g.seed+int64(g.levelIdx))
	if err != nil {
		g.loadErr = err
		g.state.GameOver = true
		return
	}
	g.session = session
	g.levelDone = false
	g.cooldown = 0

	session.Rules().Subscribe(func(ch sim.Change) {
		if ch.Source == sim.SourceRiddle && ch.New {
			g.stats.RulesTriggered++
		}
		g.pushToast(describeChange(ch))
	})
}

// Step advances one tick. Movement is paced: a direction is only accepted
// when the repeat cooldown has elapsed, and the cooldown length follows the
// PLAYER_IS_FAST / PLAYER_IS_SLOW rules.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickToasts()
	if g.cooldown > 0 {
		g.cooldown--
	}

	if g.state.GameOver || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// A riddle modal owns the input until it is answered or dismissed.
	if g.prompt != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.startLevel()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		if !g.session.Rules().UndoLast() {
			g.pushToast("Nothing to undo")
		}
		return core.StepResult{State: g.State()}
	}

	if g.levelDone {
		if in.Has(core.ActionConfirm) {
			g.advance()
		}
		return core.StepResult{State: g.State()}
	}

	if d, ok := direction(in); ok && g.cooldown == 0 && !g.session.Pending() {
		g.move(d)
	}

	return core.StepResult{State: g.State()}
}

// move runs one resolution and reacts to its outcome.
func (g *Game) move(d sim.Dir) {
	out, err := g.session.Step(d)
	if err != nil {
		return
	}

	switch out.Kind {
	case sim.OutcomeGate:
		// Session stays pending until the prompt resolves.
		g.openPrompt(out.Gate)
		return
	case sim.OutcomePush:
		for _, sw := range out.Unlocked {
			g.pushToast(fmt.Sprintf("Special wall %s unlocks", sw.ID))
		}
	case sim.OutcomeBlocked:
		// Plain wall bumps stay silent; push failures teach the rules.
		switch out.Reason {
		case sim.ReasonPushDisabled:
			g.pushToast("Pushing is disabled")
		case sim.ReasonPushFailed:
			g.pushToast("The block won't budge")
		}
	case sim.OutcomeWin:
		g.levelDone = true
	}

	g.session.Settle()

	rules := g.session.Rules()
	g.cooldown = g.pace.RepeatTicks(
		rules.Get(sim.RulePlayerIsFast),
		rules.Get(sim.RulePlayerIsSlow),
	)
}

// advance moves to the next campaign level, or ends the run after the last.
func (g *Game) advance() {
	g.movesBase += g.session.Moves()
	g.levelIdx++
	if g.levelIdx >= len(g.templates) {
		g.state.Won = true
		g.state.GameOver = true
		return
	}
	g.startLevel()
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	st := g.state
	st.Score = g.movesBase
	if g.session != nil {
		st.Score += g.session.Moves()
	}
	return st
}

// Stats returns the run counters for persistence.
func (g *Game) Stats() Stats {
	return g.stats
}

// LevelID returns the id of the level currently in play.
func (g *Game) LevelID() string {
	if g.session == nil {
		return ""
	}
	return g.session.Level().ID
}

// LevelMoves returns the moves committed in the level currently in play.
func (g *Game) LevelMoves() int {
	if g.session == nil {
		return 0
	}
	return g.session.Moves()
}

// LevelWon reports whether the current level has been completed and is
// waiting for Confirm to advance.
func (g *Game) LevelWon() bool {
	return g.levelDone
}

// Rules exposes the active session's rule store, primarily for tests and
// the HUD.
func (g *Game) Rules() *sim.Store {
	if g.session == nil {
		return nil
	}
	return g.session.Rules()
}

func (g *Game) pushToast(text string) {
	if text == "" {
		return
	}
	ticks := g.cfg.Display.ToastTicks
	if ticks <= 0 {
		ticks = 45
	}
	g.toasts = append(g.toasts, toast{text: text, ticks: ticks})
	if len(g.toasts) > 3 {
		g.toasts = g.toasts[len(g.toasts)-3:]
	}
}

func (g *Game) tickToasts() {
	alive := g.toasts[:0]
	for _, t := range g.toasts {
		t.ticks--
		if t.ticks > 0 {
			alive = append(alive, t)
		}
	}
	g.toasts = alive
}

// describeChange turns a rule change into a toast line. Riddle-granted
// changes prefer their effect description.
func describeChange(ch sim.Change) string {
	if ch.Source == sim.SourceReset {
		return ""
	}
	if ch.Note != "" {
		return ch.Note
	}
	verb := "OFF"
	if ch.New {
		verb = "ON"
	}
	rule := strings.ReplaceAll(string(ch.Rule), "_", " ")
	if ch.Source == sim.SourceUndo {
		return fmt.Sprintf("Undo: %s is %s again", rule, verb)
	}
	return fmt.Sprintf("%s is now %s", rule, verb)
}

// direction extracts the movement direction from an input frame.
func direction(in core.InputFrame) (sim.Dir, bool) {
	switch {
	case in.Has(core.ActionUp):
		return sim.DirUp, true
	case in.Has(core.ActionDown):
		return sim.DirDown, true
	case in.Has(core.ActionLeft):
		return sim.DirLeft, true
	case in.Has(core.ActionRight):
		return sim.DirRight, true
	}
	return 0, false
}

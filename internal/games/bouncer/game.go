// Package bouncer implements a four-pad bouncing-balls game.
//
// Balls spawn in the middle of the screen and fly off at random angles.
// The player steers the pads on all four edges with the pointer; a ball
// bouncing off a pad scores and heals, a ball reaching a wall costs score
// and health. The simulation works in pixels, with every terminal cell
// CellWidth by CellHeight pixels wide.
package bouncer

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
	"github.com/vovakirdan/tui-bouncer/internal/registry"
)

// Pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// End-of-round messages.
const (
	MessageRecord   = "NEW RECORD"
	MessageWin      = "YOU WIN"
	MessageGameOver = "GAME OVER"
)

// Game adapts Sim to the registry.Game interface.
type Game struct {
	id       string
	title    string
	survival bool

	sim     *Sim
	cfg     config.BouncerConfig
	runtime core.RuntimeConfig
	started bool
	err     error

	best    int
	message string
	hud     hud
}

// hud holds the formatted score line. It is rebuilt only when the tracker
// reports a change.
type hud struct {
	score  string
	health string
	low    bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to every new simulation.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the classic game: a ball that reaches a wall is lost.
func New() *Game {
	return &Game{id: "bouncer", title: "Bouncer"}
}

// NewSurvival creates the survival variant: balls bounce off walls
// forever and only health decides the end.
func NewSurvival() *Game {
	return &Game{id: "bouncer_survival", title: "Bouncer Survival", survival: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Reset loads the configuration and prepares a new round. The round clock
// starts on the first Step.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBouncer(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBouncerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBouncerPreset(&cfg, difficultyPreset)
	}
	cfg.Rules.RemoveOnWallHit = !g.survival
	g.cfg = cfg

	g.sim = NewSim(cfg, float64(runtime.ScreenW*CellWidth), float64(runtime.ScreenH*CellHeight), runtime.Seed)
	g.sim.SetLogger(logger.With("game", g.id))
	g.started = false
	g.err = nil
	g.message = ""
	g.hud = hud{}
}

// Resize stages a new terminal size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.sim != nil {
		g.sim.StageScreen(float64(width*CellWidth), float64(height*CellHeight))
	}
}

// SetBestScore sets the best score the end message compares against.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Step advances the game to in.Now.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	if !g.started {
		g.sim.Reset(now)
		g.started = true
	}
	if g.sim.Over() || g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionPause) {
		g.sim.SetPaused(!g.sim.Paused(), now)
	}
	if in.Blurred && !g.sim.Paused() {
		g.sim.SetPaused(true, now)
	}
	if in.Pointer.Set {
		// Aim at the middle of the pointed cell.
		g.sim.StagePointer((in.Pointer.X+0.5)*CellWidth, (in.Pointer.Y+0.5)*CellHeight)
	}

	report, err := g.sim.Tick(now)
	if err != nil {
		g.err = err
		logger.Error("tick failed", "game", g.id, "err", err)
		return core.StepResult{State: g.State(), Err: err}
	}
	g.refreshHUD()
	if report.GameOver {
		g.message = g.endMessage()
		logger.Info("round over", "game", g.id, "score", g.sim.Tracker.Score, "result", g.message)
	}
	return core.StepResult{State: g.State()}
}

// refreshHUD reformats the score line when score, multiplier or health
// changed since it was last built.
func (g *Game) refreshHUD() {
	t := g.sim.Tracker
	if !t.Changed() {
		return
	}
	g.hud = hud{
		score:  fmt.Sprintf(" Score: %d  x%d ", t.Score, t.Multiplier),
		health: fmt.Sprintf(" Health: %d ", t.Health),
		low:    t.Health <= g.cfg.Health.Starting/4,
	}
	t.MarkDisplayed()
}

// endMessage picks the message shown when the round ends.
func (g *Game) endMessage() string {
	switch t := g.sim.Tracker; {
	case t.Score > g.best && t.Score > 0:
		return MessageRecord
	case !t.Dead():
		return MessageWin
	default:
		return MessageGameOver
	}
}

// Message returns the end-of-round message, or "" while playing.
func (g *Game) Message() string { return g.message }

// Snapshot returns the simulation state.
func (g *Game) Snapshot() Snapshot { return g.sim.Snapshot() }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Tracker.Score,
		GameOver: g.sim.Over() || g.err != nil,
		Paused:   g.sim.Paused(),
	}
}

// Register the game variants with the registry
func init() {
	registry.Register("bouncer", func() registry.Game {
		return New()
	})
	registry.Register("bouncer_survival", func() registry.Game {
		return NewSurvival()
	})
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
	_ registry.Ranked    = (*Game)(nil)
)

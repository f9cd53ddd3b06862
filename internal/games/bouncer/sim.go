package bouncer

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// TickReport summarizes what a tick did.
type TickReport struct {
	DeltaT   float64 // Milliseconds since the previous tick
	Spawned  *Ball   // Ball flushed into play this tick, if any
	PadHits  int
	WallHits int
	Removed  []*Ball
	Paused   bool
	GameOver bool
}

// Sim owns the whole simulation state and advances it one tick at a time.
// It is not safe for concurrent use; input handlers only stage values
// through StageScreen and StagePointer between ticks.
type Sim struct {
	cfg        config.BouncerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	Field   Field
	Pads    []*Pad
	Balls   *Registry
	Tracker *Tracker

	paused   bool
	over     bool
	playedMS float64

	previousFrame time.Time
	currentFrame  time.Time
	lastSpawn     time.Time
}

// NewSim creates a simulation over a width x height pixel field.
// Call Reset before the first Tick.
func NewSim(cfg config.BouncerConfig, width, height float64, seed int64) *Sim {
	s := &Sim{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		logger:     log.New(io.Discard),
		Field:      NewField(width, height),
		Balls:      NewRegistry(cfg.Ball.MaxBalls, cfg.Ball.Width, cfg.Ball.Height),
		Tracker:    NewTracker(cfg.Scoring, cfg.Health),
	}
	for _, role := range PadRoles {
		s.Pads = append(s.Pads, NewPad(role))
	}
	return s
}

// SetLogger sets the logger used for debug events. nil restores the
// discarding default.
func (s *Sim) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l
}

// Reset starts a new round at time now with one ball queued.
func (s *Sim) Reset(now time.Time) {
	s.Balls.Reset()
	s.Tracker.Reset()
	s.paused = false
	s.over = false
	s.playedMS = 0
	s.previousFrame = now
	s.currentFrame = now
	s.lastSpawn = now
	s.Balls.RequestSpawn()
}

// Pad returns the pad with the given role.
func (s *Sim) Pad(role core.Direction) *Pad {
	for _, p := range s.Pads {
		if p.Role == role {
			return p
		}
	}
	return nil
}

// StageScreen records a new field size for the next tick.
func (s *Sim) StageScreen(width, height float64) {
	s.Field.Stage(width, height)
}

// StagePointer records the pointer position, in pixels, for every pad.
func (s *Sim) StagePointer(x, y float64) {
	for _, p := range s.Pads {
		p.StagePointer(x, y)
	}
}

// SetPaused pauses or resumes the simulation. Resuming moves the timing
// anchors to now so the pause does not count as elapsed time.
func (s *Sim) SetPaused(paused bool, now time.Time) {
	if s.paused && !paused {
		s.previousFrame = now
		s.currentFrame = now
		s.lastSpawn = now
	}
	s.paused = paused
}

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool { return s.paused }

// Over reports whether the round has ended.
func (s *Sim) Over() bool { return s.over }

// PlayedMS returns the milliseconds of unpaused play this round.
func (s *Sim) PlayedMS() float64 { return s.playedMS }

// Tick advances the simulation to time now.
//
// Any error aborts the tick immediately and leaves the state as it was at
// the failing step. Once the round is over, Tick does nothing.
func (s *Sim) Tick(now time.Time) (TickReport, error) {
	var report TickReport
	if s.over {
		report.GameOver = true
		return report, nil
	}

	// Read phase.
	if err := s.refresh(); err != nil {
		return report, err
	}

	if b := s.Balls.FlushOneSpawn(s.Field, s.launchAngle, s.launchSpeed()); b != nil {
		report.Spawned = b
		s.logger.Debug("ball spawned", "ball", b.Label(), "dx", b.DX, "dy", b.DY, "speed", b.Speed)
	}

	s.previousFrame = s.currentFrame
	s.currentFrame = now
	deltaT := float64(s.currentFrame.Sub(s.previousFrame)) / float64(time.Millisecond)
	report.DeltaT = deltaT

	if s.paused {
		report.Paused = true
		return report, nil
	}

	var padHit []*Ball
	for _, b := range s.Balls.Active() {
		if err := s.bounce(b); err != nil {
			return report, fmt.Errorf("%s: %w", b.Label(), err)
		}
		b.UpdateVelocity()

		switch {
		case b.WallHit():
			report.WallHits++
			s.Tracker.WallHit()
			if s.cfg.Rules.RemoveOnWallHit {
				s.Balls.RequestRemoval(b)
			}
		case b.PadHit():
			report.PadHits++
			s.Tracker.PadHit()
			padHit = append(padHit, b)
		}
	}

	s.Tracker.Advance(deltaT)
	s.playedMS += deltaT

	for _, p := range s.Pads {
		if err := p.Follow(s.Field); err != nil {
			return report, err
		}
	}

	for _, b := range s.Balls.Active() {
		b.Advance(deltaT)
	}

	if now.Sub(s.lastSpawn) >= time.Duration(s.cfg.Ball.SpawnIntervalMS)*time.Millisecond {
		if s.Balls.RequestSpawn() {
			s.logger.Debug("ball queued", "pending", s.Balls.Pending())
		}
		s.lastSpawn = now
	}

	for _, b := range padHit {
		b.ChangeVisualKind(s.rng)
		s.logger.Debug("ball kind changed", "ball", b.Label(), "kind", b.NextKind)
	}

	// Write phase.
	s.commit()
	report.Removed = s.Balls.FlushRemovals()
	for _, b := range report.Removed {
		s.logger.Debug("ball removed", "ball", b.Label())
	}

	if s.Tracker.Dead() || s.Balls.Empty() {
		s.over = true
		report.GameOver = true
		s.logger.Debug("game over", "score", s.Tracker.Score, "health", s.Tracker.Health)
	}
	return report, nil
}

// Commit pushes every pad and active ball to its target position.
// Calling it again without a tick in between changes nothing.
func (s *Sim) Commit() { s.commit() }

func (s *Sim) commit() {
	for _, p := range s.Pads {
		p.Commit()
	}
	for _, b := range s.Balls.Active() {
		b.Commit()
	}
}

// refresh applies a staged field size and re-lays out the pads.
func (s *Sim) refresh() error {
	first := s.Field.Width == 0 && s.Field.Height == 0
	s.Field.Refresh()
	if !s.Field.HasChanged() {
		return nil
	}
	for _, p := range s.Pads {
		p.Size(s.Field, s.cfg.Pads.LengthRatio, s.cfg.Pads.Thickness)
		if first {
			if err := p.Center(s.Field); err != nil {
				return err
			}
		}
		if err := p.Follow(s.Field); err != nil {
			return err
		}
		p.Commit()
	}
	return nil
}

// bounce evaluates both axes of b against the walls and the pads.
// A ball moving left can only hit the west wall, and the east pad behind
// it is left out of the search. The same holds for the other directions.
func (s *Sim) bounce(b *Ball) error {
	var err error
	switch {
	case b.DX < 0:
		err = b.BounceX.Evaluate(b.W() <= 0, core.East, s.Pads, s.Pad(core.East), b.Sprite)
	case b.DX > 0:
		err = b.BounceX.Evaluate(b.E() >= s.Field.Width, core.West, s.Pads, s.Pad(core.West), b.Sprite)
	default:
		b.BounceX.Reset()
	}
	if err != nil {
		return err
	}

	switch {
	case b.DY < 0:
		err = b.BounceY.Evaluate(b.N() <= 0, core.South, s.Pads, s.Pad(core.South), b.Sprite)
	case b.DY > 0:
		err = b.BounceY.Evaluate(b.S() >= s.Field.Height, core.North, s.Pads, s.Pad(core.North), b.Sprite)
	default:
		b.BounceY.Reset()
	}
	return err
}

// launchAngle returns the configured debug angle or a random direction.
func (s *Sim) launchAngle() float64 {
	if a := s.cfg.Ball.FixedStartAngle; a != nil {
		return *a
	}
	return s.rng.Float64() * 2 * math.Pi
}

// launchSpeed scales the configured speed by the current difficulty.
func (s *Sim) launchSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Ball.InitialSpeed, s.Tracker.Score, s.playedMS)
}

package bouncer

import "github.com/vovakirdan/tui-bouncer/internal/config"

// Tracker keeps score, multiplier and health.
// The previous values are only used to decide whether the HUD needs
// redrawing.
type Tracker struct {
	Score      int
	Multiplier int
	Health     int

	scoring config.ScoringConfig
	health  config.HealthConfig

	prevScore      int
	prevMultiplier int
	prevHealth     int
	timer          float64
}

// NewTracker creates a tracker at starting health and multiplier 1.
func NewTracker(scoring config.ScoringConfig, health config.HealthConfig) *Tracker {
	t := &Tracker{scoring: scoring, health: health}
	t.Reset()
	return t
}

// Reset restores the starting values.
func (t *Tracker) Reset() {
	t.Score = 0
	t.Multiplier = 1
	t.Health = t.health.Starting
	t.timer = 0
	// Force the first Changed to report true.
	t.prevScore = -1
	t.prevMultiplier = 0
	t.prevHealth = -1
}

// PadHit rewards a pad bounce. Health never exceeds its starting value.
func (t *Tracker) PadHit() {
	t.Score += t.scoring.PerPadHit * t.Multiplier
	t.Health += t.health.RegenPerPadHit
	if t.Health > t.health.Starting {
		t.Health = t.health.Starting
	}
}

// WallHit applies the wall penalty. The multiplier does not apply.
func (t *Tracker) WallHit() {
	t.Score += t.scoring.PerWallHit
	t.Health -= t.health.LossPerWallHit
}

// Advance accumulates dt milliseconds toward the next multiplier step.
func (t *Tracker) Advance(dt float64) {
	if t.scoring.MultiplierIntervalMS <= 0 {
		return
	}
	t.timer += dt
	if t.timer >= float64(t.scoring.MultiplierIntervalMS) {
		t.Multiplier += t.scoring.MultiplierStep
		t.timer = 0
	}
}

// Dead reports whether health is exhausted.
func (t *Tracker) Dead() bool {
	return t.Health <= 0
}

// Changed reports whether anything differs from the last displayed values.
func (t *Tracker) Changed() bool {
	return t.Score != t.prevScore || t.Multiplier != t.prevMultiplier || t.Health != t.prevHealth
}

// MarkDisplayed records the current values as displayed.
func (t *Tracker) MarkDisplayed() {
	t.prevScore = t.Score
	t.prevMultiplier = t.Multiplier
	t.prevHealth = t.Health
}

package bouncer

import "math"

// Entity is the externally visible state of a pad or ball.
type Entity struct {
	Label string
	Kind  string // Pad role or ball kind
	X, Y  float64
	W, H  float64
}

// Snapshot is a read-only view of the simulation after a tick.
type Snapshot struct {
	Pads       []Entity
	Balls      []Entity
	Pending    int
	Score      int
	Multiplier int
	Health     int
	Paused     bool
	GameOver   bool
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Pending:    s.Balls.Pending(),
		Score:      s.Tracker.Score,
		Multiplier: s.Tracker.Multiplier,
		Health:     s.Tracker.Health,
		Paused:     s.paused,
		GameOver:   s.over,
	}
	for _, p := range s.Pads {
		snap.Pads = append(snap.Pads, Entity{
			Label: "pad_" + string(p.Role),
			Kind:  string(p.Role),
			X:     p.X, Y: p.Y, W: p.Width, H: p.Height,
		})
	}
	for _, b := range s.Balls.Active() {
		snap.Balls = append(snap.Balls, Entity{
			Label: b.Label(),
			Kind:  string(b.Kind),
			X:     b.X, Y: b.Y, W: b.Width, H: b.Height,
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.Balls))
	h = h*31 + uint64(snap.Pending)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)     //#nosec G115 -- hash computation

	for _, e := range snap.Pads {
		h = e.hash(h)
	}
	for _, e := range snap.Balls {
		h = e.hash(h)
	}
	return h
}

func (e Entity) hash(h uint64) uint64 {
	for _, r := range e.Label + e.Kind {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(e.X)
	h = h*31 + math.Float64bits(e.Y)
	h = h*31 + math.Float64bits(e.W)
	return h*31 + math.Float64bits(e.H)
}

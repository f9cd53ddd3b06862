package bouncer

// Registry owns every ball and its lifecycle queues.
//
// Spawns and removals are requested during a tick and applied at fixed
// points of the next read or write phase, so iteration over Active never
// sees the slice change underneath it.
type Registry struct {
	MaxBalls      int
	Width, Height float64

	active   []*Ball
	pending  []*Ball
	removing []*Ball
	nextID   int
}

// NewRegistry creates an empty registry for balls of the given size.
func NewRegistry(maxBalls int, width, height float64) *Registry {
	return &Registry{
		MaxBalls: maxBalls,
		Width:    width,
		Height:   height,
		nextID:   1,
	}
}

// Active returns the active balls in insertion order.
func (r *Registry) Active() []*Ball { return r.active }

// Pending returns the number of queued spawns.
func (r *Registry) Pending() int { return len(r.pending) }

// Empty reports whether there are no active and no pending balls.
func (r *Registry) Empty() bool {
	return len(r.active) == 0 && len(r.pending) == 0
}

// RequestSpawn queues a new ball. It reports false and does nothing when
// the cap on active plus pending balls is reached.
func (r *Registry) RequestSpawn() bool {
	if len(r.active)+len(r.pending) >= r.MaxBalls {
		return false
	}
	r.pending = append(r.pending, NewBall(r.nextID, r.Width, r.Height))
	r.nextID++
	return true
}

// FlushOneSpawn activates the most recently queued ball at the center of
// the field. angle is only called when a ball is flushed.
// Returns nil when nothing is pending.
func (r *Registry) FlushOneSpawn(field Field, angle func() float64, speed float64) *Ball {
	n := len(r.pending)
	if n == 0 {
		return nil
	}
	b := r.pending[n-1]
	r.pending[n-1] = nil
	r.pending = r.pending[:n-1]

	x := (field.Width - b.Width) / 2
	y := (field.Height - b.Height) / 2
	b.Launch(x, y, angle(), speed)
	r.active = append(r.active, b)
	return b
}

// RequestRemoval schedules an active ball for removal at the next flush.
// Balls that are not active are ignored.
func (r *Registry) RequestRemoval(b *Ball) {
	if b.State != BallActive {
		return
	}
	b.State = BallRemoved
	r.removing = append(r.removing, b)
}

// FlushRemovals drops scheduled balls from the active list and returns them.
func (r *Registry) FlushRemovals() []*Ball {
	if len(r.removing) == 0 {
		return nil
	}
	removed := r.removing
	r.removing = nil

	kept := r.active[:0]
	for _, b := range r.active {
		if b.State != BallRemoved {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = kept
	return removed
}

// Reset empties every queue and restarts ball IDs.
func (r *Registry) Reset() {
	r.active = nil
	r.pending = nil
	r.removing = nil
	r.nextID = 1
}

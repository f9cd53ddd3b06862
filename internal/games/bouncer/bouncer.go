package bouncer

import (
	"math"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// BounceState classifies what a ball ran into on one axis this tick.
type BounceState int

const (
	NoBounce BounceState = iota
	WallBounce
	PadBounce
)

// String returns a human-readable name for the state.
func (s BounceState) String() string {
	switch s {
	case WallBounce:
		return "wall"
	case PadBounce:
		return "pad"
	default:
		return "none"
	}
}

// Bouncer holds the bounce classification of a ball along one axis.
// It is recomputed from scratch every tick.
type Bouncer struct {
	OnWall bool
	OnPad  bool
	// Offset is NaN when there was no bounce. Otherwise it is in [-1, 1]
	// and tells where along the obstacle the ball struck; walls report 0.
	Offset float64
}

// NewBouncer returns a bouncer in the no-bounce state.
func NewBouncer() Bouncer {
	return Bouncer{Offset: math.NaN()}
}

// Reset returns the bouncer to the no-bounce state.
func (b *Bouncer) Reset() {
	*b = NewBouncer()
}

// Fired reports whether any bounce happened.
func (b Bouncer) Fired() bool {
	return !math.IsNaN(b.Offset)
}

// State returns the classification.
func (b Bouncer) State() BounceState {
	switch {
	case b.OnWall:
		return WallBounce
	case b.OnPad:
		return PadBounce
	default:
		return NoBounce
	}
}

// Evaluate classifies the ball against a wall and the pads.
//
// A wall hit wins. Otherwise pads are searched in order, skipping exclude,
// and the first one the ball collides with (approaching from `from`)
// determines the offset.
func (b *Bouncer) Evaluate(againstWall bool, from core.Direction, pads []*Pad, exclude *Pad, ball core.Sprite) error {
	if againstWall {
		*b = Bouncer{OnWall: true, Offset: 0}
		return nil
	}
	for _, pad := range pads {
		if pad == exclude {
			continue
		}
		offset, err := pad.CollidesFrom(from, ball)
		if err != nil {
			b.Reset()
			return err
		}
		if !math.IsNaN(offset) {
			*b = Bouncer{OnPad: true, Offset: offset}
			return nil
		}
	}
	b.Reset()
	return nil
}

package core

import (
	"fmt"
	"math"
)

// Direction names the side an incoming sprite approaches from.
type Direction string

// Compass directions used by collision tests and pad roles.
const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// Sprite is a moving axis-aligned rectangle measured in pixels.
// X and Y hold the current top-left corner, NextX and NextY the position
// the sprite will occupy once the frame is written out.
type Sprite struct {
	X, Y          float64
	Width, Height float64
	NextX, NextY  float64
}

// NewSprite creates a sprite at (x, y). Negative sizes are clamped to zero.
func NewSprite(x, y, width, height float64) Sprite {
	return Sprite{
		X:      x,
		Y:      y,
		Width:  math.Max(0, width),
		Height: math.Max(0, height),
		NextX:  x,
		NextY:  y,
	}
}

// W returns the west (left) edge.
func (s Sprite) W() float64 { return s.X }

// E returns the east (right) edge.
func (s Sprite) E() float64 { return s.X + s.Width }

// N returns the north (top) edge.
func (s Sprite) N() float64 { return s.Y }

// S returns the south (bottom) edge.
func (s Sprite) S() float64 { return s.Y + s.Height }

// CenterX returns the horizontal center.
func (s Sprite) CenterX() float64 { return s.X + s.Width/2 }

// CenterY returns the vertical center.
func (s Sprite) CenterY() float64 { return s.Y + s.Height/2 }

// SetSize changes the size, clamping negatives to zero.
func (s *Sprite) SetSize(width, height float64) {
	s.Width = math.Max(0, width)
	s.Height = math.Max(0, height)
}

// Commit moves the sprite to its target position.
// Calling it twice without a new target is a no-op.
func (s *Sprite) Commit() {
	s.X = s.NextX
	s.Y = s.NextY
}

// Bounds returns the sprite itself; it lets types embedding Sprite
// satisfy Movable.
func (s *Sprite) Bounds() *Sprite { return s }

// Movable is anything on screen backed by a Sprite.
type Movable interface {
	Bounds() *Sprite
	Commit()
}

// CollidesFrom determines whether other, approaching from dir, touches s.
//
// The leading edge of other (its east edge when coming from the west, and
// so on) must lie within s along the approach axis, and the center of
// other must lie within s along the perpendicular axis.
//
// It returns NaN when there is no collision. Otherwise it returns where
// along the edge of s the impact happened, in [-1, 1]: -1 near the low
// coordinate (W or N), +1 near the high coordinate (E or S).
func (s Sprite) CollidesFrom(dir Direction, other Sprite) (float64, error) {
	var edge, lo, hi, center, spanLo, spanHi float64
	switch dir {
	case West:
		edge, lo, hi = other.E(), s.W(), s.E()
		center, spanLo, spanHi = other.CenterY(), s.N(), s.S()
	case East:
		edge, lo, hi = other.W(), s.W(), s.E()
		center, spanLo, spanHi = other.CenterY(), s.N(), s.S()
	case North:
		edge, lo, hi = other.S(), s.N(), s.S()
		center, spanLo, spanHi = other.CenterX(), s.W(), s.E()
	case South:
		edge, lo, hi = other.N(), s.N(), s.S()
		center, spanLo, spanHi = other.CenterX(), s.W(), s.E()
	default:
		return math.NaN(), fmt.Errorf("collision from %q: %w", dir, ErrUnknownDirection)
	}

	onEdge, err := Between(edge, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	if !onEdge {
		return math.NaN(), nil
	}
	inSpan, err := Between(center, spanLo, spanHi)
	if err != nil {
		return math.NaN(), err
	}
	if !inSpan {
		return math.NaN(), nil
	}

	// Zero-length edge: the center sits exactly on it.
	if spanLo == spanHi {
		return 0, nil
	}
	return ClosenessInSegment(center, spanLo, spanHi)
}

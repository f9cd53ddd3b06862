package bouncer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// BounceDamping divides a bounce offset before it is added to the
// reflected angle. Higher values make pad position matter less.
const BounceDamping = 4

// Kind is the visual category of a ball.
type Kind string

const (
	KindInit    Kind = "init"
	KindRegular Kind = "regular"
	KindBlack   Kind = "black"
	KindWhite   Kind = "white"
)

// Palette lists the kinds a ball may switch to after a pad hit.
var Palette = []Kind{KindRegular, KindBlack, KindWhite}

// BallState is the lifecycle stage of a ball.
type BallState int

const (
	BallPending BallState = iota
	BallActive
	BallRemoved
)

// String returns a human-readable name for the state.
func (s BallState) String() string {
	switch s {
	case BallPending:
		return "pending"
	case BallActive:
		return "active"
	case BallRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Ball is a moving sprite with a unit direction vector.
type Ball struct {
	core.Sprite
	ID int

	// DX, DY is the unit direction; Speed is in pixels per millisecond.
	DX, DY float64
	Speed  float64

	// BounceX tracks east/west obstacles, BounceY north/south ones.
	BounceX Bouncer
	BounceY Bouncer

	Kind     Kind
	NextKind Kind
	State    BallState
}

// NewBall creates a pending ball of the given size. It shows as KindInit
// until its first commit.
func NewBall(id int, width, height float64) *Ball {
	return &Ball{
		Sprite:   core.NewSprite(0, 0, width, height),
		ID:       id,
		BounceX:  NewBouncer(),
		BounceY:  NewBouncer(),
		Kind:     KindInit,
		NextKind: KindRegular,
		State:    BallPending,
	}
}

// Label returns the ball's display name.
func (b *Ball) Label() string {
	return fmt.Sprintf("ball_%d", b.ID)
}

// Launch places the ball at (x, y) and sends it off at angle (radians).
func (b *Ball) Launch(x, y, angle, speed float64) {
	b.X, b.NextX = x, x
	b.Y, b.NextY = y, y
	b.DX = math.Cos(angle)
	b.DY = math.Sin(angle)
	b.Speed = speed
	b.State = BallActive
}

// UpdateVelocity reflects the direction according to this tick's bounces.
//
// A north/south bounce mirrors DY, an east/west bounce mirrors DX. When
// only one axis bounced, the strike offset bends the new angle so that
// hitting a pad off-center steers the ball. A bend that would flip the
// mirrored component back is dropped.
func (b *Ball) UpdateVelocity() {
	hitX := b.BounceX.Fired()
	hitY := b.BounceY.Fired()
	if !hitX && !hitY {
		return
	}

	dx, dy := b.DX, b.DY
	switch {
	case hitX && hitY:
		b.DX, b.DY = -dx, -dy
		return
	case hitY:
		dy = -dy
		angle := core.AngleOfVector(dx, dy) - b.BounceY.Offset/BounceDamping
		ndx, ndy := math.Cos(angle), math.Sin(angle)
		// The bias may bend the angle but never undo the reflection.
		if math.Signbit(ndy) != math.Signbit(dy) || ndy == 0 {
			ndx, ndy = dx, dy
		}
		b.DX, b.DY = ndx, ndy
	default:
		dx = -dx
		angle := core.AngleOfVector(dx, dy) + b.BounceX.Offset/BounceDamping
		ndx, ndy := math.Cos(angle), math.Sin(angle)
		if math.Signbit(ndx) != math.Signbit(dx) || ndx == 0 {
			ndx, ndy = dx, dy
		}
		b.DX, b.DY = ndx, ndy
	}
}

// Advance computes the target position after dt milliseconds.
// Displacements are rounded to whole pixels.
func (b *Ball) Advance(dt float64) {
	b.NextX = b.X + math.Round(b.DX*b.Speed*dt)
	b.NextY = b.Y + math.Round(b.DY*b.Speed*dt)
}

// ChangeVisualKind picks the next kind uniformly from the palette.
func (b *Ball) ChangeVisualKind(rng *rand.Rand) {
	b.NextKind = Palette[rng.Intn(len(Palette))]
}

// Commit applies the target position and kind.
func (b *Ball) Commit() {
	b.Sprite.Commit()
	b.Kind = b.NextKind
}

// WallHit reports whether either axis bounced off a wall this tick.
func (b *Ball) WallHit() bool {
	return b.BounceX.OnWall || b.BounceY.OnWall
}

// PadHit reports whether either axis bounced off a pad this tick
// (and no wall was hit).
func (b *Ball) PadHit() bool {
	return !b.WallHit() && (b.BounceX.OnPad || b.BounceY.OnPad)
}

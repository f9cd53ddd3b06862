package bouncer

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

const epsilon = 1e-9

func TestBallUpdateVelocityUnitLength(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		angle   float64
		offsetX float64
		offsetY float64
	}{
		{"x bounce centered", 0.3, 0, nan},
		{"x bounce off-center", 2.5, -0.8, nan},
		{"y bounce", 1.2, nan, 0.6},
		{"y bounce edge", -1.9, nan, -1},
		{"corner", 0.7, 0.5, -0.5},
		{"vertical", math.Pi / 2, nan, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(1, 8, 16)
			b.Launch(0, 0, tt.angle, 1)
			b.BounceX.Offset = tt.offsetX
			b.BounceY.Offset = tt.offsetY
			b.UpdateVelocity()

			if got := b.DX*b.DX + b.DY*b.DY; math.Abs(got-1) > epsilon {
				t.Errorf("|v|^2 = %v, want 1", got)
			}
		})
	}
}

func TestBallUpdateVelocityReflection(t *testing.T) {
	angle := 0.4
	dx, dy := math.Cos(angle), math.Sin(angle)

	tests := []struct {
		name    string
		offsetX float64
		offsetY float64
		wantDX  float64
		wantDY  float64
	}{
		{"no bounce", math.NaN(), math.NaN(), dx, dy},
		{"flat x bounce", 0, math.NaN(), -dx, dy},
		{"flat y bounce", math.NaN(), 0, dx, -dy},
		{"corner ignores offsets", 1, -1, -dx, -dy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(1, 8, 16)
			b.Launch(0, 0, angle, 1)
			b.BounceX.Offset = tt.offsetX
			b.BounceY.Offset = tt.offsetY
			b.UpdateVelocity()

			if math.Abs(b.DX-tt.wantDX) > epsilon || math.Abs(b.DY-tt.wantDY) > epsilon {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestBallOffsetBendsAngle(t *testing.T) {
	b := NewBall(1, 8, 16)
	b.Launch(0, 0, math.Pi, 1)
	b.DX, b.DY = -1, 0
	b.BounceX.Offset = 1
	b.UpdateVelocity()

	want := 1.0 / BounceDamping
	if got := math.Atan2(b.DY, b.DX); math.Abs(got-want) > epsilon {
		t.Errorf("angle after bounce = %v, want %v", got, want)
	}
}

func TestBallShallowHitKeepsReflection(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		angle   float64
		offsetX float64
		offsetY float64
	}{
		{"y bounce near west end", 0.2, nan, -1},
		{"y bounce near east end", math.Pi - 0.2, nan, 1},
		{"y bounce moving up", -0.1, nan, 1},
		{"x bounce near north end", math.Pi/2 - 0.2, -1, nan},
		{"x bounce near south end", math.Pi/2 + 0.2, 1, nan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(1, 8, 16)
			b.Launch(0, 0, tt.angle, 1)
			dx, dy := b.DX, b.DY
			b.BounceX.Offset = tt.offsetX
			b.BounceY.Offset = tt.offsetY
			b.UpdateVelocity()

			if !math.IsNaN(tt.offsetY) && math.Signbit(b.DY) == math.Signbit(dy) {
				t.Errorf("dy = %v, want the sign of %v flipped", b.DY, dy)
			}
			if !math.IsNaN(tt.offsetX) && math.Signbit(b.DX) == math.Signbit(dx) {
				t.Errorf("dx = %v, want the sign of %v flipped", b.DX, dx)
			}
			if got := b.DX*b.DX + b.DY*b.DY; math.Abs(got-1) > epsilon {
				t.Errorf("|v|^2 = %v, want 1", got)
			}
		})
	}
}

func TestBallAdvanceRounds(t *testing.T) {
	b := NewBall(1, 8, 16)
	b.Launch(10, 20, 0, 0.25)
	b.DX, b.DY = 0.6, -0.8

	b.Advance(16)
	// 0.6*0.25*16 = 2.4, -0.8*0.25*16 = -3.2
	if b.NextX != 12 || b.NextY != 17 {
		t.Errorf("target = (%v, %v), want (12, 17)", b.NextX, b.NextY)
	}
	if b.X != 10 || b.Y != 20 {
		t.Error("advance must not move the current position")
	}
}

func TestBallCommitIdempotent(t *testing.T) {
	b := NewBall(1, 8, 16)
	b.Launch(10, 20, 0, 1)
	if b.Kind != KindInit {
		t.Fatalf("fresh ball kind = %q, want %q", b.Kind, KindInit)
	}

	b.Advance(16)
	b.Commit()
	x, y, kind := b.X, b.Y, b.Kind
	b.Commit()

	if b.X != x || b.Y != y || b.Kind != kind {
		t.Errorf("second commit changed ball: (%v, %v, %q) -> (%v, %v, %q)", x, y, kind, b.X, b.Y, b.Kind)
	}
	if kind != KindRegular {
		t.Errorf("kind after first commit = %q, want %q", kind, KindRegular)
	}
}

func TestBallChangeVisualKind(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBall(1, 8, 16)
	seen := make(map[Kind]bool)
	for range 200 {
		b.ChangeVisualKind(rng)
		if !slices.Contains(Palette, b.NextKind) {
			t.Fatalf("kind %q not in palette", b.NextKind)
		}
		seen[b.NextKind] = true
	}
	if len(seen) != len(Palette) {
		t.Errorf("saw %d kinds, want all %d", len(seen), len(Palette))
	}
	if b.Kind != KindInit {
		t.Error("kind must only change on commit")
	}
}

func TestBallLabel(t *testing.T) {
	if got := NewBall(7, 8, 16).Label(); got != "ball_7" {
		t.Errorf("Label() = %q, want %q", got, "ball_7")
	}
}

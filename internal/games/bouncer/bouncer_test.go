package bouncer

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

func testPads(t *testing.T) []*Pad {
	t.Helper()
	field := NewField(640, 384)
	field.Refresh()
	pads := layoutPads(t, field, 0.3)
	return []*Pad{pads[core.North], pads[core.South], pads[core.East], pads[core.West]}
}

func TestBouncerEvaluate(t *testing.T) {
	pads := testPads(t)
	west := pads[3]

	// Ball overlapping the west pad, moving left.
	onWestPad := core.NewSprite(10, 180, 8, 16)
	// Ball in open space.
	inOpen := core.NewSprite(300, 180, 8, 16)

	tests := []struct {
		name    string
		wall    bool
		from    core.Direction
		exclude *Pad
		ball    core.Sprite
		want    BounceState
		offset  float64
	}{
		{"wall wins", true, core.East, nil, onWestPad, WallBounce, 0},
		{"pad hit", false, core.East, pads[2], onWestPad, PadBounce, 2 * (188 - 192) / 115.2},
		{"excluded pad", false, core.East, west, onWestPad, NoBounce, math.NaN()},
		{"nothing nearby", false, core.West, west, inOpen, NoBounce, math.NaN()},
		{"north pad from below", false, core.South, nil, core.NewSprite(316, 10, 8, 16), PadBounce, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBouncer()
			if err := b.Evaluate(tt.wall, tt.from, pads, tt.exclude, tt.ball); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.State() != tt.want {
				t.Errorf("state = %v, want %v", b.State(), tt.want)
			}
			if math.IsNaN(tt.offset) {
				if b.Fired() {
					t.Errorf("offset = %v, want NaN", b.Offset)
				}
				return
			}
			if math.Abs(b.Offset-tt.offset) > 1e-9 {
				t.Errorf("offset = %v, want %v", b.Offset, tt.offset)
			}
		})
	}
}

func TestBouncerRecomputedEachTime(t *testing.T) {
	pads := testPads(t)
	b := NewBouncer()
	if err := b.Evaluate(true, core.East, pads, nil, core.NewSprite(0, 0, 8, 16)); err != nil {
		t.Fatal(err)
	}
	if err := b.Evaluate(false, core.West, pads, nil, core.NewSprite(300, 180, 8, 16)); err != nil {
		t.Fatal(err)
	}
	if b.OnWall || b.OnPad || b.Fired() {
		t.Errorf("stale bounce state: %+v", b)
	}
}

func TestBouncerUnknownDirection(t *testing.T) {
	pads := testPads(t)
	b := NewBouncer()
	err := b.Evaluate(false, core.Direction("X"), pads, nil, core.NewSprite(0, 0, 8, 16))
	if !errors.Is(err, core.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
	if b.Fired() {
		t.Error("bouncer should be reset after an error")
	}
}

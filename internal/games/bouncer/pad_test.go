package bouncer

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

func TestFieldRefresh(t *testing.T) {
	f := NewField(640, 384)
	f.Refresh()
	if !f.HasChanged() {
		t.Error("first refresh should report a change")
	}
	if f.Width != 640 || f.Height != 384 {
		t.Errorf("size = %vx%v, want 640x384", f.Width, f.Height)
	}

	f.Refresh()
	if f.HasChanged() {
		t.Error("refresh without a staged size should not report a change")
	}

	f.Stage(800, 384)
	if f.Width != 640 {
		t.Error("staging must not change the size before refresh")
	}
	f.Refresh()
	if !f.HasChanged() || f.Width != 800 {
		t.Errorf("after staged refresh: width=%v changed=%v", f.Width, f.HasChanged())
	}
}

func layoutPads(t *testing.T, field Field, ratio float64) map[core.Direction]*Pad {
	t.Helper()
	pads := make(map[core.Direction]*Pad)
	for _, role := range PadRoles {
		p := NewPad(role)
		p.Size(field, ratio, 16)
		if err := p.Center(field); err != nil {
			t.Fatalf("center %s: %v", role, err)
		}
		if err := p.Anchor(field); err != nil {
			t.Fatalf("anchor %s: %v", role, err)
		}
		p.Commit()
		pads[role] = p
	}
	return pads
}

func TestPadAnchors(t *testing.T) {
	field := NewField(640, 384)
	field.Refresh()
	pads := layoutPads(t, field, 0.3)

	tests := []struct {
		role       core.Direction
		x, y, w, h float64
		freeAxis   core.Axis
	}{
		{core.North, 224, 0, 192, 16, core.AxisX},
		{core.South, 224, 368, 192, 16, core.AxisX},
		{core.East, 624, 134.4, 16, 115.2, core.AxisY},
		{core.West, 0, 134.4, 16, 115.2, core.AxisY},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			p := pads[tt.role]
			if p.FreeAxis() != tt.freeAxis {
				t.Errorf("free axis = %v, want %v", p.FreeAxis(), tt.freeAxis)
			}
			if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.x, tt.y)
			}
			if math.Abs(p.Width-tt.w) > 1e-9 || math.Abs(p.Height-tt.h) > 1e-9 {
				t.Errorf("size = %vx%v, want %vx%v", p.Width, p.Height, tt.w, tt.h)
			}
		})
	}
}

func TestPadSetFreeAxisTarget(t *testing.T) {
	field := NewField(640, 384)
	field.Refresh()
	pads := layoutPads(t, field, 0.3)
	north := pads[core.North]
	east := pads[core.East]

	tests := []struct {
		name    string
		pad     *Pad
		pointer float64
		extent  float64
		want    float64
	}{
		{"centered on pointer", north, 320, 640, 224},
		{"clamped at origin", north, 0, 640, 0},
		{"clamped at far edge", north, 640, 640, 448},
		{"vertical pad", east, 192, 384, 134.4},
		{"vertical clamp", east, 1000, 384, 268.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.pad.SetFreeAxisTarget(tt.pointer, tt.extent); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := tt.pad.NextX
			if tt.pad.FreeAxis() == core.AxisY {
				got = tt.pad.NextY
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("target = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPadLargerThanScreen(t *testing.T) {
	field := NewField(640, 384)
	field.Refresh()
	p := layoutPads(t, field, 2)[core.North]

	if err := p.SetFreeAxisTarget(500, field.Width); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.NextX != 0 {
		t.Errorf("oversized pad target = %v, want 0", p.NextX)
	}
}

func TestPadFollowPointer(t *testing.T) {
	field := NewField(640, 384)
	field.Refresh()
	pads := layoutPads(t, field, 0.3)

	south := pads[core.South]
	south.StagePointer(100, 50)
	if err := south.Follow(field); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if south.NextX != 4 {
		t.Errorf("south target x = %v, want 4", south.NextX)
	}
	if south.NextY != 368 {
		t.Errorf("south pad left its edge: y = %v", south.NextY)
	}

	// Without a pointer the pad keeps its place.
	west := pads[core.West]
	if err := west.Follow(field); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if math.Abs(west.NextY-134.4) > 1e-9 || west.NextX != 0 {
		t.Errorf("west pad moved to (%v, %v)", west.NextX, west.NextY)
	}
}

func TestPadUnknownRole(t *testing.T) {
	field := NewField(640, 384)
	field.Refresh()
	p := NewPad("Q")
	err := p.Anchor(field)
	if !errors.Is(err, core.ErrUnknownPositionKeyword) {
		t.Errorf("expected ErrUnknownPositionKeyword, got %v", err)
	}
}

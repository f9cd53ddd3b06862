package bouncer

import (
	"fmt"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// PadRoles lists the pads in the fixed order used for collision search.
var PadRoles = []core.Direction{core.North, core.South, core.East, core.West}

// Pad is a player-controlled rectangle confined to one screen edge.
// North and South pads slide horizontally, East and West pads vertically.
type Pad struct {
	core.Sprite
	Role core.Direction

	pointer    float64
	hasPointer bool
}

// NewPad creates an unsized pad for the given role.
func NewPad(role core.Direction) *Pad {
	return &Pad{Role: role}
}

// FreeAxis returns the axis the pad moves along.
func (p *Pad) FreeAxis() core.Axis {
	if p.Role == core.North || p.Role == core.South {
		return core.AxisX
	}
	return core.AxisY
}

// edge returns the fixed anchor on the perpendicular axis.
func (p *Pad) edge() (core.Axis, core.Anchor) {
	switch p.Role {
	case core.North:
		return core.AxisY, core.AnchorTop
	case core.South:
		return core.AxisY, core.AnchorBottom
	case core.East:
		return core.AxisX, core.AnchorRight
	case core.West:
		return core.AxisX, core.AnchorLeft
	}
	return core.AxisX, core.Anchor("pad:" + string(p.Role))
}

// Size sets the pad dimensions from the field: lengthRatio of the screen
// along the free axis, thickness pixels across it.
func (p *Pad) Size(field Field, lengthRatio, thickness float64) {
	if p.FreeAxis() == core.AxisX {
		p.SetSize(field.Width*lengthRatio, thickness)
		return
	}
	p.SetSize(thickness, field.Height*lengthRatio)
}

// Anchor pins the pad to its screen edge.
func (p *Pad) Anchor(field Field) error {
	axis, anchor := p.edge()
	if err := p.SetAnchoredPosition(axis, anchor, field.Width, field.Height); err != nil {
		return fmt.Errorf("pad %s: %w", p.Role, err)
	}
	return nil
}

// Center places the pad in the middle of its free axis.
func (p *Pad) Center(field Field) error {
	return p.SetAnchoredPosition(p.FreeAxis(), core.AnchorCenter, field.Width, field.Height)
}

// StagePointer records the latest raw pointer position. Only the coordinate
// along the free axis is kept.
func (p *Pad) StagePointer(x, y float64) {
	if p.FreeAxis() == core.AxisX {
		p.pointer = x
	} else {
		p.pointer = y
	}
	p.hasPointer = true
}

// target returns the coordinate the pad center should follow: the staged
// pointer if there is one, else its current target center.
func (p *Pad) target() float64 {
	if p.hasPointer {
		return p.pointer
	}
	if p.FreeAxis() == core.AxisX {
		return p.NextX + p.Width/2
	}
	return p.NextY + p.Height/2
}

// SetFreeAxisTarget centers the pad on pointer along its free axis,
// clamped so the pad stays within [0, extent].
func (p *Pad) SetFreeAxisTarget(pointer, extent float64) error {
	size := p.Width
	if p.FreeAxis() == core.AxisY {
		size = p.Height
	}
	// A pad longer than the screen collapses the range to its origin.
	hi := extent - size
	if hi < 0 {
		hi = 0
	}
	pos, err := core.RestrictToSegment(pointer-size/2, 0, hi)
	if err != nil {
		return fmt.Errorf("pad %s: %w", p.Role, err)
	}
	if p.FreeAxis() == core.AxisX {
		p.NextX = pos
	} else {
		p.NextY = pos
	}
	return nil
}

// Follow moves the pad toward its staged pointer and re-pins it to its edge.
func (p *Pad) Follow(field Field) error {
	extent := field.Width
	if p.FreeAxis() == core.AxisY {
		extent = field.Height
	}
	if err := p.SetFreeAxisTarget(p.target(), extent); err != nil {
		return err
	}
	return p.Anchor(field)
}

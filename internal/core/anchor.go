package core

import "fmt"

// Anchor is a position keyword pinning a sprite against the screen.
type Anchor string

// Supported anchors. Left/Right apply to the horizontal axis, Top/Bottom
// to the vertical axis, Center to either.
const (
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorCenter Anchor = "center"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// Axis selects a screen axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// AnchoredOffset returns the coordinate at which a sprite of the given size
// sits when pinned with anchor along an axis of length extent.
// Horizontal keywords are rejected on the vertical axis and vice versa.
func AnchoredOffset(axis Axis, anchor Anchor, extent, size float64) (float64, error) {
	switch {
	case anchor == AnchorCenter:
		return (extent - size) / 2, nil
	case axis == AxisX && anchor == AnchorLeft, axis == AxisY && anchor == AnchorTop:
		return 0, nil
	case axis == AxisX && anchor == AnchorRight, axis == AxisY && anchor == AnchorBottom:
		return extent - size, nil
	}
	return 0, fmt.Errorf("%s position %q: %w", axis, anchor, ErrUnknownPositionKeyword)
}

// SetAnchoredPosition sets the target position of s on one axis from an
// anchor keyword, given the screen size in pixels.
func (s *Sprite) SetAnchoredPosition(axis Axis, anchor Anchor, screenW, screenH float64) error {
	if axis == AxisX {
		x, err := AnchoredOffset(axis, anchor, screenW, s.Width)
		if err != nil {
			return err
		}
		s.NextX = x
		return nil
	}
	y, err := AnchoredOffset(axis, anchor, screenH, s.Height)
	if err != nil {
		return err
	}
	s.NextY = y
	return nil
}

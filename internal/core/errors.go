package core

import "errors"

// Sentinel errors for the geometry layer. They indicate a logic or
// configuration bug, so callers propagate them instead of retrying.
var (
	// ErrInvalidRange is returned when a segment [a, b] is malformed.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownPositionKeyword is returned for an anchor outside
	// left/right/center/top/bottom.
	ErrUnknownPositionKeyword = errors.New("unknown position keyword")

	// ErrUnknownDirection is returned for a direction outside N/S/E/W.
	ErrUnknownDirection = errors.New("unknown direction")
)

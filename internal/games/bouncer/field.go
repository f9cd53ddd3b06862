package bouncer

// Field is the playfield extent in pixels.
//
// Input handlers stage a new size at any time; the simulation only picks it
// up during the read phase of a tick, so geometry never changes mid-tick.
type Field struct {
	Width, Height float64

	previousWidth, previousHeight float64
	stagedWidth, stagedHeight     float64
}

// NewField creates a field whose first Refresh reports a change.
func NewField(width, height float64) Field {
	return Field{
		previousWidth:  -1,
		previousHeight: -1,
		stagedWidth:    width,
		stagedHeight:   height,
	}
}

// Stage records a new size to apply on the next Refresh.
func (f *Field) Stage(width, height float64) {
	f.stagedWidth = width
	f.stagedHeight = height
}

// Refresh applies the staged size, remembering the previous one.
func (f *Field) Refresh() {
	f.previousWidth, f.previousHeight = f.Width, f.Height
	f.Width, f.Height = f.stagedWidth, f.stagedHeight
}

// HasChanged reports whether the last Refresh changed the size.
func (f *Field) HasChanged() bool {
	return f.Width != f.previousWidth || f.Height != f.previousHeight
}

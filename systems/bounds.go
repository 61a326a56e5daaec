package systems

import "github.com/pthm-cable/pond/components"

// Bounds is the padded toroidal wrap region derived from the viewport.
// The pond rebuilds it every frame from the current viewport size.
type Bounds struct {
	Width   float32
	Height  float32
	Padding float32
}

// NewBounds returns the wrap region for a viewport of the given size.
func NewBounds(width, height, padding float32) Bounds {
	return Bounds{Width: width, Height: height, Padding: padding}
}

// SpanX is the distance a fish is moved when it wraps horizontally.
func (b Bounds) SpanX() float32 { return b.Width + b.Padding*2 }

// SpanY is the distance a fish is moved when it wraps vertically.
func (b Bounds) SpanY() float32 { return b.Height + b.Padding*2 }

// Wrap moves a position that left the padded viewport to the opposite
// edge. Each axis is corrected at most once per call; a frame never moves
// a fish further than one span. Reports whether a correction happened.
func (b Bounds) Wrap(p *components.Position) bool {
	wrapped := false
	if p.X < -b.Padding {
		p.X += b.SpanX()
		wrapped = true
	}
	if p.X > b.Width+b.Padding {
		p.X -= b.SpanX()
		wrapped = true
	}
	if p.Y < -b.Padding {
		p.Y += b.SpanY()
		wrapped = true
	}
	if p.Y > b.Height+b.Padding {
		p.Y -= b.SpanY()
		wrapped = true
	}
	return wrapped
}

// Contains reports whether p lies inside the padded region (edges included).
func (b Bounds) Contains(p components.Position) bool {
	return p.X >= -b.Padding && p.X <= b.Width+b.Padding &&
		p.Y >= -b.Padding && p.Y <= b.Height+b.Padding
}

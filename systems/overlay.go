package systems

// TilingOverlay is the scroll position of a repeating texture.
// The texture repeats on its own, so the offset is never wrapped.
type TilingOverlay struct {
	OffsetX float32
	OffsetY float32
}

// Scroll moves the tile offset by -delta on both axes.
func (o *TilingOverlay) Scroll(delta float32) {
	o.OffsetX -= delta
	o.OffsetY -= delta
}

// Spinner rotates a sprite at a constant rate per unit delta.
type Spinner struct {
	Angle float32 // radians
	Speed float32 // radians per unit delta
}

// Spin advances the angle by Speed*delta.
func (s *Spinner) Spin(delta float32) {
	s.Angle += s.Speed * delta
}

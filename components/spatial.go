package components

// Position represents an entity's scene-space position.
type Position struct {
	X, Y float32
}

// Rotation holds a fish's stored heading and its visual rotation.
// Heading is fixed at spawn; the swim system derives a transient
// effective heading from it every frame and never writes it back.
type Rotation struct {
	Heading float32 // radians
	Angle   float32 // visual rotation (radians, clockwise on screen)
}

// Motion holds per-entity movement parameters.
type Motion struct {
	Speed    float32 // distance per frame
	TurnRate float32 // scaled by the turn factor into a heading offset
}

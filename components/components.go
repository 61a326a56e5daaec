// Package components defines ECS components for the demo scenes.
package components

// Sprite describes how an entity is drawn.
type Sprite struct {
	Variant int     // index into the scene's variant list
	Scale   float32 // uniform scale, fixed after spawn
	AnchorX float32 // pivot as a fraction of texture width
	AnchorY float32 // pivot as a fraction of texture height
}

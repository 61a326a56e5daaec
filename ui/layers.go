package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/renderer"
)

// LayerID uniquely identifies a drawable layer.
type LayerID string

// Pond layers.
const (
	LayerBackground   LayerID = "background"
	LayerFish         LayerID = "fish"
	LayerOverlay      LayerID = "overlay"
	LayerDisplacement LayerID = "displacement"
)

// LayerDescriptor defines a layer that can be toggled.
type LayerDescriptor struct {
	ID          LayerID
	Name        string
	Description string
	Key         int32  // Keyboard key to toggle (0 = no key)
	KeyLabel    string // Key label for display
}

// LayerRegistry manages layer state and metadata.
type LayerRegistry struct {
	descriptors []LayerDescriptor
	enabled     map[LayerID]bool
}

// NewLayerRegistry creates a registry with the pond layers. Overlay and
// displacement start in their configured state, everything else on.
func NewLayerRegistry(overlay, displacement bool) *LayerRegistry {
	reg := &LayerRegistry{enabled: make(map[LayerID]bool)}

	reg.Register(LayerDescriptor{
		ID:          LayerBackground,
		Name:        "Background",
		Description: "Pond floor picture",
		Key:         rl.KeyB,
		KeyLabel:    "B",
	}, true)
	reg.Register(LayerDescriptor{
		ID:          LayerFish,
		Name:        "Fish",
		Description: "Swimming fish sprites",
		Key:         rl.KeyF,
		KeyLabel:    "F",
	}, true)
	reg.Register(LayerDescriptor{
		ID:          LayerOverlay,
		Name:        "Water Overlay",
		Description: "Scrolling wave texture",
		Key:         rl.KeyO,
		KeyLabel:    "O",
	}, overlay)
	reg.Register(LayerDescriptor{
		ID:          LayerDisplacement,
		Name:        "Displacement",
		Description: "Ripple filter over the whole pond",
		Key:         rl.KeyD,
		KeyLabel:    "D",
	}, displacement)

	return reg
}

// Register adds a layer to the registry.
func (r *LayerRegistry) Register(desc LayerDescriptor, enabled bool) {
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = enabled
}

// Toggle switches a layer on/off and returns its new state.
func (r *LayerRegistry) Toggle(id LayerID) bool {
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a layer's state.
func (r *LayerRegistry) SetEnabled(id LayerID, enabled bool) {
	r.enabled[id] = enabled
}

// IsEnabled returns whether a layer is drawn.
func (r *LayerRegistry) IsEnabled(id LayerID) bool {
	return r.enabled[id]
}

// All returns all registered layers in registration order.
func (r *LayerRegistry) All() []LayerDescriptor {
	return r.descriptors
}

// HandleKeyPress checks if a key corresponds to a layer toggle.
// Returns the layer ID and new state if a toggle occurred.
func (r *LayerRegistry) HandleKeyPress(key int32) (LayerID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Layers returns the renderer's view of the current toggles.
func (r *LayerRegistry) Layers() renderer.Layers {
	return renderer.Layers{
		Background:   r.enabled[LayerBackground],
		Fish:         r.enabled[LayerFish],
		Overlay:      r.enabled[LayerOverlay],
		Displacement: r.enabled[LayerDisplacement],
	}
}

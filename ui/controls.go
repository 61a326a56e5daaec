package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsResult reports what the user did in the controls panel this frame.
type ControlsResult struct {
	TogglePause       bool
	Respawn           bool
	SwitchScene       bool
	DisplacementScale float32
}

// ControlsPanel renders the right-side raygui panel with layer toggles,
// the displacement slider and scene buttons.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
	maxScale float32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		maxScale: 200,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel. Layer checkboxes write straight into layers;
// everything else is returned for the caller to apply.
func (c *ControlsPanel) Draw(layers *LayerRegistry, paused bool, scale float32, pondControls bool) ControlsResult {
	res := ControlsResult{DisplacementScale: scale}
	if !c.visible {
		return res
	}

	r := c.renderer
	pad := float32(r.Theme.Padding)
	line := float32(r.Theme.LineHeight) + 8
	x := float32(c.x) + pad
	w := float32(c.width) - pad*2

	rows := 3
	if pondControls {
		rows += len(layers.All()) + 2
	}
	height := int32(float32(rows)*line + pad*3)
	r.DrawPanel(c.x, c.y, c.width, height)

	y := float32(r.DrawSectionHeader(int32(x), c.y+r.Theme.Padding, "Controls")) + 4

	if pondControls {
		for _, desc := range layers.All() {
			label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
			enabled := layers.IsEnabled(desc.ID)
			if checked := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, label, enabled); checked != enabled {
				layers.SetEnabled(desc.ID, checked)
			}
			y += line
		}

		rl.DrawText(fmt.Sprintf("Displacement scale: %.0f px", scale), int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
		y += float32(r.Theme.LineHeight)
		res.DisplacementScale = gui.SliderBar(
			rl.Rectangle{X: x + 20, Y: y, Width: w - 60, Height: 14},
			"0", fmt.Sprintf("%.0f", c.maxScale),
			scale, 0, c.maxScale,
		)
		y += line
	}

	half := (w - pad) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, toggleText(paused, "Resume", "Pause")) {
		res.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 24}, "Respawn") {
		res.Respawn = true
	}
	y += line + 8
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, "Switch Scene") {
		res.SwitchScene = true
	}

	return res
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}

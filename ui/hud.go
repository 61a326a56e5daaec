package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Scene        string
	FishCount    int
	Tick         int32
	Seed         int64
	FPS          int32
	Paused       bool
	OverlayX     float32
	OverlayY     float32
	SpinAngle    float32
	Placeholders int // textures generated instead of loaded
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	var detail string
	switch data.Scene {
	case scene.BunnyName:
		detail = fmt.Sprintf("Scene: %s | Angle: %.2f rad", data.Scene, data.SpinAngle)
	default:
		detail = fmt.Sprintf("Scene: %s | Fish: %d | Overlay: (%.0f, %.0f)", data.Scene, data.FishCount, data.OverlayX, data.OverlayY)
	}
	rl.DrawText(detail, 10, 35, 16, rl.LightGray)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Seed: %d", data.Tick, data.FPS, data.Seed),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)

	if data.Placeholders > 0 {
		rl.DrawText(fmt.Sprintf("%d textures missing, showing placeholders", data.Placeholders), 10, 95, 14, rl.Orange)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	Scene    string
	Stats    telemetry.PerfStats
	Registry *systems.SystemRegistry
}

// PerfPanel renders the per-system timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel for the systems the scene runs.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	infos := data.Registry.ForScene(data.Scene)
	height := int32(len(infos)+2)*(r.Theme.LineHeight+2) + r.Theme.Padding*2

	r.DrawPanel(p.x, p.y, p.width, height)
	x := p.x + r.Theme.Padding
	y := r.DrawSectionHeader(x, p.y+r.Theme.Padding, "Systems")
	y = r.DrawLabelValue(x, y, "Frame", data.Stats.AvgFrame.Round(time.Microsecond).String())

	for _, info := range infos {
		ps, _ := data.Stats.Phase(info.ID)
		label := fmt.Sprintf("%s %s", info.Name, ps.Avg.Round(time.Microsecond))
		y = r.DrawPercentBar(x, y, label, ps.Pct, 50, p.width-r.Theme.Padding*2)
	}
}

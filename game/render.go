package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/ui"
)

const controlsLegend = "[Space] Pause  [R] Respawn  [Tab/1/2] Scene  [B/F/O/D] Layers  [C] Controls  [H] HUD  [F11] Fullscreen"

// Draw renders the active scene and the UI, closing the perf tick opened
// by Update.
func (g *Game) Draw() {
	perf := g.sess.Perf()
	perf.StartPhase(systems.SystemRender)

	rl.BeginDrawing()

	switch sc := g.sess.Active().(type) {
	case *scene.Pond:
		g.pondRenderer.Draw(sc, g.layers.Layers())
	case *scene.Bunny:
		g.bunnyRenderer.Draw(sc)
	default:
		rl.ClearBackground(rl.Black)
	}

	if g.showHUD {
		g.drawUI()
	}

	rl.EndDrawing()

	perf.EndTick()
	perf.RecordFrame()
}

// drawUI draws the HUD, perf panel and controls, then applies whatever
// the controls panel reported.
func (g *Game) drawUI() {
	active := g.sess.Active()
	data := ui.HUDData{
		Title:  g.cfg.Screen.Title,
		Scene:  active.Name(),
		Tick:   active.Tick(),
		FPS:    rl.GetFPS(),
		Paused: g.paused,
	}
	var pond *scene.Pond
	switch sc := active.(type) {
	case *scene.Pond:
		pond = sc
		o := sc.Overlay()
		data.FishCount = sc.FishCount()
		data.Seed = sc.Seed()
		data.OverlayX, data.OverlayY = o.OffsetX, o.OffsetY
	case *scene.Bunny:
		data.SpinAngle = sc.Angle()
	}
	for _, alias := range g.textureAliases() {
		if g.atlas.IsPlaceholder(alias) {
			data.Placeholders++
		}
	}
	g.hud.Draw(data)

	g.perfPanel.Draw(ui.PerfPanelData{
		Scene:    active.Name(),
		Stats:    g.sess.Perf().Stats(),
		Registry: g.sess.Registry(),
	})

	disp := g.pondRenderer.Displacement()
	res := g.controls.Draw(g.layers, g.paused, disp.Scale(), pond != nil)
	if res.DisplacementScale != disp.Scale() {
		disp.SetScale(res.DisplacementScale)
	}
	if res.TogglePause {
		g.paused = !g.paused
	}
	if res.Respawn {
		g.respawn()
	}
	if res.SwitchScene {
		g.nextScene()
	}

	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)
}

// textureAliases lists every texture the renderers use.
func (g *Game) textureAliases() []string {
	aliases := []string{g.cfg.Pond.Background, g.cfg.Overlay.Texture, g.cfg.Displacement.Texture, g.cfg.Bunny.Texture}
	return append(aliases, g.cfg.Pond.Variants...)
}

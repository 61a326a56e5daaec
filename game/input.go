package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/scene"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	if rl.IsWindowResized() {
		g.resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.respawn()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.controls.Toggle()
	}

	// Scene selection
	if rl.IsKeyPressed(rl.KeyTab) {
		g.nextScene()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		g.selectScene(scene.PondName)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		g.selectScene(scene.BunnyName)
	}

	// Layer toggles
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.layers.HandleKeyPress(key); ok {
			slog.Debug("layer toggled", "layer", id, "enabled", on)
		}
	}
}

// frameTime returns the last frame's duration in seconds.
func (g *Game) frameTime() float32 {
	return rl.GetFrameTime()
}

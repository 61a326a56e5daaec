package game

import (
	"log/slog"
)

// nextScene cycles through the registered scenes.
func (g *Game) nextScene() {
	if err := g.sess.NextScene(); err != nil {
		slog.Error("scene switch failed", "error", err)
	}
}

// selectScene switches by name, logging rather than failing on bad names.
func (g *Game) selectScene(name string) {
	if err := g.sess.SelectScene(name); err != nil {
		slog.Error("scene switch failed", "scene", name, "error", err)
	}
}

// respawn resets the active scene with the next seed.
func (g *Game) respawn() {
	g.sess.Respawn()
}

// resize propagates a new viewport to the session, renderers and panels.
func (g *Game) resize(w, h float32) {
	if !g.sess.Resize(w, h) {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.pondRenderer != nil {
		g.pondRenderer.Resize(int32(w), int32(h))
	}
	if g.controls != nil {
		g.controls.SetPosition(int32(w)-250, 10)
	}
}

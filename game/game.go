// Package game puts a session on screen: it owns the raylib frame loop,
// input, rendering and UI, and hands scene stepping to the session.
package game

import (
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/renderer"
	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/session"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/ui"
)

// Options configures game initialization.
type Options struct {
	session.Options
	Headless bool // no raylib calls at all
}

// Game holds the complete host state.
type Game struct {
	cfg  *config.Config
	sess *session.Session

	// Rendering (nil when headless)
	atlas         *renderer.Atlas
	pondRenderer  *renderer.PondRenderer
	bunnyRenderer *renderer.BunnyRenderer
	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	controls      *ui.ControlsPanel
	layers        *ui.LayerRegistry

	// Ticker
	referenceFPS float32
	maxDelta     float32

	// State
	paused   bool
	showHUD  bool
	headless bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game running opts.Scene. In graphical mode
// the raylib window must already be open.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	sess, err := session.New(cfg, opts.Options)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		sess:         sess,
		referenceFPS: float32(cfg.Ticker.ReferenceFPS),
		maxDelta:     float32(cfg.Ticker.MaxDelta),
		showHUD:      true,
		headless:     opts.Headless,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	if !opts.Headless {
		g.initGraphics()
	}
	return g, nil
}

// initGraphics creates renderers and UI. Requires an open window.
func (g *Game) initGraphics() {
	cfg := g.cfg
	g.atlas = renderer.NewAtlas(cfg)
	g.pondRenderer = renderer.NewPondRenderer(cfg, g.atlas)
	g.pondRenderer.Init(int32(g.screenWidth), int32(g.screenHeight), cfg.Pond.Variants)
	g.bunnyRenderer = renderer.NewBunnyRenderer(cfg, g.atlas)
	g.bunnyRenderer.Init()

	g.layers = ui.NewLayerRegistry(cfg.Overlay.Enabled, cfg.Displacement.Enabled)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(10, 120, 260)
	g.controls = ui.NewControlsPanel(int32(g.screenWidth)-250, 10, 240)
}

// Update runs one graphical frame: input, then up to StepsPerUpdate scene
// updates with the frame's delta. The perf tick stays open until Draw.
func (g *Game) Update() {
	g.handleInput()

	g.sess.Perf().StartTick()
	if g.paused {
		return
	}

	delta := systems.FrameDelta(g.frameTime(), g.referenceFPS, g.maxDelta)
	g.sess.Advance(delta)
}

// UpdateHeadless steps the active scene with a delta of one reference
// frame. No input, no rendering.
func (g *Game) UpdateHeadless() {
	g.sess.StepHeadless()
}

// Done reports whether the tick limit has been reached.
func (g *Game) Done() bool {
	return g.sess.Done()
}

// Tick returns the number of scene updates since start.
func (g *Game) Tick() int32 {
	return g.sess.Tick()
}

// Scene returns the active scene.
func (g *Game) Scene() scene.Scene {
	return g.sess.Active()
}

// Paused reports whether updates are suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Unload frees GPU resources and closes output files.
func (g *Game) Unload() {
	if g.pondRenderer != nil {
		g.pondRenderer.Unload()
	}
	if g.atlas != nil {
		g.atlas.Unload()
	}
	g.sess.Close()
}

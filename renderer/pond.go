package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/systems"
)

// Layers selects which parts of the pond are drawn.
type Layers struct {
	Background   bool
	Fish         bool
	Overlay      bool
	Displacement bool
}

// PondRenderer draws a pond scene into an offscreen target and presents it
// through the displacement filter.
type PondRenderer struct {
	atlas        *Atlas
	displacement *Displacement

	backgroundAlias   string
	overlayAlias      string
	displacementAlias string
	cover             float32
	clear             color.RGBA

	target        rl.RenderTexture2D
	width, height int32
	initialized   bool
}

// NewPondRenderer creates a pond renderer. Call Init after the window opens.
func NewPondRenderer(cfg *config.Config, atlas *Atlas) *PondRenderer {
	rgb := cfg.Derived.BackgroundRGB
	return &PondRenderer{
		atlas:             atlas,
		displacement:      NewDisplacement(float32(cfg.Displacement.Scale)),
		backgroundAlias:   cfg.Pond.Background,
		overlayAlias:      cfg.Overlay.Texture,
		displacementAlias: cfg.Displacement.Texture,
		cover:             float32(cfg.Pond.BackgroundCover),
		clear:             color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255},
	}
}

// Init loads the pond textures and allocates the offscreen target.
func (r *PondRenderer) Init(width, height int32, variants []string) {
	if r.initialized {
		return
	}

	r.atlas.Load(r.backgroundAlias, RoleBackground)
	r.atlas.Load(r.overlayAlias, RoleOverlay)
	for _, v := range variants {
		r.atlas.Load(v, RoleSprite)
	}
	r.displacement.Init(r.atlas.Load(r.displacementAlias, RoleDisplacement))

	r.resizeTarget(width, height)
	r.initialized = true
}

// Resize reallocates the offscreen target when the window size changes.
func (r *PondRenderer) Resize(width, height int32) {
	if !r.initialized || (width == r.width && height == r.height) {
		return
	}
	r.resizeTarget(width, height)
}

func (r *PondRenderer) resizeTarget(width, height int32) {
	if r.target.ID != 0 {
		rl.UnloadRenderTexture(r.target)
	}
	r.target = rl.LoadRenderTexture(width, height)
	r.width, r.height = width, height
}

// Displacement exposes the filter so the controls can tune its scale.
func (r *PondRenderer) Displacement() *Displacement {
	return r.displacement
}

// Draw renders p. Must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *PondRenderer) Draw(p *scene.Pond, layers Layers) {
	if !r.initialized {
		r.Init(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), p.Variants())
	}
	w, h := float32(r.width), float32(r.height)

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(r.clear)
	if layers.Background {
		r.drawBackground(w, h)
	}
	if layers.Fish {
		r.drawFish(p)
	}
	if layers.Overlay {
		r.drawOverlay(p.Overlay(), w, h)
	}
	rl.EndTextureMode()

	if layers.Displacement {
		r.displacement.Draw(r.target, w, h)
		return
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: w, Height: -h}
	rl.DrawTexturePro(r.target.Texture, src, rl.Rectangle{Width: w, Height: h}, rl.Vector2{}, 0, rl.White)
}

// drawBackground centres the background and scales it to cover the viewport.
func (r *PondRenderer) drawBackground(w, h float32) {
	tex := r.atlas.Get(r.backgroundAlias)
	tw, th := float32(tex.Width), float32(tex.Height)
	s := systems.CoverScale(tw, th, w, h, r.cover)
	cx, cy := systems.Centre(w, h)

	dw, dh := tw*s, th*s
	rl.DrawTexturePro(tex,
		rl.Rectangle{Width: tw, Height: th},
		rl.Rectangle{X: cx, Y: cy, Width: dw, Height: dh},
		rl.Vector2{X: dw / 2, Y: dh / 2},
		0, rl.White,
	)
}

// drawFish draws each fish at its position, rotated about its anchor.
func (r *PondRenderer) drawFish(p *scene.Pond) {
	variants := p.Variants()
	p.EachFish(func(f scene.Fish) {
		if f.Sprite.Variant < 0 || f.Sprite.Variant >= len(variants) {
			return
		}
		tex := r.atlas.Get(variants[f.Sprite.Variant])
		tw, th := float32(tex.Width), float32(tex.Height)
		dw, dh := tw*f.Sprite.Scale, th*f.Sprite.Scale

		rl.DrawTexturePro(tex,
			rl.Rectangle{Width: tw, Height: th},
			rl.Rectangle{X: f.Position.X, Y: f.Position.Y, Width: dw, Height: dh},
			rl.Vector2{X: f.Sprite.AnchorX * dw, Y: f.Sprite.AnchorY * dh},
			f.Rotation.Angle*rl.Rad2deg, rl.White,
		)
	})
}

// drawOverlay tiles the overlay texture across the viewport. The source
// rectangle moves against the tile offset; repeat wrap does the tiling.
func (r *PondRenderer) drawOverlay(o systems.TilingOverlay, w, h float32) {
	tex := r.atlas.Get(r.overlayAlias)
	rl.DrawTexturePro(tex,
		rl.Rectangle{X: -o.OffsetX, Y: -o.OffsetY, Width: w, Height: h},
		rl.Rectangle{Width: w, Height: h},
		rl.Vector2{}, 0, rl.White,
	)
}

// Unload frees the offscreen target and shader. Textures belong to the atlas.
func (r *PondRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadRenderTexture(r.target)
	r.target = rl.RenderTexture2D{}
	r.displacement.Unload()
	r.initialized = false
}

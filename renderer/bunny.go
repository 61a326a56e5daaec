package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/scene"
)

// BunnyRenderer draws the spinning sprite scene.
type BunnyRenderer struct {
	atlas *Atlas
	alias string
	clear color.RGBA
}

// NewBunnyRenderer creates a bunny renderer.
func NewBunnyRenderer(cfg *config.Config, atlas *Atlas) *BunnyRenderer {
	rgb := cfg.Derived.BackgroundRGB
	return &BunnyRenderer{
		atlas: atlas,
		alias: cfg.Bunny.Texture,
		clear: color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255},
	}
}

// Init loads the sprite texture.
func (r *BunnyRenderer) Init() {
	r.atlas.Load(r.alias, RoleSprite)
}

// Draw renders b centred on its position, rotated about its middle.
func (r *BunnyRenderer) Draw(b *scene.Bunny) {
	tex := r.atlas.Get(r.alias)
	if tex.ID == 0 {
		tex = r.atlas.Load(r.alias, RoleSprite)
	}
	tw, th := float32(tex.Width), float32(tex.Height)
	x, y := b.Position()

	rl.ClearBackground(r.clear)
	rl.DrawTexturePro(tex,
		rl.Rectangle{Width: tw, Height: th},
		rl.Rectangle{X: x, Y: y, Width: tw, Height: th},
		rl.Vector2{X: tw / 2, Y: th / 2},
		b.Angle()*rl.Rad2deg, rl.White,
	)
}

package renderer

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/renderer/noise"
)

// Role tells the atlas how a texture is used, which decides its wrap mode
// and the look of its placeholder.
type Role int

const (
	RoleSprite Role = iota
	RoleBackground
	RoleOverlay
	RoleDisplacement
)

// fishPalette colours placeholder sprites by variant.
var fishPalette = []color.RGBA{
	{R: 240, G: 130, B: 60, A: 255},
	{R: 250, G: 210, B: 80, A: 255},
	{R: 220, G: 90, B: 120, A: 255},
	{R: 120, G: 200, B: 140, A: 255},
	{R: 170, G: 140, B: 230, A: 255},
}

// Atlas owns every texture the renderers draw, keyed by asset alias.
type Atlas struct {
	dir          string
	assets       map[string]config.Asset
	textures     map[string]rl.Texture2D
	placeholders map[string]bool
	background   color.RGBA
}

// NewAtlas creates an empty atlas over the configured asset manifest.
// Textures are loaded with Load once the raylib window exists.
func NewAtlas(cfg *config.Config) *Atlas {
	rgb := cfg.Derived.BackgroundRGB
	return &Atlas{
		dir:          cfg.Assets.Dir,
		assets:       cfg.Derived.AssetIndex,
		textures:     make(map[string]rl.Texture2D),
		placeholders: make(map[string]bool),
		background:   color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255},
	}
}

// Load loads alias from disk, falling back to a generated placeholder when
// the file is missing or unreadable. Loading an alias twice is a no-op.
func (a *Atlas) Load(alias string, role Role) rl.Texture2D {
	if tex, ok := a.textures[alias]; ok {
		return tex
	}

	var tex rl.Texture2D
	if asset, ok := a.assets[alias]; ok {
		path := filepath.Join(a.dir, asset.File)
		if _, err := os.Stat(path); err == nil {
			tex = rl.LoadTexture(path)
		} else {
			slog.Warn("asset missing, using placeholder", "alias", alias, "path", path, "source", asset.URL)
		}
	}
	if tex.ID == 0 {
		img := a.placeholder(alias, role)
		tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.placeholders[alias] = true
	}

	if role == RoleOverlay || role == RoleDisplacement {
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	a.textures[alias] = tex
	return tex
}

// Get returns a loaded texture. The zero texture is returned for unknown
// aliases and draws nothing.
func (a *Atlas) Get(alias string) rl.Texture2D {
	return a.textures[alias]
}

// IsPlaceholder reports whether alias was generated instead of loaded.
func (a *Atlas) IsPlaceholder(alias string) bool {
	return a.placeholders[alias]
}

// Unload frees all textures.
func (a *Atlas) Unload() {
	for alias, tex := range a.textures {
		rl.UnloadTexture(tex)
		delete(a.textures, alias)
	}
	clear(a.placeholders)
}

func (a *Atlas) placeholder(alias string, role Role) *rl.Image {
	switch role {
	case RoleBackground:
		dark := color.RGBA{R: a.background.R / 2, G: a.background.G / 2, B: a.background.B / 2, A: 255}
		return rl.GenImageChecked(1024, 768, 128, 128, a.background, dark)
	case RoleOverlay:
		return rl.GenImageChecked(256, 256, 32, 32, color.RGBA{R: 255, G: 255, B: 255, A: 24}, color.RGBA{A: 0})
	case RoleDisplacement:
		return rl.NewImageFromImage(noise.DisplacementMap(512, 512, int64(aliasHash(alias)), 64))
	}
	// Sprites get a flat swatch coloured by a hash of the alias
	c := fishPalette[aliasHash(alias)%uint32(len(fishPalette))]
	return rl.GenImageColor(96, 48, c)
}

func aliasHash(alias string) uint32 {
	var h uint32
	for _, r := range alias {
		h = h*31 + uint32(r)
	}
	return h
}

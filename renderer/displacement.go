package renderer

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/displacement.fs
var displacementFS string

// Displacement ripples a rendered scene through a repeating displacement map.
type Displacement struct {
	shader        rl.Shader
	mapLoc        int32
	resolutionLoc int32
	mapSizeLoc    int32
	scaleLoc      int32

	mapTex      rl.Texture2D
	scale       float32
	initialized bool
}

// NewDisplacement creates a displacement filter with the given maximum
// offset in pixels.
func NewDisplacement(scale float32) *Displacement {
	return &Displacement{scale: scale}
}

// Init compiles the shader (must be called after raylib window is created).
func (d *Displacement) Init(mapTex rl.Texture2D) {
	if d.initialized {
		return
	}

	d.shader = rl.LoadShaderFromMemory("", displacementFS)
	d.mapLoc = rl.GetShaderLocation(d.shader, "displacementMap")
	d.resolutionLoc = rl.GetShaderLocation(d.shader, "resolution")
	d.mapSizeLoc = rl.GetShaderLocation(d.shader, "mapSize")
	d.scaleLoc = rl.GetShaderLocation(d.shader, "scale")
	d.mapTex = mapTex

	d.initialized = true
}

// SetScale changes the maximum offset.
func (d *Displacement) SetScale(scale float32) {
	d.scale = scale
}

// Scale returns the maximum offset in pixels.
func (d *Displacement) Scale() float32 {
	return d.scale
}

// Draw renders the scene texture to the screen through the filter.
// Render textures are stored upside down, so the source is flipped.
func (d *Displacement) Draw(scene rl.RenderTexture2D, width, height float32) {
	src := rl.Rectangle{X: 0, Y: 0, Width: width, Height: -height}
	dst := rl.Rectangle{X: 0, Y: 0, Width: width, Height: height}

	if !d.initialized {
		rl.DrawTexturePro(scene.Texture, src, dst, rl.Vector2{}, 0, rl.White)
		return
	}

	rl.BeginShaderMode(d.shader)
	rl.SetShaderValueTexture(d.shader, d.mapLoc, d.mapTex)
	rl.SetShaderValue(d.shader, d.resolutionLoc, []float32{width, height}, rl.ShaderUniformVec2)
	rl.SetShaderValue(d.shader, d.mapSizeLoc, []float32{float32(d.mapTex.Width), float32(d.mapTex.Height)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(d.shader, d.scaleLoc, []float32{d.scale}, rl.ShaderUniformFloat)
	rl.DrawTexturePro(scene.Texture, src, dst, rl.Vector2{}, 0, rl.White)
	rl.EndShaderMode()
}

// Unload frees resources. The map texture belongs to the atlas.
func (d *Displacement) Unload() {
	if d.initialized {
		rl.UnloadShader(d.shader)
		d.initialized = false
	}
}

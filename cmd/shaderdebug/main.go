// Shader debug tool - renders the pond displacement shader over a
// checkerboard to a PNG file for inspection.
//
// Usage: go run ./cmd/shaderdebug -scale 50 -out debug.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/renderer"
	"github.com/pthm-cable/pond/renderer/noise"
)

type options struct {
	out           string
	mapPath       string
	scale         float64
	seed          int64
	width, height int
}

func main() {
	var opts options
	flag.StringVar(&opts.out, "out", "debug.png", "Output PNG path")
	flag.StringVar(&opts.mapPath, "map", "", "Displacement map image (empty = generated noise)")
	flag.Float64Var(&opts.scale, "scale", 50, "Maximum offset in pixels")
	flag.Int64Var(&opts.seed, "seed", 1, "Seed for the generated map")
	flag.IntVar(&opts.width, "width", 512, "Render width")
	flag.IntVar(&opts.height, "height", 512, "Render height")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run renders one frame and exports it. Every resource is released by
// its defer before run returns.
func run(opts options) error {
	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(opts.width), int32(opts.height), "Shader Debug")
	defer rl.CloseWindow()

	// Displacement map
	var mapImg *rl.Image
	if opts.mapPath != "" {
		mapImg = rl.LoadImage(opts.mapPath)
	} else {
		mapImg = rl.NewImageFromImage(noise.DisplacementMap(256, 256, opts.seed, 48))
	}
	mapTex := rl.LoadTextureFromImage(mapImg)
	rl.UnloadImage(mapImg)
	if mapTex.ID == 0 {
		return fmt.Errorf("failed to load displacement map: %s", opts.mapPath)
	}
	defer rl.UnloadTexture(mapTex)
	rl.SetTextureWrap(mapTex, rl.WrapRepeat)

	disp := renderer.NewDisplacement(float32(opts.scale))
	disp.Init(mapTex)
	defer disp.Unload()

	// Scene: a checkerboard makes the offsets easy to see
	checker := rl.GenImageChecked(opts.width, opts.height, 32, 32, rl.RayWhite, rl.DarkBlue)
	sceneTex := rl.LoadTextureFromImage(checker)
	rl.UnloadImage(checker)
	defer rl.UnloadTexture(sceneTex)

	src := rl.LoadRenderTexture(int32(opts.width), int32(opts.height))
	defer rl.UnloadRenderTexture(src)
	rl.BeginTextureMode(src)
	rl.DrawTexture(sceneTex, 0, 0, rl.White)
	rl.EndTextureMode()

	// Render shader to texture
	target := rl.LoadRenderTexture(int32(opts.width), int32(opts.height))
	defer rl.UnloadRenderTexture(target)
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	disp.Draw(src, float32(opts.width), float32(opts.height))
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, opts.out) {
		return errors.New("failed to export image")
	}
	fmt.Printf("Shader rendered to: %s (%dx%d, scale %.0f)\n", opts.out, opts.width, opts.height, opts.scale)
	return nil
}

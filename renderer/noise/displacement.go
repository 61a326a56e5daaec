// Package noise builds generated displacement maps. Red and green carry
// two independent OpenSimplex fields, so a map offsets pixels in every
// direction rather than along one diagonal.
package noise

import (
	"image"
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// greenOffset moves the green field away from the red one in noise space.
const greenOffset = 97.31

// DisplacementMap returns a width x height map whose red and green
// channels are independent noise with features about period pixels
// across. Both channels tile seamlessly, so the map can be sampled with
// repeat wrapping. Blue stays at the neutral 128.
func DisplacementMap(width, height int, seed int64, period float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	if period <= 0 {
		period = 1
	}

	red := opensimplex.NewNormalized(seed)
	green := opensimplex.NewNormalized(seed ^ 0x5f3759df)

	// Each axis walks a circle so the last column meets the first
	rx := float64(width) / (2 * math.Pi * period)
	ry := float64(height) / (2 * math.Pi * period)

	for y := 0; y < height; y++ {
		ay := 2 * math.Pi * float64(y) / float64(height)
		cy, sy := ry*math.Cos(ay), ry*math.Sin(ay)
		for x := 0; x < width; x++ {
			ax := 2 * math.Pi * float64(x) / float64(width)
			cx, sx := rx*math.Cos(ax), rx*math.Sin(ax)

			r := red.Eval4(cx, sx, cy, sy)
			g := green.Eval4(cx+greenOffset, sx+greenOffset, cy+greenOffset, sy+greenOffset)
			img.SetRGBA(x, y, color.RGBA{R: channel(r), G: channel(g), B: 128, A: 255})
		}
	}
	return img
}

// channel maps [0, 1] to a byte.
func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

package systems

import (
	"math"
	"math/rand/v2"

	"github.com/pthm-cable/pond/config"
)

// uniform draws a float32 from [r.Min, r.Max). The upper bound stays
// exclusive after narrowing to float32.
func uniform(rng *rand.Rand, r config.Range) float32 {
	v := float32(r.Min + rng.Float64()*(r.Max-r.Min))
	if hi := float32(r.Max); v >= hi {
		v = math.Nextafter32(hi, float32(math.Inf(-1)))
	}
	return v
}

// CoverScale returns the uniform scale that makes a texW x texH picture
// cover a viewW x viewH viewport, oversized by factor. Landscape viewports
// fit the width, portrait (and square) viewports fit the height.
func CoverScale(texW, texH, viewW, viewH, factor float32) float32 {
	if texW <= 0 || texH <= 0 {
		return 1
	}
	if viewW > viewH {
		return viewW * factor / texW
	}
	return viewH * factor / texH
}

// Centre returns the midpoint of a viewport.
func Centre(viewW, viewH float32) (float32, float32) {
	return viewW / 2, viewH / 2
}

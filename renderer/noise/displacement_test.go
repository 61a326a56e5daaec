package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func channels(t *testing.T, w, h int, seed int64) (r, g []float64) {
	t.Helper()
	img := DisplacementMap(w, h, seed, 24)
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, h, img.Bounds().Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(x, y)
			r = append(r, float64(c.R))
			g = append(g, float64(c.G))
		}
	}
	return r, g
}

func TestDisplacementMapChannelsIndependent(t *testing.T) {
	r, g := channels(t, 128, 128, 7)

	differ := 0
	for i := range r {
		if r[i] != g[i] {
			differ++
		}
	}
	assert.Greater(t, float64(differ)/float64(len(r)), 0.9, "red and green should not repeat each other")
	assert.Less(t, math.Abs(stat.Correlation(r, g, nil)), 0.5)
}

func TestDisplacementMapSpansBothDirections(t *testing.T) {
	r, g := channels(t, 128, 128, 11)

	for name, ch := range map[string][]float64{"red": r, "green": g} {
		lo, hi := ch[0], ch[0]
		for _, v := range ch {
			lo, hi = min(lo, v), max(hi, v)
		}
		assert.Less(t, lo, 128.0, "%s never offsets negatively", name)
		assert.Greater(t, hi, 128.0, "%s never offsets positively", name)
	}
}

func TestDisplacementMapDeterministic(t *testing.T) {
	a := DisplacementMap(32, 32, 3, 8)
	b := DisplacementMap(32, 32, 3, 8)
	c := DisplacementMap(32, 32, 4, 8)

	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestDisplacementMapTiles(t *testing.T) {
	const w, h = 96, 64
	img := DisplacementMap(w, h, 5, 16)

	diff := func(x0, y0, x1, y1 int) float64 {
		a, b := img.RGBAAt(x0, y0), img.RGBAAt(x1, y1)
		return math.Abs(float64(a.R)-float64(b.R)) + math.Abs(float64(a.G)-float64(b.G))
	}

	var seam, inner float64
	for y := 0; y < h; y++ {
		seam += diff(w-1, y, 0, y)
		inner += diff(w/2, y, w/2+1, y)
	}
	// Crossing the wrap edge should look like any other neighbour step
	assert.Less(t, seam, 4*inner+float64(h))

	seam, inner = 0, 0
	for x := 0; x < w; x++ {
		seam += diff(x, h-1, x, 0)
		inner += diff(x, h/2, x, h/2+1)
	}
	assert.Less(t, seam, 4*inner+float64(w))
}

func TestDisplacementMapEmpty(t *testing.T) {
	assert.Empty(t, DisplacementMap(0, 10, 1, 8).Pix)
}

package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		name    string
		seconds float32
		want    float32
	}{
		{"one reference frame", 1.0 / 60, 1},
		{"half frame", 1.0 / 120, 0.5},
		{"two frames", 2.0 / 60, 2},
		{"clamped stall", 2, 6},
		{"zero", 0, 0},
		{"negative", -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FrameDelta(tt.seconds, 60, 6), 1e-5)
		})
	}

	assert.Equal(t, float32(0), FrameDelta(0.016, 0, 6), "no reference rate")
	assert.InDelta(t, 120, FrameDelta(2, 60, 0), 1e-4, "no clamp")
}

package scene

import (
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/systems"
)

// BunnyName is the registry name of the spinning sprite scene.
const BunnyName = "bunny"

func init() {
	Register(BunnyName, func(cfg *config.Config, seed int64) Scene {
		return NewBunny(cfg)
	})
}

// Bunny is a single sprite spinning in the middle of the viewport.
type Bunny struct {
	spinner       systems.Spinner
	speed         float32
	x, y          float32
	width, height float32
	perf          PhaseRecorder
	tick          int32
}

// NewBunny creates a centred, unrotated bunny.
func NewBunny(cfg *config.Config) *Bunny {
	b := &Bunny{
		speed: float32(cfg.Bunny.RotationSpeed),
		perf:  nopRecorder{},
	}
	b.Resize(float32(cfg.Screen.Width), float32(cfg.Screen.Height))
	b.Reset(0)
	return b
}

// Name returns the scene identifier.
func (b *Bunny) Name() string { return BunnyName }

// Reset rewinds the rotation. The scene has no randomness.
func (b *Bunny) Reset(int64) {
	b.spinner = systems.Spinner{Speed: b.speed}
	b.tick = 0
}

// Resize recentres the sprite.
func (b *Bunny) Resize(width, height float32) {
	b.width, b.height = width, height
	b.x, b.y = systems.Centre(width, height)
}

// Update rotates the sprite by speed*delta.
func (b *Bunny) Update(delta float32) {
	b.perf.StartPhase(systems.SystemSpin)
	b.spinner.Spin(delta)
	b.tick++
}

// Tick returns frames stepped since the last reset.
func (b *Bunny) Tick() int32 { return b.tick }

// Instrument attaches a phase recorder.
func (b *Bunny) Instrument(r PhaseRecorder) {
	if r == nil {
		r = nopRecorder{}
	}
	b.perf = r
}

// Position returns the sprite centre.
func (b *Bunny) Position() (float32, float32) { return b.x, b.y }

// Angle returns the current rotation in radians.
func (b *Bunny) Angle() float32 { return b.spinner.Angle }

package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/systems"
)

// PondName is the registry name of the fish pond scene.
const PondName = "pond"

func init() {
	Register(PondName, func(cfg *config.Config, seed int64) Scene {
		return NewPond(cfg, seed)
	})
}

// Fish is a read-only copy of one fish's components.
type Fish struct {
	Position components.Position
	Rotation components.Rotation
	Motion   components.Motion
	Sprite   components.Sprite
}

// Pond is the fish pond: swimming fish wrapping around a padded viewport
// plus a scrolling water overlay.
type Pond struct {
	world      *ecs.World
	fishMapper *systems.FishMapper
	swimFilter *ecs.Filter3[components.Position, components.Rotation, components.Motion]
	fishFilter *ecs.Filter4[components.Position, components.Rotation, components.Motion, components.Sprite]

	// Spawn order; the ECS world is the display container
	fish []ecs.Entity

	spawner  *systems.FishSpawner
	overlay  systems.TilingOverlay
	variants []string

	fishCount  int
	padding    float32
	turnFactor float32

	width, height float32

	perf      PhaseRecorder
	tick      int32
	lastWraps int
	seed      int64
}

// NewPond creates a pond sized to the configured screen and spawns its fish.
func NewPond(cfg *config.Config, seed int64) *Pond {
	p := &Pond{
		spawner:    systems.NewFishSpawner(cfg.Pond, seed),
		variants:   append([]string(nil), cfg.Pond.Variants...),
		fishCount:  cfg.Pond.FishCount,
		padding:    float32(cfg.Pond.Padding),
		turnFactor: float32(cfg.Pond.TurnFactor),
		width:      float32(cfg.Screen.Width),
		height:     float32(cfg.Screen.Height),
		perf:       nopRecorder{},
	}
	p.Reset(seed)
	return p
}

// Name returns the scene identifier.
func (p *Pond) Name() string { return PondName }

// Reset discards all fish, respawns them inside the current viewport and
// rewinds the overlay.
func (p *Pond) Reset(seed int64) {
	p.seed = seed
	p.world = ecs.NewWorld()
	p.fishMapper = ecs.NewMap4[components.Position, components.Rotation, components.Motion, components.Sprite](p.world)
	p.swimFilter = ecs.NewFilter3[components.Position, components.Rotation, components.Motion](p.world)
	p.fishFilter = ecs.NewFilter4[components.Position, components.Rotation, components.Motion, components.Sprite](p.world)

	p.spawner.Reseed(seed)
	p.fish = p.spawner.Spawn(p.fishMapper, p.fishCount, p.variants, p.width, p.height)

	p.overlay = systems.TilingOverlay{}
	p.tick = 0
	p.lastWraps = 0
}

// Resize changes the viewport. Fish keep their positions; the wrap bounds
// follow from the next frame on.
func (p *Pond) Resize(width, height float32) {
	p.width = width
	p.height = height
}

// Update swims every fish one frame and scrolls the overlay by delta.
// Fish movement is per frame and ignores delta.
func (p *Pond) Update(delta float32) {
	p.perf.StartPhase(systems.SystemSwim)
	p.lastWraps = systems.UpdateFish(p.swimFilter, p.Bounds(), p.turnFactor)

	p.perf.StartPhase(systems.SystemOverlay)
	p.overlay.Scroll(delta)

	p.tick++
}

// Tick returns frames stepped since the last reset.
func (p *Pond) Tick() int32 { return p.tick }

// Instrument attaches a phase recorder.
func (p *Pond) Instrument(r PhaseRecorder) {
	if r == nil {
		r = nopRecorder{}
	}
	p.perf = r
}

// Bounds returns the wrap region for the current viewport.
func (p *Pond) Bounds() systems.Bounds {
	return systems.NewBounds(p.width, p.height, p.padding)
}

// Size returns the current viewport size.
func (p *Pond) Size() (float32, float32) { return p.width, p.height }

// Seed returns the seed of the last reset.
func (p *Pond) Seed() int64 { return p.seed }

// Overlay returns the current tiling offset.
func (p *Pond) Overlay() systems.TilingOverlay { return p.overlay }

// Variants returns the sprite variant names indexed by Sprite.Variant.
func (p *Pond) Variants() []string { return p.variants }

// FishCount returns the number of fish in the pond.
func (p *Pond) FishCount() int { return len(p.fish) }

// LastWraps returns how many fish wrapped during the last Update.
func (p *Pond) LastWraps() int { return p.lastWraps }

// Fish returns a copy of the i-th fish in spawn order.
func (p *Pond) Fish(i int) Fish {
	pos, rot, motion, sprite := p.fishMapper.Get(p.fish[i])
	return Fish{Position: *pos, Rotation: *rot, Motion: *motion, Sprite: *sprite}
}

// EachFish calls fn for every fish in iteration (spawn) order.
func (p *Pond) EachFish(fn func(f Fish)) {
	query := p.fishFilter.Query()
	for query.Next() {
		pos, rot, motion, sprite := query.Get()
		fn(Fish{Position: *pos, Rotation: *rot, Motion: *motion, Sprite: *sprite})
	}
}

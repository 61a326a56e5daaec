package systems

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
)

// FishMapper creates fish entities with all of their components.
type FishMapper = ecs.Map4[components.Position, components.Rotation, components.Motion, components.Sprite]

// FishSpawner creates fish with randomized motion parameters.
type FishSpawner struct {
	cfg config.PondConfig
	rng *rand.Rand
}

// NewFishSpawner returns a spawner drawing from a PCG source seeded with seed.
func NewFishSpawner(cfg config.PondConfig, seed int64) *FishSpawner {
	s := &FishSpawner{cfg: cfg}
	s.Reseed(seed)
	return s
}

// Reseed restarts the random sequence.
func (s *FishSpawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Spawn creates n fish inside a width x height viewport and returns them
// in spawn order. Fish i is drawn with variants[i % len(variants)].
// n and variants are the caller's responsibility; an empty variant list
// with n > 0 panics.
func (s *FishSpawner) Spawn(mapper *FishMapper, n int, variants []string, width, height float32) []ecs.Entity {
	entities := make([]ecs.Entity, 0, n)
	anchor := float32(s.cfg.Anchor)

	for i := 0; i < n; i++ {
		// Motion parameters first, then placement
		heading := uniform(s.rng, s.cfg.Heading)
		speed := uniform(s.rng, s.cfg.Speed)
		turnRate := uniform(s.rng, s.cfg.TurnRate)

		pos := components.Position{
			X: uniform(s.rng, config.Range{Max: float64(width)}),
			Y: uniform(s.rng, config.Range{Max: float64(height)}),
		}
		sprite := components.Sprite{
			Variant: i % len(variants),
			Scale:   uniform(s.rng, s.cfg.Scale),
			AnchorX: anchor,
			AnchorY: anchor,
		}
		rot := components.Rotation{Heading: heading, Angle: SpriteAngle(heading)}
		motion := components.Motion{Speed: speed, TurnRate: turnRate}

		entities = append(entities, mapper.NewEntity(&pos, &rot, &motion, &sprite))
	}
	return entities
}

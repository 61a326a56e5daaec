package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
)

// EffectiveHeading is the transient direction used for one frame of
// movement. It is always derived from the stored heading, so the turn
// rate offsets the direction by a constant instead of accumulating.
func EffectiveHeading(heading, turnRate, turnFactor float32) float32 {
	return heading + turnRate*turnFactor
}

// SpriteAngle converts a stored heading into the sprite's visual rotation.
func SpriteAngle(heading float32) float32 {
	return -heading - math.Pi/2
}

// Swim advances a single fish by one frame. The heading is read, never
// replaced; the visual angle follows the stored heading.
func Swim(pos *components.Position, rot *components.Rotation, m components.Motion, turnFactor float32) {
	dir := float64(EffectiveHeading(rot.Heading, m.TurnRate, turnFactor))
	pos.X += float32(math.Sin(dir)) * m.Speed
	pos.Y += float32(math.Cos(dir)) * m.Speed
	rot.Angle = SpriteAngle(rot.Heading)
}

// UpdateFish runs one frame of swimming for every fish matched by filter
// and wraps them into bounds. Fish share a single archetype and are never
// removed, so iteration follows spawn order. Returns how many fish wrapped.
func UpdateFish(
	filter *ecs.Filter3[components.Position, components.Rotation, components.Motion],
	bounds Bounds,
	turnFactor float32,
) int {
	wraps := 0
	query := filter.Query()
	for query.Next() {
		pos, rot, motion := query.Get()
		Swim(pos, rot, *motion, turnFactor)
		if bounds.Wrap(pos) {
			wraps++
		}
	}
	return wraps
}

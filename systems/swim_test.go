package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
)

func TestSwimHeadingZero(t *testing.T) {
	pos := components.Position{X: 10, Y: 20}
	rot := components.Rotation{Heading: 0}
	Swim(&pos, &rot, components.Motion{Speed: 1, TurnRate: 0}, 0.01)

	// sin(0) = 0, cos(0) = 1: exact
	assert.Equal(t, components.Position{X: 10, Y: 21}, pos)
}

func TestSwimHeadingQuarterTurn(t *testing.T) {
	pos := components.Position{X: 10, Y: 20}
	rot := components.Rotation{Heading: math.Pi / 2}
	Swim(&pos, &rot, components.Motion{Speed: 2, TurnRate: 0}, 0.01)

	assert.InDelta(t, 12, pos.X, 1e-5)
	assert.InDelta(t, 20, pos.Y, 1e-5)
}

func TestSwimSetsAngleFromStoredHeading(t *testing.T) {
	pos := components.Position{}
	rot := components.Rotation{Heading: 1.25}
	Swim(&pos, &rot, components.Motion{Speed: 1, TurnRate: -0.8}, 0.01)

	assert.Equal(t, float32(1.25), rot.Heading, "heading must not be written back")
	assert.InDelta(t, -1.25-math.Pi/2, rot.Angle, 1e-6)
}

func TestSwimTurnRateDoesNotCompound(t *testing.T) {
	pos := components.Position{}
	rot := components.Rotation{Heading: 0.3}
	m := components.Motion{Speed: 1.5, TurnRate: 0.2}

	dir := float64(EffectiveHeading(0.3, 0.2, 0.01))
	wantDX := float32(math.Sin(dir)) * 1.5
	wantDY := float32(math.Cos(dir)) * 1.5

	for i := 0; i < 50; i++ {
		before := pos
		Swim(&pos, &rot, m, 0.01)
		assert.InDelta(t, wantDX, pos.X-before.X, 1e-4, "frame %d", i)
		assert.InDelta(t, wantDY, pos.Y-before.Y, 1e-4, "frame %d", i)
	}
}

func TestEffectiveHeading(t *testing.T) {
	assert.InDelta(t, 1.0-0.008, EffectiveHeading(1, -0.8, 0.01), 1e-6)
	assert.Equal(t, float32(2), EffectiveHeading(2, 0, 0.01))
}

func newFishWorld() (*ecs.World, *FishMapper, *ecs.Filter3[components.Position, components.Rotation, components.Motion]) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap4[components.Position, components.Rotation, components.Motion, components.Sprite](world)
	filter := ecs.NewFilter3[components.Position, components.Rotation, components.Motion](world)
	return world, mapper, filter
}

func TestUpdateFishStaysInBounds(t *testing.T) {
	world, mapper, filter := newFishWorld()
	posMap := ecs.NewMap1[components.Position](world)

	spawner := NewFishSpawner(config.Defaults().Pond, 42)
	fish := spawner.Spawn(mapper, 50, []string{"a", "b"}, 400, 300)
	require.Len(t, fish, 50)

	b := NewBounds(400, 300, 100)
	totalWraps := 0
	for frame := 0; frame < 5000; frame++ {
		totalWraps += UpdateFish(filter, b, 0.01)
		for _, e := range fish {
			p := *posMap.Get(e)
			if !b.Contains(p) {
				t.Fatalf("frame %d: fish %v escaped to %+v", frame, e, p)
			}
		}
	}
	assert.Positive(t, totalWraps, "5000 frames should wrap at least one fish")
}

func TestUpdateFishMatchesSwim(t *testing.T) {
	world, mapper, filter := newFishWorld()
	posMap := ecs.NewMap1[components.Position](world)
	rotMap := ecs.NewMap1[components.Rotation](world)

	pos := components.Position{X: 50, Y: 50}
	rot := components.Rotation{Heading: 0}
	motion := components.Motion{Speed: 1}
	sprite := components.Sprite{Scale: 0.6}
	e := mapper.NewEntity(&pos, &rot, &motion, &sprite)

	wraps := UpdateFish(filter, NewBounds(100, 100, 10), 0.01)
	assert.Zero(t, wraps)
	assert.Equal(t, components.Position{X: 50, Y: 51}, *posMap.Get(e))
	assert.InDelta(t, -math.Pi/2, rotMap.Get(e).Angle, 1e-6)
}

func TestUpdateFishReportsWraps(t *testing.T) {
	world, mapper, filter := newFishWorld()
	posMap := ecs.NewMap1[components.Position](world)

	// Heading 0 moves +Y; start right at the bottom edge
	pos := components.Position{X: 50, Y: 110}
	rot := components.Rotation{}
	motion := components.Motion{Speed: 1}
	sprite := components.Sprite{}
	e := mapper.NewEntity(&pos, &rot, &motion, &sprite)

	wraps := UpdateFish(filter, NewBounds(100, 100, 10), 0.01)
	assert.Equal(t, 1, wraps)
	assert.InDelta(t, 111-120, posMap.Get(e).Y, 1e-5)
}

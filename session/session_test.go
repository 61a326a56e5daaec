package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/telemetry"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(config.Defaults(), opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func stepN(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.StepHeadless()
	}
}

func TestNewUnknownScene(t *testing.T) {
	_, err := New(config.Defaults(), Options{Scene: "lake"})
	assert.ErrorIs(t, err, scene.ErrUnknownScene)
}

func TestInitialSceneUsesSeed(t *testing.T) {
	s := newSession(t, Options{Seed: 42})

	pond, ok := s.Active().(*scene.Pond)
	require.True(t, ok, "pond is the default scene")
	assert.Equal(t, int64(42), pond.Seed())
}

func TestHeadlessStepsUseReferenceDelta(t *testing.T) {
	s := newSession(t, Options{Seed: 1, StepsPerUpdate: 3})

	stepN(s, 10)

	assert.Equal(t, int32(30), s.Tick())
	assert.Equal(t, int32(30), s.Active().Tick())
	assert.Equal(t, float32(1), s.LastDelta())
	// The overlay moves one pixel per reference frame
	o := s.Active().(*scene.Pond).Overlay()
	assert.Equal(t, float32(-30), o.OffsetX)
	assert.Equal(t, float32(-30), o.OffsetY)
}

func TestMaxTicksCapsLastBatch(t *testing.T) {
	s := newSession(t, Options{Seed: 1, StepsPerUpdate: 7, MaxTicks: 20})

	var batches []int
	for !s.Done() {
		batches = append(batches, s.StepHeadless())
	}

	assert.Equal(t, []int{7, 7, 6}, batches)
	assert.Equal(t, int32(20), s.Tick())
	assert.Equal(t, int32(20), s.Active().Tick())

	assert.Zero(t, s.StepHeadless(), "no steps past the limit")
	assert.Equal(t, int32(20), s.Tick())
}

func TestAdvanceWithoutLimit(t *testing.T) {
	s := newSession(t, Options{Seed: 1, StepsPerUpdate: 4})

	assert.Equal(t, 4, s.Advance(0.5))
	assert.False(t, s.Done())
	assert.Equal(t, float32(-2), s.Active().(*scene.Pond).Overlay().OffsetX)
}

func TestSceneSwitchKeepsTickAndWindow(t *testing.T) {
	var windows []telemetry.WindowStats
	s := newSession(t, Options{
		Seed:           5,
		StatsWindowSec: 0.5, // 30 reference frames
		StatsCallback:  func(w telemetry.WindowStats) { windows = append(windows, w) },
	})

	stepN(s, 30)
	require.Len(t, windows, 1)

	require.NoError(t, s.SelectScene(scene.BunnyName))
	assert.Equal(t, int32(0), s.Active().Tick())
	stepN(s, 10)

	require.NoError(t, s.SelectScene(scene.PondName))
	assert.Equal(t, int32(30), s.Active().Tick(), "pond resumes where it stopped")
	stepN(s, 30)

	require.Len(t, windows, 2)
	w := windows[1]
	assert.Equal(t, scene.PondName, w.Scene)
	assert.Equal(t, int32(30), w.WindowStartTick)
	assert.Equal(t, int32(60), w.WindowEndTick)
	assert.InDelta(t, 0.5, w.SimTimeSec, 1e-9)
	assert.Equal(t, int32(70), s.Tick())
}

func TestRespawnSeedsAreReproducible(t *testing.T) {
	respawns := func(seed int64) []int64 {
		s := newSession(t, Options{Seed: seed})
		var seeds []int64
		for i := 0; i < 3; i++ {
			got := s.Respawn()
			assert.Equal(t, got, s.Active().(*scene.Pond).Seed())
			seeds = append(seeds, got)
		}
		return seeds
	}

	a := respawns(42)
	assert.Equal(t, a, respawns(42))
	assert.NotEqual(t, a, respawns(43))
}

func TestRespawnRestartsWindow(t *testing.T) {
	var windows []telemetry.WindowStats
	s := newSession(t, Options{
		Seed:           7,
		StatsWindowSec: 0.5,
		StatsCallback:  func(w telemetry.WindowStats) { windows = append(windows, w) },
	})

	stepN(s, 20)
	s.Respawn()
	assert.Equal(t, int32(0), s.Active().Tick())
	stepN(s, 30)

	require.Len(t, windows, 1)
	assert.Equal(t, int32(0), windows[0].WindowStartTick)
	assert.Equal(t, int32(30), windows[0].WindowEndTick)
}

func TestNewScenesDrawFromSeedStream(t *testing.T) {
	bunnyThenRespawn := func() int64 {
		s := newSession(t, Options{Seed: 9})
		require.NoError(t, s.SelectScene(scene.BunnyName))
		require.NoError(t, s.SelectScene(scene.PondName))
		// Returning to an existing scene takes no seed
		return s.Respawn()
	}
	direct := newSession(t, Options{Seed: 9})
	direct.Respawn()
	second := direct.Respawn()

	assert.Equal(t, second, bunnyThenRespawn(), "creating bunny consumed exactly one seed")
}

func TestNextSceneCycles(t *testing.T) {
	s := newSession(t, Options{Seed: 1})

	require.NoError(t, s.NextScene())
	assert.Equal(t, scene.BunnyName, s.Active().Name())
	require.NoError(t, s.NextScene())
	assert.Equal(t, scene.PondName, s.Active().Name())
}

func TestSelectUnknownSceneKeepsActive(t *testing.T) {
	s := newSession(t, Options{Seed: 1})

	assert.ErrorIs(t, s.SelectScene("lake"), scene.ErrUnknownScene)
	assert.Equal(t, scene.PondName, s.Active().Name())
}

func TestResizeReachesLaterScenes(t *testing.T) {
	s := newSession(t, Options{Seed: 1})

	assert.True(t, s.Resize(800, 600))
	assert.False(t, s.Resize(800, 600))
	w, h := s.Active().(*scene.Pond).Size()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)

	require.NoError(t, s.SelectScene(scene.BunnyName))
	x, y := s.Active().(*scene.Bunny).Position()
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)
}

func TestPerfPhasesFollowActiveScene(t *testing.T) {
	s := newSession(t, Options{Seed: 1})
	stepN(s, 3)

	var ids []string
	for _, ps := range s.Perf().Stats().Phases {
		ids = append(ids, ps.ID)
	}
	assert.Equal(t, []string{systems.SystemSwim, systems.SystemOverlay, systems.SystemTelemetry}, ids)
}

func TestOutputFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	s, err := New(config.Defaults(), Options{Seed: 3, StatsWindowSec: 0.5, OutputDir: dir})
	require.NoError(t, err)

	stepN(s, 90)
	s.Close()

	data, err := os.ReadFile(filepath.Join(dir, telemetry.TelemetryFile))
	require.NoError(t, err)
	var rows []telemetry.WindowStats
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, int32(90), rows[2].WindowEndTick)
	assert.Equal(t, 20, rows[2].FishCount)

	data, err = os.ReadFile(filepath.Join(dir, telemetry.PerfFile))
	require.NoError(t, err)
	var perf []telemetry.PerfRow
	require.NoError(t, gocsv.UnmarshalBytes(data, &perf))
	require.NotEmpty(t, perf)
	assert.Equal(t, telemetry.PhaseFrame, perf[0].Phase)

	_, err = config.Load(filepath.Join(dir, telemetry.ConfigFile))
	assert.NoError(t, err)
}

// Package session owns one run of the demos without any graphics: the
// scenes, the seed stream for respawns, stepping and telemetry. The game
// package drives it from the raylib frame loop; headless runs drive it
// directly.
package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/telemetry"
)

// Options configures a session.
type Options struct {
	Scene          string // initial scene name
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int // scene updates per Advance
	MaxTicks       int // 0 = unlimited
	StatsCallback  func(telemetry.WindowStats)
}

// Session holds the scenes and telemetry of one run.
type Session struct {
	cfg *config.Config

	// Scenes are created on first use and kept across switches
	scenes  map[string]scene.Scene
	names   []string
	active  scene.Scene
	seedRNG *rand.Rand

	registry      *systems.SystemRegistry
	perf          *telemetry.PerfCollector
	collector     *telemetry.Collector
	output        *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	stepsPerUpdate int
	maxTicks       int32
	tick           int32 // scene updates since start, across scenes
	lastDelta      float32

	width, height float32
}

// New creates a session running opts.Scene, seeded with opts.Seed.
func New(cfg *config.Config, opts Options) (*Session, error) {
	if opts.Scene == "" {
		opts.Scene = scene.PondName
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	registry := systems.NewSystemRegistry()
	s := &Session{
		cfg:            cfg,
		scenes:         make(map[string]scene.Scene),
		names:          scene.Names(),
		seedRNG:        rand.New(rand.NewPCG(uint64(opts.Seed), 1)),
		registry:       registry,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow, registry.IDs()),
		collector:      telemetry.NewCollector(statsWindow, cfg.Ticker.ReferenceFPS),
		statsCallback:  opts.StatsCallback,
		logStats:       opts.LogStats,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		maxTicks:       int32(max(opts.MaxTicks, 0)),
		width:          cfg.Derived.ScreenW32,
		height:         cfg.Derived.ScreenH32,
	}

	if err := s.switchScene(opts.Scene, opts.Seed); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("output: %w", err)
	}
	s.output = om
	return s, nil
}

// Step advances the active scene by one update and records it.
func (s *Session) Step(delta float32) {
	s.active.Update(delta)

	s.perf.StartPhase(systems.SystemTelemetry)
	wraps := 0
	if p, ok := s.active.(*scene.Pond); ok {
		wraps = p.LastWraps()
	}
	s.collector.RecordFrame(delta, wraps)
	s.tick++
	s.lastDelta = delta

	s.flushTelemetry()
}

// Advance runs up to StepsPerUpdate steps with delta, stopping early at
// MaxTicks. It returns the number of steps run.
func (s *Session) Advance(delta float32) int {
	n := s.stepsPerUpdate
	if s.maxTicks > 0 {
		n = min(n, int(s.maxTicks-s.tick))
	}
	for i := 0; i < n; i++ {
		s.Step(delta)
	}
	return max(n, 0)
}

// StepHeadless advances by one reference frame per step inside its own
// perf tick.
func (s *Session) StepHeadless() int {
	s.perf.StartTick()
	n := s.Advance(1)
	s.perf.EndTick()
	return n
}

// Done reports whether MaxTicks has been reached.
func (s *Session) Done() bool {
	return s.maxTicks > 0 && s.tick >= s.maxTicks
}

// Tick returns the number of scene updates since start.
func (s *Session) Tick() int32 {
	return s.tick
}

// LastDelta returns the delta of the most recent step.
func (s *Session) LastDelta() float32 {
	return s.lastDelta
}

// Active returns the active scene.
func (s *Session) Active() scene.Scene {
	return s.active
}

// Registry returns the system registry used for perf phases.
func (s *Session) Registry() *systems.SystemRegistry {
	return s.registry
}

// Perf returns the frame phase timer.
func (s *Session) Perf() *telemetry.PerfCollector {
	return s.perf
}

// Close flushes and closes the output files.
func (s *Session) Close() {
	if err := s.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	s.output = nil
}

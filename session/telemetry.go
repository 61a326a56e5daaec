package session

import (
	"log/slog"

	"github.com/pthm-cable/pond/scene"
	"github.com/pthm-cable/pond/telemetry"
)

// flushTelemetry emits a stats window once it has elapsed.
func (s *Session) flushTelemetry() {
	if !s.collector.ShouldFlush() {
		return
	}

	stats := s.collector.Flush(s.active.Tick(), s.sample())
	perfStats := s.perf.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.output.WritePerf(perfStats, stats.Scene, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// sample captures the active scene's state for a stats window.
func (s *Session) sample() telemetry.Sample {
	out := telemetry.Sample{Scene: s.active.Name()}

	switch sc := s.active.(type) {
	case *scene.Pond:
		n := sc.FishCount()
		out.Xs = make([]float64, 0, n)
		out.Ys = make([]float64, 0, n)
		out.Speeds = make([]float64, 0, n)
		sc.EachFish(func(f scene.Fish) {
			out.Xs = append(out.Xs, float64(f.Position.X))
			out.Ys = append(out.Ys, float64(f.Position.Y))
			out.Speeds = append(out.Speeds, float64(f.Motion.Speed))
		})
		o := sc.Overlay()
		out.OverlayX = float64(o.OffsetX)
		out.OverlayY = float64(o.OffsetY)
	case *scene.Bunny:
		out.SpinAngle = float64(sc.Angle())
	}
	return out
}

package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	Scene           string  `csv:"scene"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	FishCount int `csv:"fish"`

	// Edge crossings during window
	Wraps    int     `csv:"wraps"`
	WrapRate float64 `csv:"wrap_rate"` // wraps per second of sim time

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// School position
	MeanX   float64 `csv:"mean_x"`
	MeanY   float64 `csv:"mean_y"`
	SpreadX float64 `csv:"spread_x"`
	SpreadY float64 `csv:"spread_y"`

	// Animated layers
	OverlayX  float64 `csv:"overlay_x"`
	OverlayY  float64 `csv:"overlay_y"`
	SpinAngle float64 `csv:"spin_angle"`
}

// Sample is the scene state captured when a window is flushed.
type Sample struct {
	Scene     string
	Xs, Ys    []float64
	Speeds    []float64
	OverlayX  float64
	OverlayY  float64
	SpinAngle float64
}

// Distribution summarises a set of values.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, sample standard deviation and empirical
// quantiles. Std is 0 for fewer than two values; everything is 0 for none.
func Summarize(values []float64) Distribution {
	var d Distribution
	n := len(values)
	if n == 0 {
		return d
	}
	if n == 1 {
		d.Mean = values[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scene", s.Scene),
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("fish", s.FishCount),
		slog.Int("wraps", s.Wraps),
		slog.Float64("wrap_rate", s.WrapRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("mean_x", s.MeanX),
		slog.Float64("mean_y", s.MeanY),
		slog.Float64("spread_x", s.SpreadX),
		slog.Float64("spread_y", s.SpreadY),
		slog.Float64("overlay_x", s.OverlayX),
		slog.Float64("overlay_y", s.OverlayY),
		slog.Float64("spin_angle", s.SpinAngle),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"scene", s.Scene,
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"fish", s.FishCount,
		"wraps", s.Wraps,
		"speed_mean", s.SpeedMean,
		"overlay_x", s.OverlayX,
		"spin_angle", s.SpinAngle,
	)
}

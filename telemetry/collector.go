package telemetry

// Collector accumulates frames within time windows and produces WindowStats.
// Time is measured in scene deltas, where a delta of 1 is one frame at the
// reference rate.
type Collector struct {
	windowDurationSec float64
	referenceFPS      float64

	// Elapsed time is summed in deltas and converted on read
	totalDelta float64

	// Current window tracking
	windowStartTick int32
	windowDelta     float64
	frames          int
	wraps           int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// referenceFPS: frames per second that a delta of 1 stands for
func NewCollector(windowDurationSec, referenceFPS float64) *Collector {
	if referenceFPS <= 0 {
		referenceFPS = 60
	}
	if windowDurationSec <= 0 {
		windowDurationSec = 1 / referenceFPS
	}
	return &Collector{
		windowDurationSec: windowDurationSec,
		referenceFPS:      referenceFPS,
	}
}

// RecordFrame records one scene update and the fish wrapped during it.
func (c *Collector) RecordFrame(delta float32, wraps int) {
	c.totalDelta += float64(delta)
	c.windowDelta += float64(delta)
	c.frames++
	c.wraps += wraps
}

// ShouldFlush returns true once the current window has covered its duration.
func (c *Collector) ShouldFlush() bool {
	return c.windowDelta >= c.windowDurationSec*c.referenceFPS
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, s Sample) WindowStats {
	speed := Summarize(s.Speeds)
	xs := Summarize(s.Xs)
	ys := Summarize(s.Ys)

	var wrapRate float64
	if c.windowDelta > 0 {
		wrapRate = float64(c.wraps) * c.referenceFPS / c.windowDelta
	}

	stats := WindowStats{
		Scene:           s.Scene,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.SimTimeSec(),

		FishCount: len(s.Speeds),
		Wraps:     c.wraps,
		WrapRate:  wrapRate,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		MeanX:   xs.Mean,
		MeanY:   ys.Mean,
		SpreadX: xs.Std,
		SpreadY: ys.Std,

		OverlayX:  s.OverlayX,
		OverlayY:  s.OverlayY,
		SpinAngle: s.SpinAngle,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowDelta = 0
	c.frames = 0
	c.wraps = 0

	return stats
}

// Reset discards the open window and elapsed time. The next window starts
// at startTick, the tick of the scene now being recorded.
func (c *Collector) Reset(startTick int32) {
	c.totalDelta = 0
	c.windowStartTick = startTick
	c.windowDelta = 0
	c.frames = 0
	c.wraps = 0
}

// SimTimeSec returns the accumulated simulation time in seconds.
func (c *Collector) SimTimeSec() float64 {
	return c.totalDelta / c.referenceFPS
}

// WindowFrames returns the number of frames recorded in the current window.
func (c *Collector) WindowFrames() int {
	return c.frames
}

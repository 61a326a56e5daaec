package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	d := Summarize(values)

	if math.Abs(d.Mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", d.Mean)
	}
	// Sample std of 1..10
	if math.Abs(d.Std-3.02765) > 1e-4 {
		t.Errorf("std = %v, want ~3.02765", d.Std)
	}
	if !(d.P10 <= d.P50 && d.P50 <= d.P90) {
		t.Errorf("quantiles out of order: p10=%v p50=%v p90=%v", d.P10, d.P50, d.P90)
	}
	if d.P50 < 5 || d.P50 > 6 {
		t.Errorf("p50 = %v, want within [5, 6]", d.P50)
	}
	if d.P10 < 1 || d.P90 > 10 {
		t.Errorf("quantiles outside data: p10=%v p90=%v", d.P10, d.P90)
	}

	// Input must not be reordered
	if values[0] != 10 {
		t.Error("Summarize sorted its input in place")
	}
}

func TestSummarizeSmall(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{4}, Distribution{Mean: 4, P10: 4, P50: 4, P90: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0, 60)

	for i := 0; i < 59; i++ {
		c.RecordFrame(1, 0)
	}
	if c.ShouldFlush() {
		t.Fatal("flushed before a full second of deltas")
	}
	c.RecordFrame(1, 3)
	if !c.ShouldFlush() {
		t.Fatal("expected flush after 60 frames at delta 1")
	}

	stats := c.Flush(60, Sample{
		Scene:    "pond",
		Xs:       []float64{0, 10},
		Ys:       []float64{5, 5},
		Speeds:   []float64{1, 2},
		OverlayX: -60,
		OverlayY: -60,
	})

	if stats.Wraps != 3 {
		t.Errorf("wraps = %d, want 3", stats.Wraps)
	}
	if math.Abs(stats.WrapRate-3) > 1e-9 {
		t.Errorf("wrap rate = %v, want 3/s", stats.WrapRate)
	}
	if math.Abs(stats.SimTimeSec-1) > 1e-9 {
		t.Errorf("sim time = %v, want 1", stats.SimTimeSec)
	}
	if stats.FishCount != 2 {
		t.Errorf("fish = %d, want 2", stats.FishCount)
	}
	if stats.MeanX != 5 || stats.MeanY != 5 || stats.SpreadY != 0 {
		t.Errorf("unexpected position stats: %+v", stats)
	}
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]", stats.WindowStartTick, stats.WindowEndTick)
	}

	// Counters reset, sim time keeps running
	if c.ShouldFlush() || c.WindowFrames() != 0 {
		t.Error("window not reset after flush")
	}
	c.RecordFrame(2, 0)
	next := c.Flush(61, Sample{})
	if next.Wraps != 0 || next.WindowStartTick != 60 {
		t.Errorf("second window = %+v", next)
	}
	if math.Abs(c.SimTimeSec()-(1+2.0/60)) > 1e-9 {
		t.Errorf("sim time = %v", c.SimTimeSec())
	}
}

func TestCollectorLargeDeltas(t *testing.T) {
	c := NewCollector(0.5, 60)
	// Ten frames at delta 3 cover half a second
	for i := 0; i < 10; i++ {
		c.RecordFrame(3, 0)
	}
	if !c.ShouldFlush() {
		t.Error("expected flush after 30 reference frames")
	}

	c.Reset(0)
	if c.ShouldFlush() || c.SimTimeSec() != 0 {
		t.Error("Reset should clear the window and sim time")
	}
}

func TestCollectorResetKeepsSceneTick(t *testing.T) {
	c := NewCollector(1.0, 60)
	for i := 0; i < 30; i++ {
		c.RecordFrame(1, 0)
	}

	// Switching to a scene that is already 600 ticks in
	c.Reset(600)
	for i := 0; i < 60; i++ {
		c.RecordFrame(1, 0)
	}
	if !c.ShouldFlush() {
		t.Fatal("expected flush after 60 reference frames")
	}

	stats := c.Flush(660, Sample{Scene: "pond"})
	if stats.WindowStartTick != 600 || stats.WindowEndTick != 660 {
		t.Errorf("window = [%d, %d], want [600, 660]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.SimTimeSec != 1 {
		t.Errorf("SimTimeSec = %f, want 1 (frames before Reset dropped)", stats.SimTimeSec)
	}
}

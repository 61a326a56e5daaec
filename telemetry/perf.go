package telemetry

import (
	"log/slog"
	"math"
	"time"
)

// PhaseFrame labels the whole-frame row in perf output.
const PhaseFrame = "frame"

// frameTiming is one frame's measurements. Phase slots are indexed like
// PerfCollector.phases.
type frameTiming struct {
	total time.Duration
	spent []time.Duration
	ran   []bool
}

// PerfCollector times the phases of each frame over a rolling window.
// Phases are the system IDs handed to NewPerfCollector; a phase started
// under any other name is appended after them.
type PerfCollector struct {
	phases []string
	slot   map[string]int

	frames []frameTiming
	next   int
	filled int

	open       frameTiming
	current    int // running phase slot, -1 between phases
	frameStart time.Time
	phaseStart time.Time

	// Presentation timing, graphical mode only
	lastPresent time.Time
	presentGap  time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
// phases fixes the reporting order, normally SystemRegistry.IDs().
func NewPerfCollector(windowSize int, phases []string) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	p := &PerfCollector{
		slot:    make(map[string]int, len(phases)),
		frames:  make([]frameTiming, windowSize),
		current: -1,
	}
	for _, id := range phases {
		p.slotFor(id)
	}
	return p
}

func (p *PerfCollector) slotFor(id string) int {
	if i, ok := p.slot[id]; ok {
		return i
	}
	i := len(p.phases)
	p.slot[id] = i
	p.phases = append(p.phases, id)
	p.open.spent = append(p.open.spent, 0)
	p.open.ran = append(p.open.ran, false)
	return i
}

// Phases returns the known phase IDs in reporting order.
func (p *PerfCollector) Phases() []string {
	return append([]string(nil), p.phases...)
}

// StartTick begins timing a new frame.
func (p *PerfCollector) StartTick() {
	p.frameStart = time.Now()
	p.current = -1
	clear(p.open.spent)
	clear(p.open.ran)
}

// StartPhase closes the running phase and starts timing id.
func (p *PerfCollector) StartPhase(id string) {
	now := time.Now()
	p.closePhase(now)
	p.current = p.slotFor(id)
	p.open.ran[p.current] = true
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.current >= 0 {
		p.open.spent[p.current] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the frame and stores it in the window. Without a
// matching StartTick it does nothing.
func (p *PerfCollector) EndTick() {
	if p.frameStart.IsZero() {
		return
	}
	now := time.Now()
	p.closePhase(now)
	p.current = -1

	f := &p.frames[p.next]
	f.total = now.Sub(p.frameStart)
	f.spent = append(f.spent[:0], p.open.spent...)
	f.ran = append(f.ran[:0], p.open.ran...)
	p.frameStart = time.Time{}

	p.next = (p.next + 1) % len(p.frames)
	if p.filled < len(p.frames) {
		p.filled++
	}
}

// RecordFrame marks a presented frame; the gap between two calls gives FPS.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PhaseStat is one phase's average cost over the window.
type PhaseStat struct {
	ID  string
	Avg time.Duration
	Pct float64 // of the average frame
}

// PerfStats summarizes the window. Phases lists only phases that ran,
// in collector order.
type PerfStats struct {
	Frames   int
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	FramesPerSec float64 // throughput implied by AvgFrame
	FPS          float64 // presentation rate, 0 when headless

	Phases []PhaseStat
}

// Stats aggregates the frames currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.presentGap > 0 {
		s.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.filled == 0 {
		return s
	}

	sums := make([]time.Duration, len(p.phases))
	ran := make([]bool, len(p.phases))
	var total time.Duration
	for i, f := range p.frames[:p.filled] {
		total += f.total
		if i == 0 || f.total < s.MinFrame {
			s.MinFrame = f.total
		}
		s.MaxFrame = max(s.MaxFrame, f.total)
		for j := range f.spent {
			sums[j] += f.spent[j]
			ran[j] = ran[j] || f.ran[j]
		}
	}

	n := time.Duration(p.filled)
	s.Frames = p.filled
	s.AvgFrame = total / n
	if s.AvgFrame > 0 {
		s.FramesPerSec = float64(time.Second) / float64(s.AvgFrame)
	}
	for j, id := range p.phases {
		if !ran[j] {
			continue
		}
		ps := PhaseStat{ID: id, Avg: sums[j] / n}
		if total > 0 {
			ps.Pct = float64(sums[j]) / float64(total) * 100
		}
		s.Phases = append(s.Phases, ps)
	}
	return s
}

// Phase looks up one phase by ID.
func (s PerfStats) Phase(id string) (PhaseStat, bool) {
	for _, ps := range s.Phases {
		if ps.ID == id {
			return ps, true
		}
	}
	return PhaseStat{}, false
}

// LogStats logs the window at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int("frames_per_sec", int(s.FramesPerSec)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, ps := range s.Phases {
		attrs = append(attrs, slog.Float64(ps.ID+"_pct", math.Round(ps.Pct*10)/10))
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one line of perf.csv: the frame total or a single phase.
type PerfRow struct {
	Scene     string  `csv:"scene"`
	WindowEnd int32   `csv:"window_end"`
	Phase     string  `csv:"phase"`
	AvgUS     int64   `csv:"avg_us"`
	Pct       float64 `csv:"pct"`
	FPS       float64 `csv:"fps"`
}

// Rows flattens the stats into a frame row followed by one row per phase.
func (s PerfStats) Rows(scene string, windowEnd int32) []PerfRow {
	rows := make([]PerfRow, 0, len(s.Phases)+1)
	rows = append(rows, PerfRow{
		Scene:     scene,
		WindowEnd: windowEnd,
		Phase:     PhaseFrame,
		AvgUS:     s.AvgFrame.Microseconds(),
		Pct:       100,
		FPS:       s.FPS,
	})
	for _, ps := range s.Phases {
		rows = append(rows, PerfRow{
			Scene:     scene,
			WindowEnd: windowEnd,
			Phase:     ps.ID,
			AvgUS:     ps.Avg.Microseconds(),
			Pct:       ps.Pct,
		})
	}
	return rows
}

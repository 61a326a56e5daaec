package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/pond/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// All methods are nil-safe
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, "pond", 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report an empty dir")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := int32(1); i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{Scene: "pond", WindowEndTick: i * 300, FishCount: 20, Wraps: int(i)}); err != nil {
			t.Fatal(err)
		}
	}
	perf := PerfStats{
		Frames:   60,
		AvgFrame: 2 * time.Millisecond,
		Phases: []PhaseStat{
			{ID: "swim", Avg: 1500 * time.Microsecond, Pct: 75},
			{ID: "overlay", Avg: 500 * time.Microsecond, Pct: 25},
		},
	}
	if err := om.WritePerf(perf, "pond", 60); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(PerfStats{AvgFrame: time.Millisecond, Phases: []PhaseStat{{ID: "spin", Pct: 10}}}, "bunny", 120); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, TelemetryFile))
	if err != nil {
		t.Fatal(err)
	}
	var rows []WindowStats
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d telemetry rows, want 3 (single header)", len(rows))
	}
	if rows[2].WindowEndTick != 900 || rows[2].Wraps != 3 || rows[2].Scene != "pond" {
		t.Errorf("last row = %+v", rows[2])
	}

	data, err = os.ReadFile(filepath.Join(dir, PerfFile))
	if err != nil {
		t.Fatal(err)
	}
	var perfRows []PerfRow
	if err := gocsv.UnmarshalBytes(data, &perfRows); err != nil {
		t.Fatal(err)
	}
	want := []PerfRow{
		{Scene: "pond", WindowEnd: 60, Phase: PhaseFrame, AvgUS: 2000, Pct: 100},
		{Scene: "pond", WindowEnd: 60, Phase: "swim", AvgUS: 1500, Pct: 75},
		{Scene: "pond", WindowEnd: 60, Phase: "overlay", AvgUS: 500, Pct: 25},
		{Scene: "bunny", WindowEnd: 120, Phase: PhaseFrame, AvgUS: 1000, Pct: 100},
		{Scene: "bunny", WindowEnd: 120, Phase: "spin", Pct: 10},
	}
	if len(perfRows) != len(want) {
		t.Fatalf("got %d perf rows, want %d (single header): %+v", len(perfRows), len(want), perfRows)
	}
	for i := range want {
		if perfRows[i] != want[i] {
			t.Errorf("perf row %d = %+v, want %+v", i, perfRows[i], want[i])
		}
	}

	if _, err := config.Load(filepath.Join(dir, ConfigFile)); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}
}

package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/pond/config"
)

// Output file names inside the run directory.
const (
	TelemetryFile = "telemetry.csv"
	PerfFile      = "perf.csv"
	ConfigFile    = "config.yaml"
)

// csvLog appends records of one type to a CSV file, writing the header
// with the first batch only.
type csvLog[T any] struct {
	name   string
	file   *os.File
	header bool
}

func createCSVLog[T any](dir, name string) (*csvLog[T], error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvLog[T]{name: name, file: f}, nil
}

func (l *csvLog[T]) append(rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	marshal := gocsv.MarshalWithoutHeaders
	if !l.header {
		marshal = gocsv.Marshal
	}
	if err := marshal(rows, l.file); err != nil {
		return fmt.Errorf("writing %s: %w", l.name, err)
	}
	l.header = true
	return nil
}

func (l *csvLog[T]) close() error {
	if l == nil {
		return nil
	}
	return l.file.Close()
}

// OutputManager writes a run's stats windows, perf windows and config
// snapshot into one directory. A nil manager discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvLog[WindowStats]
	perf      *csvLog[PerfRow]
}

// NewOutputManager creates dir and its CSV files. Returns nil if dir is
// empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.telemetry, err = createCSVLog[WindowStats](dir, TelemetryFile); err != nil {
		return nil, err
	}
	if om.perf, err = createCSVLog[PerfRow](dir, PerfFile); err != nil {
		om.telemetry.close()
		return nil, err
	}
	return om, nil
}

// WriteConfig saves the configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, ConfigFile))
}

// WriteTelemetry appends one stats window.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.append([]WindowStats{stats})
}

// WritePerf appends the perf rows for the window ending at windowEnd.
func (om *OutputManager) WritePerf(stats PerfStats, scene string, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.append(stats.Rows(scene, windowEnd))
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes both CSV files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.telemetry.close(), om.perf.close())
}

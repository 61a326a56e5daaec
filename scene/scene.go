// Package scene holds the demo scenes as explicit state objects.
//
// A scene never schedules itself: the host owns the frame loop and calls
// Update once per rendered frame with the elapsed delta. Every scene
// instance is independent, so several can coexist (tests rely on this).
package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pthm-cable/pond/config"
)

// ErrUnknownScene is returned by New for unregistered names.
var ErrUnknownScene = errors.New("unknown scene")

// PhaseRecorder receives phase boundaries for perf tracking.
// telemetry.PerfCollector satisfies it.
type PhaseRecorder interface {
	StartPhase(phase string)
}

// Scene is the contract between the host loop and a demo.
type Scene interface {
	Name() string
	// Reset rebuilds the scene from seed.
	Reset(seed int64)
	// Resize updates the viewport used for layout and wrapping.
	Resize(width, height float32)
	// Update advances one frame. delta is in reference frames
	// (1.0 == one frame at the reference rate).
	Update(delta float32)
	// Tick returns the number of frames stepped since the last reset.
	Tick() int32
	// Instrument attaches a phase recorder; nil detaches.
	Instrument(r PhaseRecorder)
}

// Factory constructs a scene from configuration and a seed.
type Factory func(cfg *config.Config, seed int64) Scene

var factories = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named scene.
func New(name string, cfg *config.Config, seed int64) (Scene, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return f(cfg, seed), nil
}

type nopRecorder struct{}

func (nopRecorder) StartPhase(string) {}

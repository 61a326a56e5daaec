package session

import (
	"log/slog"

	"github.com/pthm-cable/pond/scene"
)

// switchScene makes name the active scene, creating it from seed on first
// use. Existing scenes keep their state, tick included.
func (s *Session) switchScene(name string, seed int64) error {
	sc, ok := s.scenes[name]
	if !ok {
		var err error
		sc, err = scene.New(name, s.cfg, seed)
		if err != nil {
			return err
		}
		sc.Resize(s.width, s.height)
		s.scenes[name] = sc
	}

	if s.active != nil {
		s.active.Instrument(nil)
	}
	sc.Instrument(s.perf)
	s.active = sc
	s.collector.Reset(sc.Tick())

	slog.Info("scene active", "scene", name, "tick", sc.Tick(), "created", !ok)
	return nil
}

// SelectScene switches to name. New scenes take the next seed from the
// session's seed stream. Selecting the active scene does nothing.
func (s *Session) SelectScene(name string) error {
	if s.active.Name() == name {
		return nil
	}
	if _, ok := s.scenes[name]; ok {
		return s.switchScene(name, 0)
	}
	return s.switchScene(name, s.seedRNG.Int64())
}

// NextScene cycles through the registered scenes in name order.
func (s *Session) NextScene() error {
	if len(s.names) < 2 {
		return nil
	}
	cur := 0
	for i, n := range s.names {
		if n == s.active.Name() {
			cur = i
			break
		}
	}
	return s.SelectScene(s.names[(cur+1)%len(s.names)])
}

// Respawn resets the active scene with the next seed and returns it.
func (s *Session) Respawn() int64 {
	seed := s.seedRNG.Int64()
	s.active.Reset(seed)
	s.collector.Reset(s.active.Tick())
	slog.Info("respawn", "scene", s.active.Name(), "seed", seed)
	return seed
}

// Resize propagates a new viewport to every scene. It reports whether
// the size changed.
func (s *Session) Resize(w, h float32) bool {
	if w == s.width && h == s.height {
		return false
	}
	s.width = w
	s.height = h
	for _, sc := range s.scenes {
		sc.Resize(w, h)
	}
	slog.Debug("resize", "width", w, "height", h)
	return true
}

package systems

// System IDs used for perf tracking and display.
const (
	SystemSwim      = "swim"
	SystemOverlay   = "overlay"
	SystemSpin      = "spin"
	SystemRender    = "render"
	SystemTelemetry = "telemetry"
)

// SystemInfo describes a per-frame system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Scene       string // Scene that runs it ("" = host)
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.Register(SystemInfo{ID: SystemSwim, Name: "Swim", Description: "Moves and wraps fish", Scene: "pond"})
	reg.Register(SystemInfo{ID: SystemOverlay, Name: "Overlay", Description: "Scrolls the water overlay", Scene: "pond"})
	reg.Register(SystemInfo{ID: SystemSpin, Name: "Spin", Description: "Rotates the bunny", Scene: "bunny"})
	reg.Register(SystemInfo{ID: SystemRender, Name: "Render", Description: "Draws the active scene"})
	reg.Register(SystemInfo{ID: SystemTelemetry, Name: "Telemetry", Description: "Records and flushes stats windows"})
	return reg
}

// Register adds a system to the registry. Re-registering an ID replaces it.
func (r *SystemRegistry) Register(info SystemInfo) {
	if _, ok := r.byID[info.ID]; ok {
		for i := range r.systems {
			if r.systems[i].ID == info.ID {
				r.systems[i] = info
			}
		}
	} else {
		r.systems = append(r.systems, info)
	}
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// ForScene returns the systems a scene runs plus host systems, in
// registration order.
func (r *SystemRegistry) ForScene(scene string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Scene == scene || info.Scene == "" {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}

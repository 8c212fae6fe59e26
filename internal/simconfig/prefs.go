package simconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the prefs file, relative to the working directory.
const PrefsPath = "config/sim.json"

// Prefs are display preferences, persisted across runs. They only affect what
// is drawn, never the simulation itself.
type Prefs struct {
	ShowFPS      bool  `json:"show_fps"`
	ShowMemAlloc bool  `json:"show_memalloc"`
	ShowBounds   bool  `json:"show_bounds"`
	TargetFPS    int32 `json:"target_fps,omitempty"`
}

// DefaultPrefs shows the FPS counter and the AABB overlay; rendering is
// uncapped so the fixed timestep is visibly doing its job.
func DefaultPrefs() Prefs {
	return Prefs{
		ShowFPS:    true,
		ShowBounds: true,
	}
}

// LoadPrefs reads prefs from PrefsPath. A missing or invalid file yields
// DefaultPrefs and does not create a file.
func LoadPrefs() Prefs {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return DefaultPrefs()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	return p
}

// SavePrefs writes prefs to PrefsPath, creating the config directory if
// needed.
func SavePrefs(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}

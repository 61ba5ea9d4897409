package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/pixeldrift/cartdash/components"
)

// SavedSettings represents the settings data stored on disk. Run state is
// never persisted, only the audio toggles.
type SavedSettings struct {
	MusicEnabled bool `json:"musicEnabled"`
	SoundEnabled bool `json:"soundEnabled"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cartdash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing was
// saved yet; callers keep the defaults in that case.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings writes the session's audio toggles to disk
func SaveSettings(session *components.SessionData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	saved := SavedSettings{
		MusicEnabled: session.MusicEnabled,
		SoundEnabled: session.SoundEnabled,
	}
	data, err := json.Marshal(saved)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

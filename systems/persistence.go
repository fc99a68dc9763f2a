package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/highland/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	DebugOverlay     bool    `json:"debugOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "highland",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means
// no settings have been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes the current settings to disk
func SaveSettings(settings *components.SettingsData) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	saved := SavedSettings{
		MouseSensitivity: settings.MouseSensitivity,
		InvertY:          settings.InvertY,
		DebugOverlay:     settings.DebugOverlay,
	}
	data, err := json.Marshal(&saved)
	if err != nil {
		log.Printf("Warning: Could not encode settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

package systems

import (
	"github.com/automoto/highland/components"
	cfg "github.com/automoto/highland/config"
	"github.com/automoto/highland/terrain"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the settings hotkeys: F3 debug overlay, F4 invert-Y,
// -/= mouse sensitivity. Changes are saved immediately.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.DebugOverlay = !settings.DebugOverlay
		changed = true
	}
	if GetAction(input, cfg.ActionInvertY).JustPressed {
		settings.InvertY = !settings.InvertY
		changed = true
	}
	if GetAction(input, cfg.ActionSensitivityDown).JustPressed {
		settings.MouseSensitivity = terrain.Clamp(
			settings.MouseSensitivity-cfg.Camera.SensitivityStep,
			cfg.Camera.MinSensitivity, cfg.Camera.MaxSensitivity)
		changed = true
	}
	if GetAction(input, cfg.ActionSensitivityUp).JustPressed {
		settings.MouseSensitivity = terrain.Clamp(
			settings.MouseSensitivity+cfg.Camera.SensitivityStep,
			cfg.Camera.MinSensitivity, cfg.Camera.MaxSensitivity)
		changed = true
	}

	if changed {
		SaveSettings(settings)
	}
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		*components.Settings.Get(entry) = components.SettingsData{
			MouseSensitivity: cfg.Camera.MouseSensitivity,
			InvertY:          cfg.Camera.InvertY,
			DebugOverlay:     cfg.Debug.Overlay,
		}
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted values onto the settings singleton.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	if saved.MouseSensitivity > 0 {
		settings.MouseSensitivity = terrain.Clamp(saved.MouseSensitivity,
			cfg.Camera.MinSensitivity, cfg.Camera.MaxSensitivity)
	}
	settings.InvertY = saved.InvertY
	settings.DebugOverlay = saved.DebugOverlay
}

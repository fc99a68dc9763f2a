package components

import "github.com/yohamta/donburi"

// SettingsData holds the user-adjustable options. Persisted across runs;
// session kinematics never are.
type SettingsData struct {
	MouseSensitivity float64
	InvertY          bool
	DebugOverlay     bool
}

var Settings = donburi.NewComponentType[SettingsData]()

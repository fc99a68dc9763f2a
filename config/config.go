package config

import "image/color"

// CameraConfig contains mouse-look behavior configuration
type CameraConfig struct {
	MouseSensitivity float64 // radians per pixel of cursor travel
	MinSensitivity   float64
	MaxSensitivity   float64
	SensitivityStep  float64 // per hotkey press
	PitchLimit       float64 // radians, keeps the look direction off the poles
	InvertY          bool
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	// Stamina bar
	BarWidth  float64
	BarHeight float64
	BarMargin float64
	BarBg     color.RGBA
	BarFg     color.RGBA
	BarLow    color.RGBA
	LowFrac   float64 // below this fraction the bar switches to BarLow

	// Capture prompt pulse (alpha range and period in seconds)
	PromptMinAlpha float32
	PromptMaxAlpha float32
	PromptPeriod   float32
}

// RenderConfig contains the minimal scene presentation values
type RenderConfig struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Ground    color.RGBA
	Ridge     color.RGBA
	RidgeFar  color.RGBA

	// Distances ahead of the camera at which the terrain silhouette is
	// sampled, near to far.
	RidgeDistances []float64
	PixelsPerUnit  float64 // vertical scale when projecting ridge heights
	HorizonScale   float64 // screen pixels of horizon shift per radian of pitch
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay bool // show kinematics overlay (F3)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var UI UIConfig
var Render RenderConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Highland",
	}

	Camera = CameraConfig{
		MouseSensitivity: 0.0024,
		MinSensitivity:   0.0006,
		MaxSensitivity:   0.008,
		SensitivityStep:  0.0003,
		PitchLimit:       1.55, // just short of straight up/down
		InvertY:          false,
	}

	UI = UIConfig{
		BarWidth:  160,
		BarHeight: 12,
		BarMargin: 12,
		BarBg:     color.RGBA{40, 40, 40, 255},
		BarFg:     color.RGBA{240, 210, 60, 255},
		BarLow:    color.RGBA{220, 60, 40, 255},
		LowFrac:   0.2,

		PromptMinAlpha: 0.35,
		PromptMaxAlpha: 0.95,
		PromptPeriod:   1.2,
	}

	Render = RenderConfig{
		SkyTop:    color.RGBA{98, 148, 214, 255},
		SkyBottom: color.RGBA{178, 204, 234, 255},
		Ground:    color.RGBA{76, 110, 62, 255},
		Ridge:     color.RGBA{60, 92, 56, 255},
		RidgeFar:  color.RGBA{110, 134, 150, 255},

		RidgeDistances: []float64{18, 45, 90},
		PixelsPerUnit:  7.0,
		HorizonScale:   320.0,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}

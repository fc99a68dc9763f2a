package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds presentation state for the heads-up display.
type HUDData struct {
	// Pulse drives the "click to look around" prompt alpha while the view is
	// not captured.
	Pulse       *gween.Sequence
	PromptAlpha float32
}

var HUD = donburi.NewComponentType[HUDData]()

package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionRun
	ActionJump
	ActionCrouch
	ActionRelease
	ActionDebug
	ActionInvertY
	ActionSensitivityDown
	ActionSensitivityUp
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionForward:  {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionBackward: {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionLeft:     {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionRight:    {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionRun:      {Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
			ActionJump:     {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionCrouch:   {Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC}},

			ActionRelease:         {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionDebug:           {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionInvertY:         {Keys: []ebiten.Key{ebiten.KeyF4}},
			ActionSensitivityDown: {Keys: []ebiten.Key{ebiten.KeyMinus}},
			ActionSensitivityUp:   {Keys: []ebiten.Key{ebiten.KeyEqual}},
		},
	}
}

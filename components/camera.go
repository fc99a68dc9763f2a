package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the view transform. The look system owns Yaw/Pitch and
// derives Orientation from them; the movement system writes Position after
// each step.
type CameraData struct {
	Position    mgl64.Vec3
	Yaw         float64 // radians, around world up
	Pitch       float64 // radians, clamped off the poles
	Orientation mgl64.Quat

	// Last cursor sample, for computing mouse deltas. Invalid right after
	// capture engages so the first captured frame doesn't read a spurious
	// jump.
	CursorX     int
	CursorY     int
	CursorValid bool
}

var Camera = donburi.NewComponentType[CameraData]()

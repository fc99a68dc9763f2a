package systems

import (
	cfg "github.com/automoto/highland/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var worldUp = mgl64.Vec3{0, 1, 0}
var worldRight = mgl64.Vec3{1, 0, 0}

// UpdateLook turns captured-cursor travel into yaw/pitch and recomputes the
// camera orientation quaternion. Only active while the view is captured.
func UpdateLook(ecs *ecs.ECS) {
	capture := GetOrCreateCapture(ecs)
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	if !capture.Engaged {
		camera.CursorValid = false
		return
	}

	settings := GetOrCreateSettings(ecs)
	cx, cy := ebiten.CursorPosition()
	if camera.CursorValid {
		dx := float64(cx - camera.CursorX)
		dy := float64(cy - camera.CursorY)
		if settings.InvertY {
			dy = -dy
		}
		camera.Yaw -= dx * settings.MouseSensitivity
		camera.Pitch -= dy * settings.MouseSensitivity
		camera.Pitch = clampPitch(camera.Pitch)
	}
	camera.CursorX = cx
	camera.CursorY = cy
	camera.CursorValid = true

	// Yaw about world up, then pitch about the local right axis.
	camera.Orientation = mgl64.QuatRotate(camera.Yaw, worldUp).
		Mul(mgl64.QuatRotate(camera.Pitch, worldRight))
}

func clampPitch(p float64) float64 {
	limit := cfg.Camera.PitchLimit
	if p > limit {
		return limit
	}
	if p < -limit {
		return -limit
	}
	return p
}

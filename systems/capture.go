package systems

import (
	"github.com/automoto/highland/components"
	cfg "github.com/automoto/highland/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCapture runs the view capture boundary. A mouse click engages
// pointer capture, Escape disengages it. While disengaged the simulation is
// paused; re-engaging resumes from the exact last state.
func UpdateCapture(ecs *ecs.ECS) {
	capture := GetOrCreateCapture(ecs)
	input := getOrCreateInput(ecs)

	capture.JustEngaged = false
	capture.JustDisengaged = false

	if capture.Engaged {
		if GetAction(input, cfg.ActionRelease).JustPressed {
			disengage(ecs, capture)
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		engage(ecs, capture)
	}
}

func engage(ecs *ecs.ECS, capture *components.CaptureData) {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	capture.Engaged = true
	capture.JustEngaged = true

	// Drop the stale cursor sample so the first captured frame doesn't turn
	// the engage click's travel into a look jump.
	if camera, ok := getCamera(ecs); ok {
		camera.CursorValid = false
	}
}

func disengage(ecs *ecs.ECS, capture *components.CaptureData) {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	capture.Engaged = false
	capture.JustDisengaged = true
}

func GetOrCreateCapture(ecs *ecs.ECS) *components.CaptureData {
	entry, ok := components.Capture.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Capture))
	}
	return components.Capture.Get(entry)
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

package systems

import (
	"github.com/automoto/highland/components"
	cfg "github.com/automoto/highland/config"
	"github.com/automoto/highland/motion"
	"github.com/automoto/highland/tags"
	"github.com/automoto/highland/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// walker steps the avatar against the procedural height field.
var walker = &motion.Controller{
	Height:   terrain.Height,
	HalfSize: terrain.ArenaHalfSize,
}

// UpdateMovement advances the avatar's kinematics by one frame, then
// synchronizes the camera position and publishes the metrics snapshot.
// While the view is not captured the whole update is skipped and the
// kinematic state stays untouched; the snapshot still reflects the lock
// state so the HUD can show it.
func UpdateMovement(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.Kinematics.Get(playerEntry)

	capture := GetOrCreateCapture(e)
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	if capture.Engaged {
		clock := getOrCreateClock(e)
		input := getOrCreateInput(e)
		walker.Step(state, snapshotInput(input), camera.Orientation, clock.Delta)
		camera.Position = state.Position
	}

	publishMetrics(e, state, capture.Engaged)
}

// snapshotInput projects the buffered action states onto the seven control
// flags the controller consumes.
func snapshotInput(input *components.InputData) motion.Input {
	return motion.Input{
		Forward:  input.Current[cfg.ActionForward],
		Backward: input.Current[cfg.ActionBackward],
		Left:     input.Current[cfg.ActionLeft],
		Right:    input.Current[cfg.ActionRight],
		Run:      input.Current[cfg.ActionRun],
		Jump:     input.Current[cfg.ActionJump],
		Crouch:   input.Current[cfg.ActionCrouch],
	}
}

// publishMetrics overwrites the snapshot wholesale; the HUD only ever sees a
// complete frame.
func publishMetrics(e *ecs.ECS, state *motion.State, locked bool) {
	metrics := GetOrCreateMetrics(e)
	*metrics = components.MetricsData{
		Speed:    state.Speed(),
		Altitude: walker.Altitude(state),
		Stamina:  state.Stamina,
		Locked:   locked,
	}
}

func GetOrCreateMetrics(e *ecs.ECS) *components.MetricsData {
	entry, ok := components.Metrics.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Metrics))
	}
	return components.Metrics.Get(entry)
}

// SpawnPlayer creates the avatar entity standing at the fixed spawn
// coordinate, resolved against the terrain height.
func SpawnPlayer(e *ecs.ECS) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(tags.Player, components.Kinematics))
	state := walker.Spawn(terrain.SpawnX, terrain.SpawnZ)
	*components.Kinematics.Get(entry) = state
	return entry
}

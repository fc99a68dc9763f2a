package systems

import (
	"testing"
	"time"

	"github.com/automoto/highland/components"
	cfg "github.com/automoto/highland/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SpawnPlayer(e)
	camEntry := e.World.Entry(e.World.Create(components.Camera))
	components.Camera.Get(camEntry).Orientation = mgl64.QuatIdent()
	clock := getOrCreateClock(e)
	clock.Last = time.Now()
	clock.Delta = 0.016
	return e
}

func TestMovementSkippedWhileDisengaged(t *testing.T) {
	e := newTestECS(t)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionForward] = true

	playerEntry, _ := components.Kinematics.First(e.World)
	before := *components.Kinematics.Get(playerEntry)

	// Capture defaults to disengaged; the update must be a pure pause.
	UpdateMovement(e)

	after := *components.Kinematics.Get(playerEntry)
	if after != before {
		t.Fatalf("disengaged update mutated kinematics:\n%+v\n%+v", before, after)
	}

	metrics := GetOrCreateMetrics(e)
	if metrics.Locked {
		t.Fatal("metrics report locked while disengaged")
	}
}

func TestEngagedUpdateMovesAndPublishes(t *testing.T) {
	e := newTestECS(t)
	GetOrCreateCapture(e).Engaged = true
	input := getOrCreateInput(e)
	input.Current[cfg.ActionForward] = true

	playerEntry, _ := components.Kinematics.First(e.World)
	before := *components.Kinematics.Get(playerEntry)

	UpdateMovement(e)

	state := components.Kinematics.Get(playerEntry)
	if state.Position == before.Position {
		t.Fatal("engaged forward frame did not move the avatar")
	}

	camera, _ := getCamera(e)
	if camera.Position != state.Position {
		t.Fatalf("camera position %v not synchronized with avatar %v",
			camera.Position, state.Position)
	}

	metrics := GetOrCreateMetrics(e)
	if !metrics.Locked {
		t.Fatal("metrics should report locked while engaged")
	}
	if metrics.Speed != state.Speed() {
		t.Fatalf("metrics speed %v != state speed %v", metrics.Speed, state.Speed())
	}
	if metrics.Stamina != state.Stamina {
		t.Fatalf("metrics stamina %v != state stamina %v", metrics.Stamina, state.Stamina)
	}
}

func TestReengagementResumesExactState(t *testing.T) {
	e := newTestECS(t)
	capture := GetOrCreateCapture(e)
	capture.Engaged = true
	input := getOrCreateInput(e)
	input.Current[cfg.ActionForward] = true

	for i := 0; i < 10; i++ {
		UpdateMovement(e)
	}

	playerEntry, _ := components.Kinematics.First(e.World)
	paused := *components.Kinematics.Get(playerEntry)

	capture.Engaged = false
	for i := 0; i < 10; i++ {
		UpdateMovement(e)
	}
	if got := *components.Kinematics.Get(playerEntry); got != paused {
		t.Fatalf("paused frames drifted the state:\n%+v\n%+v", paused, got)
	}

	capture.Engaged = true
	UpdateMovement(e)
	if got := *components.Kinematics.Get(playerEntry); got == paused {
		t.Fatal("re-engaged frame did not advance the simulation")
	}
}

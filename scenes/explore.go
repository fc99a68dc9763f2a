package scenes

import (
	"sync"

	"github.com/automoto/highland/components"
	"github.com/automoto/highland/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ExploreScene hosts the walker: one avatar, one camera, and the per-frame
// system chain. Input and terrain flow into the movement controller; the
// camera transform and the metrics snapshot flow out.
type ExploreScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

func NewExploreScene(saved *systems.SavedSettings) *ExploreScene {
	return &ExploreScene{saved: saved}
}

func (es *ExploreScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *ExploreScene) Draw(screen *ebiten.Image) {
	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *ExploreScene) configure() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	// Order matters: clock and input first, capture gates look and movement,
	// movement publishes what the HUD reads.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCapture)
	e.AddSystem(systems.UpdateLook)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateHUD)

	e.AddRenderer(ecs.LayerDefault, systems.DrawScene)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebug)

	player := systems.SpawnPlayer(e)

	// Camera starts at the avatar's eye point, looking level down -Z.
	camEntry := world.Entry(world.Create(components.Camera))
	camera := components.Camera.Get(camEntry)
	camera.Position = components.Kinematics.Get(player).Position
	camera.Orientation = mgl64.QuatIdent()

	systems.ApplySavedSettings(e, es.saved)

	es.ecs = e
}

package systems

import (
	"fmt"

	"github.com/automoto/highland/components"
	"github.com/automoto/highland/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the raw kinematics overlay when enabled (F3).
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.DebugOverlay {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.Kinematics.Get(playerEntry)
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	text := fmt.Sprintf(
		"pos %7.2f %7.2f %7.2f\nvel %7.2f %7.2f %7.2f\ngrounded %v  cooldown %.2f\nyaw %.2f pitch %.2f\ntps %.0f",
		state.Position[0], state.Position[1], state.Position[2],
		state.Velocity[0], state.Velocity[1], state.Velocity[2],
		state.Grounded, state.JumpCooldown,
		camera.Yaw, camera.Pitch,
		ebiten.ActualTPS())

	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, text, w-260, 12)
}

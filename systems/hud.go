package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/highland/components"
	cfg "github.com/automoto/highland/config"
	"github.com/automoto/highland/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const promptText = "CLICK TO LOOK AROUND\nWASD move / SHIFT sprint / SPACE jump / CTRL crouch / ESC release"

// UpdateHUD advances the capture-prompt pulse while the view is not captured.
func UpdateHUD(e *ecs.ECS) {
	hud := getOrCreateHUD(e)
	capture := GetOrCreateCapture(e)
	if capture.Engaged {
		return
	}
	clock := getOrCreateClock(e)
	v, _, _ := hud.Pulse.Update(float32(clock.Delta))
	hud.PromptAlpha = v
}

// DrawHUD renders the stamina bar, the speed/altitude readout, and the
// capture prompt, all from the published metrics snapshot.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	metrics := GetOrCreateMetrics(e)

	drawStaminaBar(screen, metrics.Stamina)

	readout := fmt.Sprintf("SPD %5.1f\nALT %5.1f", metrics.Speed, metrics.Altitude)
	ebitenutil.DebugPrintAt(screen,
		readout,
		int(cfg.UI.BarMargin),
		int(cfg.UI.BarMargin+cfg.UI.BarHeight)+6)

	if !metrics.Locked {
		drawPrompt(e, screen)
	}
}

func drawStaminaBar(screen *ebiten.Image, stamina float64) {
	ui := cfg.UI

	vector.DrawFilledRect(screen,
		float32(ui.BarMargin), float32(ui.BarMargin),
		float32(ui.BarWidth), float32(ui.BarHeight),
		ui.BarBg, false)

	ratio := float32(stamina / motion.StaminaMax)
	fg := ui.BarFg
	if float64(ratio) < ui.LowFrac {
		fg = ui.BarLow
	}
	vector.DrawFilledRect(screen,
		float32(ui.BarMargin), float32(ui.BarMargin),
		float32(ui.BarWidth)*ratio, float32(ui.BarHeight),
		fg, false)
}

func drawPrompt(e *ecs.ECS, screen *ebiten.Image) {
	hud := getOrCreateHUD(e)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	boxW, boxH := 420, 44
	x := (w - boxW) / 2
	y := h/2 - boxH/2

	alpha := hud.PromptAlpha
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(boxW), float32(boxH),
		color.RGBA{0, 0, 0, uint8(alpha * 190)}, false)
	ebitenutil.DebugPrintAt(screen, promptText, x+14, y+8)
}

func getOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
		hud := components.HUD.Get(entry)
		half := cfg.UI.PromptPeriod / 2
		hud.Pulse = gween.NewSequence(
			gween.New(cfg.UI.PromptMinAlpha, cfg.UI.PromptMaxAlpha, half, ease.InOutQuad),
			gween.New(cfg.UI.PromptMaxAlpha, cfg.UI.PromptMinAlpha, half, ease.InOutQuad),
		)
		hud.Pulse.SetLoop(-1)
		hud.PromptAlpha = cfg.UI.PromptMaxAlpha
		return hud
	}
	return components.HUD.Get(entry)
}

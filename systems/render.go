package systems

import (
	"image/color"
	"math"

	cfg "github.com/automoto/highland/config"
	"github.com/automoto/highland/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Horizontal field of view for the silhouette sweep, radians.
const renderFOV = 1.25

// Column width of the silhouette sweep, pixels. Coarser is cheaper.
const ridgeStep = 4

// DrawScene paints the minimal presentation: a sky gradient, and terrain
// ridge silhouettes sampled from the height field at a few fixed distances
// ahead of the camera. It is orientation only; the real scene pipeline lives
// outside this repo's scope.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(e)
	if !ok {
		screen.Fill(cfg.Render.SkyBottom)
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	horizon := float64(h)/2 + camera.Pitch*cfg.Render.HorizonScale

	drawSky(screen, w, h)

	// Far to near so closer ridges paint over farther ones.
	dists := cfg.Render.RidgeDistances
	for i := len(dists) - 1; i >= 0; i-- {
		col := ridgeColor(i, len(dists))
		drawRidge(screen, camera.Position, camera.Yaw, dists[i], horizon, w, h, col)
	}
}

func drawSky(screen *ebiten.Image, w, h int) {
	const bands = 24
	top := cfg.Render.SkyTop
	bottom := cfg.Render.SkyBottom
	bandH := float32(h) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, float32(w), bandH+1, c, false)
	}
}

// drawRidge sweeps the field of view, samples ground elevation at the given
// distance, and fills each column from the silhouette down to the bottom of
// the screen.
func drawRidge(screen *ebiten.Image, pos [3]float64, yaw, dist, horizon float64, w, h int, col color.RGBA) {
	// Perspective scale: nearer ridges get taller silhouettes.
	scale := cfg.Render.PixelsPerUnit * cfg.Render.RidgeDistances[0] / dist

	for x := 0; x < w; x += ridgeStep {
		angle := yaw - (float64(x)/float64(w)-0.5)*renderFOV
		sx := pos[0] - math.Sin(angle)*dist
		sz := pos[2] - math.Cos(angle)*dist

		rel := terrain.Height(sx, sz) - pos[1]
		y := horizon - rel*scale
		if y < 0 {
			y = 0
		}
		if y > float64(h) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(x), float32(y),
			ridgeStep, float32(float64(h)-y),
			col, false)
	}
}

func ridgeColor(i, n int) color.RGBA {
	if i == 0 {
		return cfg.Render.Ground
	}
	if i == n-1 {
		return cfg.Render.RidgeFar
	}
	return cfg.Render.Ridge
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

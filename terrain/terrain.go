// Package terrain is the height oracle for the arena: a deterministic pure
// function from planar coordinates to ground elevation, standing in for full
// collision geometry.
package terrain

import "math"

// ArenaHalfSize bounds the playable square region, centered on the origin.
const ArenaHalfSize = 120.0

// Fixed spawn coordinate; elevation is resolved against the height field.
const (
	SpawnX = 0.0
	SpawnZ = 8.0
)

// Height returns the ground elevation at (x, z). Layered sine octaves: broad
// rolling hills, a mid band, and fine surface detail. Same inputs always give
// the same elevation.
func Height(x, z float64) float64 {
	h := 6.0 * math.Sin(x*0.045) * math.Cos(z*0.045)
	h += 2.5 * math.Sin(x*0.11+1.3) * math.Sin(z*0.09+0.7)
	h += 0.6 * math.Cos(x*0.31) * math.Sin(z*0.27+2.1)
	return h
}

// Clamp bounds v to [min, max]. min < max always.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

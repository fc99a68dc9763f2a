package components

import "github.com/yohamta/donburi"

// MetricsData is the per-frame snapshot the HUD reads. The movement system
// overwrites it wholesale once per frame; it carries no logic and no state of
// its own beyond mirroring the kinematics.
type MetricsData struct {
	Speed    float64 // horizontal speed magnitude
	Altitude float64 // eye height above the ground underneath
	Stamina  float64
	Locked   bool // view capture engaged
}

var Metrics = donburi.NewComponentType[MetricsData]()

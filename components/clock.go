package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries the wall-clock time of the previous frame and the elapsed
// seconds since it. The movement controller applies its own dt cap, so a long
// stall shows up here uncapped.
type ClockData struct {
	Last  time.Time
	Delta float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()

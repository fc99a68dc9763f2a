package systems

import (
	"time"

	"github.com/automoto/highland/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures wall-clock elapsed time since the previous frame.
// Runs first so every later system sees this frame's delta.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	now := time.Now()
	if clock.Last.IsZero() {
		clock.Delta = 0
	} else {
		clock.Delta = now.Sub(clock.Last).Seconds()
	}
	clock.Last = now
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

package components

import "github.com/yohamta/donburi"

// CaptureData is the view capture boundary state. While not engaged the
// simulation is paused: the movement system leaves all kinematic state
// untouched and re-engagement resumes exactly where it left off.
type CaptureData struct {
	Engaged        bool
	JustEngaged    bool
	JustDisengaged bool
}

var Capture = donburi.NewComponentType[CaptureData]()

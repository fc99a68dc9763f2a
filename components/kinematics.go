package components

import (
	"github.com/automoto/highland/motion"
	"github.com/yohamta/donburi"
)

// Kinematics holds the avatar's motion.State. The movement system is its
// only writer; everything else reads the published metrics snapshot instead.
var Kinematics = donburi.NewComponentType[motion.State]()

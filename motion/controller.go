// Package motion is the first-person movement controller: it integrates the
// avatar's velocity under input and gravity, resolves it against a terrain
// height field, and runs the stamina and jump-cooldown mechanics. It has no
// rendering or windowing dependencies so it can be driven with synthetic
// orientations in tests.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Input is one frame's control flags, sampled by the host once per frame.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Run      bool
	Jump     bool
	Crouch   bool
}

// State is the avatar's kinematic state. There is exactly one writer (the
// controller) and it is only mutated inside Step.
type State struct {
	Position mgl64.Vec3 // eye point, world space
	Velocity mgl64.Vec3
	Stamina  float64 // always in [0, StaminaMax]
	Grounded bool    // recomputed every frame

	// Seconds until another jump may start. Only ever decremented by dt or
	// reset to JumpCooldownTime; the gate checks <= 0, so it may go negative.
	JumpCooldown float64
}

// HeightFunc maps planar coordinates to ground elevation. It must be pure:
// the controller queries it every frame and relies on stable answers for
// stable grounding.
type HeightFunc func(x, z float64) float64

// Controller steps a State against a height field inside a square arena of
// half-extent HalfSize centered on the origin.
type Controller struct {
	Height   HeightFunc
	HalfSize float64
}

var worldUp = mgl64.Vec3{0, 1, 0}

// Spawn returns a fresh grounded state standing at (x, z).
func (c *Controller) Spawn(x, z float64) State {
	return State{
		Position: mgl64.Vec3{x, c.Height(x, z) + EyeHeight, z},
		Stamina:  StaminaMax,
		Grounded: true,
	}
}

// Step advances the state by dt seconds. look is the camera orientation the
// avatar is facing; it is read, never written. A dt <= 0 is a no-op, and dt
// is capped at MaxDeltaTime before use.
func (c *Controller) Step(s *State, in Input, look mgl64.Quat, dt float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}

	forward, right := moveBasis(look)

	var wish mgl64.Vec3
	if in.Forward {
		wish = wish.Add(forward)
	}
	if in.Backward {
		wish = wish.Sub(forward)
	}
	if in.Right {
		wish = wish.Add(right)
	}
	if in.Left {
		wish = wish.Sub(right)
	}
	moving := wish.LenSqr() > 1e-3
	if moving {
		wish = wish.Normalize()
	} else {
		wish = mgl64.Vec3{}
	}

	// Sprint eligibility gates the multiplier; the drain below additionally
	// requires movement intent.
	sprinting := in.Run && !in.Crouch && s.Stamina > SprintMinStamina

	speed := WalkSpeed
	if in.Crouch {
		speed *= CrouchMultiplier
	}
	if sprinting {
		speed *= SprintMultiplier
	}

	// Exponential, frame-rate-independent approach toward the target
	// horizontal velocity: v' = target + (v-target)*exp(-rate*dt).
	target := wish.Mul(speed)
	rate := BrakeRate
	if moving {
		rate = AccelRate
	}
	k := math.Exp(-rate * dt)
	s.Velocity[0] = target[0] + (s.Velocity[0]-target[0])*k
	s.Velocity[2] = target[2] + (s.Velocity[2]-target[2])*k

	if sprinting && moving {
		s.Stamina = math.Max(0, s.Stamina-StaminaDrainRate*dt)
	} else {
		s.Stamina = math.Min(StaminaMax, s.Stamina+StaminaRegenRate*dt)
	}

	// Cooldown ticks down before the gate so a fresh jump leaves the full
	// reset value visible after the frame.
	s.JumpCooldown -= dt
	if in.Jump && s.Grounded && s.JumpCooldown <= 0 {
		s.Velocity[1] = JumpSpeed
		s.Grounded = false
		s.JumpCooldown = JumpCooldownTime
	}

	s.Velocity[1] -= Gravity * dt

	s.Position = s.Position.Add(s.Velocity.Mul(dt))

	// Hard stop at the arena edge. Velocity is deliberately not reflected or
	// zeroed: an avatar pressed against the wall keeps pushing into it and
	// simply gains no displacement.
	limit := c.HalfSize - BoundaryMargin
	s.Position[0] = clamp(s.Position[0], -limit, limit)
	s.Position[2] = clamp(s.Position[2], -limit, limit)

	eye := EyeHeight
	if in.Crouch {
		eye = CrouchEyeHeight
	}
	floor := c.Height(s.Position[0], s.Position[2]) + eye
	if s.Position[1] <= floor {
		s.Position[1] = floor + (s.Position[1]-floor)*math.Exp(-GroundSnapRate*dt)
		s.Velocity[1] = 0
		s.Grounded = true
	} else {
		s.Grounded = false
	}
}

// Speed is the horizontal speed magnitude, for the metrics snapshot.
func (s *State) Speed() float64 {
	return math.Hypot(s.Velocity[0], s.Velocity[2])
}

// Altitude is the eye height above the ground directly underneath.
func (c *Controller) Altitude(s *State) float64 {
	return s.Position[1] - c.Height(s.Position[0], s.Position[2])
}

// moveBasis derives the flattened forward and right directions from the look
// orientation. Forward is the world -Z axis rotated by look, projected onto
// the ground plane. Looking near straight up or down leaves no horizontal
// component; both vectors are zero for that frame rather than dividing by a
// near-zero length.
func moveBasis(look mgl64.Quat) (forward, right mgl64.Vec3) {
	forward = look.Rotate(mgl64.Vec3{0, 0, -1})
	forward[1] = 0
	if l := forward.Len(); l > 1e-6 {
		forward = forward.Mul(1 / l)
		right = forward.Cross(worldUp)
	} else {
		forward = mgl64.Vec3{}
	}
	return forward, right
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

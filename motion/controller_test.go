package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func flatController() *Controller {
	return &Controller{
		Height:   func(x, z float64) float64 { return 0 },
		HalfSize: 120,
	}
}

func level() mgl64.Quat { return mgl64.QuatIdent() }

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestStepZeroOrNegativeDtIsNoOp(t *testing.T) {
	c := flatController()
	s := c.Spawn(3, -4)
	s.Velocity = mgl64.Vec3{1, 2, 3}
	s.JumpCooldown = 0.2

	before := s
	c.Step(&s, Input{Forward: true, Jump: true, Run: true}, level(), 0)
	if s != before {
		t.Fatalf("dt=0 changed state: %+v -> %+v", before, s)
	}
	c.Step(&s, Input{Forward: true}, level(), -0.1)
	if s != before {
		t.Fatalf("negative dt changed state: %+v -> %+v", before, s)
	}
}

func TestForwardFrameMatchesDampingLaw(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)

	c.Step(&s, Input{Forward: true}, level(), 0.016)

	want := WalkSpeed * (1 - math.Exp(-AccelRate*0.016))
	if !approx(s.Speed(), want, 1e-9) {
		t.Fatalf("speed after one forward frame = %v, want %v", s.Speed(), want)
	}
	// Identity orientation faces -Z; a forward frame may not drift sideways.
	if !approx(s.Velocity[0], 0, 1e-12) {
		t.Fatalf("forward frame produced sideways velocity %v", s.Velocity[0])
	}
	if s.Velocity[2] >= 0 {
		t.Fatalf("forward frame should move toward -Z, got vz=%v", s.Velocity[2])
	}
}

func TestSprintDrainsToFourOverThreeSeconds(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)

	in := Input{Forward: true, Run: true}
	for i := 0; i < 60; i++ {
		c.Step(&s, in, level(), 0.05)
	}
	if !approx(s.Stamina, 4.0, 1e-6) {
		t.Fatalf("stamina after 3s sprint = %v, want 4", s.Stamina)
	}

	// Below the eligibility threshold the next frame regenerates even with
	// run still held.
	c.Step(&s, in, level(), 0.05)
	if !approx(s.Stamina, 4.0+StaminaRegenRate*0.05, 1e-6) {
		t.Fatalf("stamina after ineligible sprint frame = %v, want regen", s.Stamina)
	}
}

func TestSprintMultiplierGating(t *testing.T) {
	settle := func(in Input) float64 {
		c := flatController()
		s := c.Spawn(0, 0)
		s.Stamina = StaminaMax
		for i := 0; i < 90; i++ { // 1.44s, well before stamina runs out
			c.Step(&s, in, level(), 0.016)
		}
		return s.Speed()
	}

	sprint := settle(Input{Forward: true, Run: true})
	if !approx(sprint, WalkSpeed*SprintMultiplier, 0.1) {
		t.Fatalf("sprint speed settled at %v, want ~%v", sprint, WalkSpeed*SprintMultiplier)
	}

	walk := settle(Input{Forward: true})
	if !approx(walk, WalkSpeed, 0.1) {
		t.Fatalf("walk speed settled at %v, want ~%v", walk, WalkSpeed)
	}

	// Crouch wins over run: no sprint multiplier while crouched.
	crouchRun := settle(Input{Forward: true, Run: true, Crouch: true})
	if !approx(crouchRun, WalkSpeed*CrouchMultiplier, 0.1) {
		t.Fatalf("crouch+run speed settled at %v, want ~%v", crouchRun, WalkSpeed*CrouchMultiplier)
	}
}

func TestNoSprintBelowStaminaThreshold(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)
	s.Stamina = SprintMinStamina // exactly at the threshold: not eligible

	c.Step(&s, Input{Forward: true, Run: true}, level(), 0.016)

	want := WalkSpeed * (1 - math.Exp(-AccelRate*0.016))
	if !approx(s.Speed(), want, 1e-9) {
		t.Fatalf("speed = %v, want walk-rate %v (sprint must be disallowed)", s.Speed(), want)
	}
}

func TestJumpGateAndCooldownReset(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)

	c.Step(&s, Input{Jump: true}, level(), 0.016)
	if s.Grounded {
		t.Fatal("still grounded immediately after a jump")
	}
	if s.JumpCooldown != JumpCooldownTime {
		t.Fatalf("cooldown after jump = %v, want %v", s.JumpCooldown, JumpCooldownTime)
	}
	if s.Velocity[1] <= 0 {
		t.Fatalf("vertical velocity after jump = %v, want positive", s.Velocity[1])
	}

	// Airborne: holding jump must not fire again.
	vy := s.Velocity[1]
	c.Step(&s, Input{Jump: true}, level(), 0.016)
	if s.Velocity[1] >= vy {
		t.Fatalf("airborne jump frame increased vy: %v -> %v", vy, s.Velocity[1])
	}
}

func TestNoJumpWhileCooldownActive(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)
	s.JumpCooldown = 0.2

	c.Step(&s, Input{Jump: true}, level(), 0.016)
	if !s.Grounded {
		t.Fatal("jump fired despite active cooldown")
	}
	if s.Velocity[1] != 0 {
		t.Fatalf("grounded vy = %v, want 0", s.Velocity[1])
	}
}

func TestLandingZeroesVerticalVelocity(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)
	s.Grounded = false
	s.Position[1] = EyeHeight + 0.01
	s.Velocity = mgl64.Vec3{0, -5, 0}

	c.Step(&s, Input{}, level(), 0.05)
	if !s.Grounded {
		t.Fatal("descending onto terrain did not ground")
	}
	if s.Velocity[1] != 0 {
		t.Fatalf("vy after landing = %v, want exactly 0", s.Velocity[1])
	}
	if s.Position[1] > EyeHeight {
		t.Fatalf("eye position %v overshot the ground target %v", s.Position[1], EyeHeight)
	}
}

func TestGravityAccumulatesOverOneSecond(t *testing.T) {
	c := flatController()
	s := State{Position: mgl64.Vec3{0, 100, 0}, Stamina: StaminaMax}

	// One integrated second as twenty max-length frames (the per-step cap
	// makes a single dt=1 call integrate only 0.05s).
	for i := 0; i < 20; i++ {
		c.Step(&s, Input{}, level(), 0.05)
	}
	if !approx(s.Velocity[1], -Gravity, 1e-9) {
		t.Fatalf("vy after 1s of free fall = %v, want %v", s.Velocity[1], -Gravity)
	}
	if s.Grounded {
		t.Fatal("free-falling avatar reported grounded")
	}
}

func TestBoundaryClampIsHardStop(t *testing.T) {
	c := flatController()
	limit := c.HalfSize - BoundaryMargin

	s := c.Spawn(limit, 0)
	s.Velocity = mgl64.Vec3{20, 0, 0} // pressing east into the wall

	for i := 0; i < 5; i++ {
		c.Step(&s, Input{}, level(), 0.016)
		if s.Position[0] != limit {
			t.Fatalf("x = %v, want exactly %v at the boundary", s.Position[0], limit)
		}
	}
}

func TestBoundsHoldUnderInputChurn(t *testing.T) {
	c := flatController()
	limit := c.HalfSize - BoundaryMargin
	s := c.Spawn(limit-1, -(limit - 1))

	// Deterministic pseudo-random input churn.
	seed := uint64(0x9e3779b97f4a7c15)
	next := func() bool {
		seed = seed*6364136223846793005 + 1442695040888963407
		return seed>>63 == 1
	}

	look := mgl64.QuatRotate(2.3, mgl64.Vec3{0, 1, 0})
	for i := 0; i < 2000; i++ {
		in := Input{
			Forward: next(), Backward: next(),
			Left: next(), Right: next(),
			Run: next(), Jump: next(), Crouch: next(),
		}
		c.Step(&s, in, look, 0.016)

		if s.Stamina < 0 || s.Stamina > StaminaMax {
			t.Fatalf("step %d: stamina %v left [0,%v]", i, s.Stamina, StaminaMax)
		}
		if s.Position[0] < -limit || s.Position[0] > limit ||
			s.Position[2] < -limit || s.Position[2] > limit {
			t.Fatalf("step %d: position (%v,%v) left the arena", i, s.Position[0], s.Position[2])
		}
	}
}

func TestNearVerticalLookIsDegenerateNotNaN(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)
	s.Velocity = mgl64.Vec3{3, 0, 0}

	// Looking straight down: the flattened forward vector has ~zero length,
	// so movement intent must collapse to zero instead of dividing by it.
	down := mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0})
	for i := 0; i < 30; i++ {
		c.Step(&s, Input{Forward: true, Right: true}, down, 0.016)
	}

	if math.IsNaN(s.Velocity[0]) || math.IsNaN(s.Velocity[2]) {
		t.Fatalf("velocity went NaN: %v", s.Velocity)
	}
	// With no usable intent the brake rate bleeds the initial velocity off.
	if s.Speed() >= 3 {
		t.Fatalf("speed %v did not decay under degenerate look", s.Speed())
	}
}

func TestCrouchLowersEyeTarget(t *testing.T) {
	c := flatController()
	s := c.Spawn(0, 0)

	for i := 0; i < 60; i++ {
		c.Step(&s, Input{Crouch: true}, level(), 0.016)
	}
	// The ground resolve is a damped approach, so resting height sags a few
	// hundredths below the exact eye target at 60fps.
	if !approx(s.Position[1], CrouchEyeHeight, 0.05) {
		t.Fatalf("crouched eye height settled at %v, want ~%v", s.Position[1], CrouchEyeHeight)
	}
	if !s.Grounded {
		t.Fatal("crouched avatar on flat ground should stay grounded")
	}
}

func TestSpawnRestsOnTerrain(t *testing.T) {
	c := &Controller{
		Height:   func(x, z float64) float64 { return 2.5 },
		HalfSize: 120,
	}
	s := c.Spawn(10, 20)
	if !approx(s.Position[1], 2.5+EyeHeight, 1e-12) {
		t.Fatalf("spawn eye height = %v, want %v", s.Position[1], 2.5+EyeHeight)
	}
	if !s.Grounded || s.Stamina != StaminaMax {
		t.Fatalf("spawn state = %+v, want grounded with full stamina", s)
	}
}

package motion

// Movement tuning. Speeds are world units per second, rates are per second.
const (
	WalkSpeed        = 9.5
	SprintMultiplier = 1.75
	CrouchMultiplier = 0.45

	AccelRate = 8.0 // approach rate toward the target velocity under intent
	BrakeRate = 5.5 // approach rate when coasting back to rest

	StaminaMax       = 100.0
	StaminaDrainRate = 32.0 // while sprinting and moving
	StaminaRegenRate = 20.0
	SprintMinStamina = 5.0 // sprint needs more than this much left

	JumpSpeed        = 12.5
	JumpCooldownTime = 0.35
	Gravity          = 32.0

	EyeHeight       = 1.72
	CrouchEyeHeight = 1.05
	GroundSnapRate  = 18.0 // vertical approach rate onto the ground target

	// Cap on a single integration step. A long stall (tab switch, dropped
	// frames) otherwise shows up as one huge dt and destabilizes the
	// integrator. This trades determinism for simplicity versus a
	// fixed-timestep accumulator.
	MaxDeltaTime = 0.05

	// Playable area stops this far inside the arena edge.
	BoundaryMargin = 3.0
)

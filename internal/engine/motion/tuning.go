package motion

// Movement feel constants. DefaultTuning mirrors these; the config layer
// may override them at runtime.
const (
	// WalkSpeed is the top ground speed in units per second.
	WalkSpeed = 10.0
	// DashSpeed is the burst speed while dashing.
	DashSpeed = 30.0
	// DashDuration is how long a dash lasts absent a collision, seconds.
	DashDuration = 0.3
	// Acceleration ramps horizontal velocity toward the input target.
	Acceleration = 40.0
	// Deceleration ramps horizontal velocity back to zero without input.
	Deceleration = 35.0
	// AimRayLength bounds the pointer ray cast into the world.
	AimRayLength = 2000.0
	// DashSafeMargin is the skin distance kept from dash contacts.
	DashSafeMargin = 0.001
	// minDashVelocity is the horizontal speed below which current
	// velocity is skipped as a dash direction candidate.
	minDashVelocity = 0.1
)

// Tuning carries the movement feel knobs.
type Tuning struct {
	WalkSpeed      float32
	DashSpeed      float32
	DashDuration   float32
	Acceleration   float32
	Deceleration   float32
	AimRayLength   float32
	DashSafeMargin float32
}

// DefaultTuning returns the stock movement feel.
func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:      WalkSpeed,
		DashSpeed:      DashSpeed,
		DashDuration:   DashDuration,
		Acceleration:   Acceleration,
		Deceleration:   Deceleration,
		AimRayLength:   AimRayLength,
		DashSafeMargin: DashSafeMargin,
	}
}

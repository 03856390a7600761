package camera

// Arm is the collision arm between the body and the camera. The motion
// controller drops its mask to zero while dashing so the arm cannot be
// pushed into geometry, and restores it afterwards.
type Arm struct {
	mask uint32
}

// DefaultArmMask collides with static world geometry only.
const DefaultArmMask uint32 = 1

// NewArm creates an arm with the default collision mask.
func NewArm() *Arm {
	return &Arm{mask: DefaultArmMask}
}

// CollisionMask returns the current collision mask.
func (a *Arm) CollisionMask() uint32 {
	return a.mask
}

// SetCollisionMask replaces the collision mask. Zero disables collision.
func (a *Arm) SetCollisionMask(mask uint32) {
	a.mask = mask
}

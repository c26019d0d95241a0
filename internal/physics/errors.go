package physics

import "errors"

var (
	// ErrZeroMass indicates m = 0, which leaves the state-space model and
	// the natural frequency undefined.
	ErrZeroMass = errors.New("physics: mass must be nonzero")

	// ErrStiffnessSign indicates k is zero or of opposite sign to m, making
	// the damping-ratio radicand non-positive.
	ErrStiffnessSign = errors.New("physics: stiffness must be nonzero and share the sign of mass")
)

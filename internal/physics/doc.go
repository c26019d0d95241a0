// Package physics provides the spring-mass-damper plant and its linear models.
//
// [SpringMass] replaces a positional (m, b, k) triple with named fields and
// builds the plant's models:
//
//   - [SpringMass.StateSpace]: controllable canonical (A, B, C, D)
//   - [SpringMass.TransferFunction]: 1/(m·s² + b·s + k)
//   - [SpringMass.ZPK]: zero-pole-gain form of the transfer function
//   - [SpringMass.Zeta], [SpringMass.Omega]: damping ratio and natural frequency
//
// Both realizations describe the same input-output behaviour: B carries the
// 1/m factor that the transfer function keeps in its leading denominator
// coefficient.
//
// # Invalid Parameters
//
// Nothing is validated implicitly. A zero mass or a negative m·k produces
// Inf or NaN rather than an error; call [SpringMass.Validate] first when
// that matters:
//
//	sm := physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3}
//	if err := sm.Validate(); err != nil {
//	    return err
//	}
//	zeta := sm.Zeta()
package physics

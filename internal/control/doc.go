// Package control closes a unity-feedback PID loop around the spring-mass
// plant.
//
// [Gains] hold the parallel-form coefficients Kp, Ki and Kd. [Classify]
// maps them to one of three controller types:
//
//   - [PPD]: Ki == 0
//   - [PII]: Ki != 0, Kd == 0
//   - [PID]: neither is zero
//
// [ClosedLoop] derives the closed-loop transfer function for the selected
// type in closed form. The result always equals the generic interconnection
//
//	lti.Feedback(lti.Series(g.TransferFunction(), plant.TransferFunction()))
//
// up to leading zeros and scaling.
//
// # Diagnostics
//
// Every ClosedLoop call emits one slog record describing the controller
// type and its zero-pole-gain form. Use [SetLogger] to redirect or discard
// it; the returned model does not depend on logging.
package control

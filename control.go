// Package control builds linear models of a spring-mass-damper plant, both
// alone and under unity-feedback PID control.
//
// The plant m·x'' + b·x' + k·x = u is described by a [SpringMass] and the
// controller C(s) = Kd·s + Kp + Ki/s by [Gains]. All functions are pure and
// safe for concurrent use.
//
//	plant := control.SpringMass{Mass: 1, Damping: 2, Stiffness: 3}
//	tf, typ := control.PIDSpringMass(plant, control.Gains{Kp: 4, Ki: 5, Kd: 6})
//	// typ == control.PID, tf.Num == [6 4 5], tf.Den == [1 8 7 5]
//
// Invalid parameters are not rejected. A zero mass or a negative radicand
// yields Inf or NaN in the result; use [SpringMass.Validate] to check first.
package control

import (
	"log/slog"

	"github.com/ASukhanov/Control/internal/config"
	ctrl "github.com/ASukhanov/Control/internal/control"
	"github.com/ASukhanov/Control/internal/lti"
	"github.com/ASukhanov/Control/internal/physics"
)

// Version identifies the model formulas.
const Version = "v01 2018-03-04"

type (
	SpringMass       = physics.SpringMass
	Gains            = ctrl.Gains
	ControllerType   = ctrl.Type
	TransferFunction = lti.TransferFunction
	ZPK              = lti.ZPK
	StateSpace       = lti.StateSpace
	Poly             = lti.Poly
	Config           = config.Config
)

const (
	PPD = ctrl.PPD
	PII = ctrl.PII
	PID = ctrl.PID
)

var (
	ErrZeroMass        = physics.ErrZeroMass
	ErrStiffnessSign   = physics.ErrStiffnessSign
	ErrZeroDenominator = lti.ErrZeroDenominator
)

// SpringMassSS returns the controllable canonical state-space model.
func SpringMassSS(p SpringMass) StateSpace {
	return p.StateSpace()
}

// SpringMassSystem returns the plant transfer function 1/(m·s² + b·s + k).
func SpringMassSystem(p SpringMass) TransferFunction {
	return p.TransferFunction()
}

// SpringMassZeta returns the damping ratio b/(2·sqrt(m·k)).
func SpringMassZeta(p SpringMass) float64 {
	return p.Zeta()
}

// SpringMassOmega returns the undamped natural frequency sqrt(k/m).
func SpringMassOmega(p SpringMass) float64 {
	return p.Omega()
}

// SpringMassZPK returns the plant transfer function in zero-pole-gain form.
func SpringMassZPK(p SpringMass) (ZPK, error) {
	return p.ZPK()
}

// PIDSpringMass returns the closed-loop transfer function of the plant under
// unity-feedback PID control and the controller type it was derived for.
func PIDSpringMass(p SpringMass, g Gains) (TransferFunction, ControllerType) {
	return ctrl.ClosedLoop(p, g)
}

// ClassifyController reports which closed-loop form PIDSpringMass uses for g.
func ClassifyController(g Gains) ControllerType {
	return ctrl.Classify(g)
}

// SetLogger redirects the diagnostic record PIDSpringMass emits. Pass nil to
// fall back to slog.Default().
func SetLogger(l *slog.Logger) {
	ctrl.SetLogger(l)
}

// ParseConfig decodes a YAML plant and gain description over the defaults.
func ParseConfig(data []byte) (*Config, error) {
	return config.Parse(data)
}

// Preset returns a named example configuration, or nil.
func Preset(name string) *Config {
	return config.GetPreset(name)
}

// Presets lists the available preset names.
func Presets() []string {
	return config.ListPresets()
}

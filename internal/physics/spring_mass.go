package physics

import (
	"fmt"
	"math"

	"github.com/ASukhanov/Control/internal/lti"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
	DefaultDamping   = 0.5
)

// SpringMass is a single mass on a linear spring with viscous damping,
// m·x'' + b·x' + k·x = u, observed through its position x.
type SpringMass struct {
	Mass      float64 `yaml:"mass"`
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
}

func NewSpringMass() SpringMass {
	return SpringMass{
		Mass:      DefaultMass,
		Damping:   DefaultDamping,
		Stiffness: DefaultStiffness,
	}
}

// FromTriple builds the plant from an ordered (m, b, k) triple.
func FromTriple(mbk [3]float64) SpringMass {
	return SpringMass{Mass: mbk[0], Damping: mbk[1], Stiffness: mbk[2]}
}

// Triple returns the parameters as (m, b, k).
func (s SpringMass) Triple() [3]float64 {
	return [3]float64{s.Mass, s.Damping, s.Stiffness}
}

// StateSpace returns the controllable canonical realization with state
// (x, x'):
//
//	A = [0 1; -k/m -b/m]  B = [0; 1/m]  C = [1 0]  D = 0
//
// m = 0 yields non-finite entries.
func (s SpringMass) StateSpace() lti.StateSpace {
	m, b, k := s.Mass, s.Damping, s.Stiffness
	return lti.StateSpace{
		A: mat.NewDense(2, 2, []float64{0, 1, -k / m, -b / m}),
		B: mat.NewDense(2, 1, []float64{0, 1 / m}),
		C: mat.NewDense(1, 2, []float64{1, 0}),
		D: mat.NewDense(1, 1, []float64{0}),
	}
}

// TransferFunction returns the open-loop plant 1/(m·s² + b·s + k).
func (s SpringMass) TransferFunction() lti.TransferFunction {
	return lti.TransferFunction{
		Num: lti.Poly{1},
		Den: lti.Poly{s.Mass, s.Damping, s.Stiffness},
	}
}

// Zeta is the damping ratio b/(2·sqrt(m·k)). NaN when m·k < 0, Inf when m·k = 0.
func (s SpringMass) Zeta() float64 {
	return s.Damping / 2 / math.Sqrt(s.Mass*s.Stiffness)
}

// Omega is the undamped natural frequency sqrt(k/m). NaN when k/m < 0.
func (s SpringMass) Omega() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// ZPK returns the plant in zero-pole-gain form.
func (s SpringMass) ZPK() (lti.ZPK, error) {
	z, err := s.TransferFunction().ZPK()
	if err != nil {
		return lti.ZPK{}, fmt.Errorf("physics: spring-mass zpk: %w", err)
	}
	return z, nil
}

// Validate reports parameters for which Zeta, Omega or StateSpace produce
// non-finite values. The model builders never call it.
func (s SpringMass) Validate() error {
	if s.Mass == 0 {
		return ErrZeroMass
	}
	if s.Stiffness == 0 || math.Signbit(s.Mass) != math.Signbit(s.Stiffness) {
		return fmt.Errorf("%w: m=%g k=%g", ErrStiffnessSign, s.Mass, s.Stiffness)
	}
	return nil
}

package control

import "github.com/ASukhanov/Control/internal/lti"

// Gains are the parallel-form PID coefficients of C(s) = Kd·s + Kp + Ki/s.
type Gains struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

func NewGains(kp, ki, kd float64) Gains {
	return Gains{Kp: kp, Ki: ki, Kd: kd}
}

// Type labels the controller structure implied by which gains are zero.
type Type int

const (
	PPD Type = iota // Ki == 0: proportional and/or derivative
	PII             // Kd == 0, Ki != 0: proportional-integral or pure integral
	PID
)

func (t Type) String() string {
	switch t {
	case PPD:
		return "P/PD"
	case PII:
		return "PI/I"
	case PID:
		return "PID"
	default:
		return "unknown"
	}
}

// Classify selects the controller type. Ki == 0 is tested before Kd == 0,
// so a pure proportional controller is P/PD. Comparisons are exact.
func Classify(g Gains) Type {
	switch {
	case g.Ki == 0:
		return PPD
	case g.Kd == 0:
		return PII
	default:
		return PID
	}
}

// TransferFunction returns the controller C(s). Without an integral term it
// is the polynomial Kd·s + Kp; otherwise (Kd·s² + Kp·s + Ki)/s.
func (g Gains) TransferFunction() lti.TransferFunction {
	if g.Ki == 0 {
		return lti.TransferFunction{Num: lti.Poly{g.Kd, g.Kp}, Den: lti.Poly{1}}
	}
	return lti.TransferFunction{Num: lti.Poly{g.Kd, g.Kp, g.Ki}, Den: lti.Poly{1, 0}}
}

// GetParams returns the gains keyed by name.
func (g Gains) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp": g.Kp,
		"Ki": g.Ki,
		"Kd": g.Kd,
	}
}

// WithParam returns a copy of g with one gain replaced. Unknown names leave
// g unchanged.
func (g Gains) WithParam(name string, value float64) Gains {
	switch name {
	case "Kp":
		g.Kp = value
	case "Ki":
		g.Ki = value
	case "Kd":
		g.Kd = value
	}
	return g
}

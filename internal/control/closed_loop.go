package control

import (
	"log/slog"
	"sync/atomic"

	"github.com/ASukhanov/Control/internal/lti"
	"github.com/ASukhanov/Control/internal/physics"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger routes the closed-loop diagnostics to l. A nil l restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func currentLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ClosedLoop returns T(s) = C·G/(1 + C·G) for the spring-mass plant G under
// unity-feedback PID control, with the 1/s of the integral term cleared:
//
//	P/PD  [Kd, Kp]              / [m, b+Kd, k+Kp]
//	PI/I  [Kp, Ki] or [Ki]      / [m, b, k+Kp, Ki]
//	PID   [Kd, Kp, Ki]          / [m, b+Kd, k+Kp, Ki]
//
// The PI/I numerator drops Kp only when it is exactly zero. The selected
// type and the zero-pole-gain form are logged at info level.
func ClosedLoop(plant physics.SpringMass, g Gains) (lti.TransferFunction, Type) {
	m, b, k := plant.Mass, plant.Damping, plant.Stiffness

	typ := Classify(g)
	var num, den lti.Poly
	switch typ {
	case PPD:
		num = lti.Poly{g.Kd, g.Kp}
		den = lti.Poly{m, b + g.Kd, k + g.Kp}
	case PII:
		if g.Kp != 0 {
			num = lti.Poly{g.Kp, g.Ki}
		} else {
			num = lti.Poly{g.Ki}
		}
		den = lti.Poly{m, b, k + g.Kp, g.Ki}
	default:
		num = lti.Poly{g.Kd, g.Kp, g.Ki}
		den = lti.Poly{m, b + g.Kd, k + g.Kp, g.Ki}
	}

	tf := lti.TransferFunction{Num: num, Den: den}
	describe(typ, tf)
	return tf, typ
}

func describe(typ Type, tf lti.TransferFunction) {
	l := currentLogger()
	z, err := tf.ZPK()
	if err != nil {
		l.Warn("closed loop has no zero-pole-gain form",
			slog.String("controller", typ.String()),
			slog.String("tf", tf.String()),
			slog.Any("error", err))
		return
	}
	l.Info("closed loop",
		slog.String("controller", typ.String()),
		slog.Any("zpk", z))
}

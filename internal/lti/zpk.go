package lti

import (
	"fmt"
	"log/slog"
	"strings"
)

// ZPK is a transfer function factored as Gain·Π(s - Zeros)/Π(s - Poles).
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// TransferFunction expands the factored form back into polynomials with a
// monic denominator.
func (z ZPK) TransferFunction() TransferFunction {
	return TransferFunction{
		Num: FromRoots(z.Zeros).Scale(z.Gain),
		Den: FromRoots(z.Poles),
	}
}

// Equal compares root sets regardless of order, and the gains, within tol.
func (z ZPK) Equal(other ZPK, tol float64) bool {
	if !closePoly(Poly{z.Gain}, Poly{other.Gain}, tol) {
		return false
	}
	return closeRoots(z.Zeros, other.Zeros, tol) && closeRoots(z.Poles, other.Poles, tol)
}

// IsStable reports whether every pole lies strictly in the left half-plane.
func (z ZPK) IsStable() bool {
	for _, p := range z.Poles {
		if !(real(p) < 0) {
			return false
		}
	}
	return true
}

func (z ZPK) String() string {
	return fmt.Sprintf("zeros=%s poles=%s gain=%g", formatRoots(z.Zeros), formatRoots(z.Poles), z.Gain)
}

// LogValue renders roots as text so JSON handlers can encode them.
func (z ZPK) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("zeros", formatRoots(z.Zeros)),
		slog.String("poles", formatRoots(z.Poles)),
		slog.Float64("gain", z.Gain),
	)
}

func formatRoots(roots []complex128) string {
	parts := make([]string, len(roots))
	for i, r := range roots {
		if imag(r) == 0 {
			parts[i] = fmt.Sprintf("%.6g", real(r))
			continue
		}
		parts[i] = fmt.Sprintf("%.6g", r)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

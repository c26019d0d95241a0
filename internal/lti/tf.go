package lti

import (
	"fmt"
	"math"
	"strings"
)

// TransferFunction is the rational function Num(s)/Den(s).
type TransferFunction struct {
	Num Poly
	Den Poly
}

// NewTransferFunction copies num and den into a new transfer function.
func NewTransferFunction(num, den []float64) TransferFunction {
	return TransferFunction{Num: Poly(num).Clone(), Den: Poly(den).Clone()}
}

// Order is the degree of the denominator.
func (tf TransferFunction) Order() int {
	return tf.Den.Degree()
}

// Eval returns Num(s)/Den(s).
func (tf TransferFunction) Eval(s complex128) complex128 {
	return tf.Num.Eval(s) / tf.Den.Eval(s)
}

// Normalize trims leading zeros from both polynomials and scales them so the
// denominator is monic.
func (tf TransferFunction) Normalize() (TransferFunction, error) {
	den := Trim(tf.Den)
	if den.IsZero() {
		return TransferFunction{}, ErrZeroDenominator
	}
	lead := den[0]
	return TransferFunction{
		Num: Trim(tf.Num).Scale(1 / lead),
		Den: den.Scale(1 / lead),
	}, nil
}

// ZPK converts to zero-pole-gain form. Leading numerator zeros are dropped
// before the gain is taken as Num[0]/Den[0]. A zero numerator yields gain 0
// and no zeros.
func (tf TransferFunction) ZPK() (ZPK, error) {
	den := Trim(tf.Den)
	if den.IsZero() {
		return ZPK{}, ErrZeroDenominator
	}

	poles, err := den.Roots()
	if err != nil {
		return ZPK{}, fmt.Errorf("poles: %w", err)
	}

	num := Trim(tf.Num)
	if num.IsZero() {
		return ZPK{Poles: poles}, nil
	}

	zeros, err := num.Roots()
	if err != nil {
		return ZPK{}, fmt.Errorf("zeros: %w", err)
	}

	return ZPK{Zeros: zeros, Poles: poles, Gain: num[0] / den[0]}, nil
}

// Equal reports whether tf and other describe the same rational function
// once both are normalized. Common factors are not cancelled.
func (tf TransferFunction) Equal(other TransferFunction, tol float64) bool {
	a, err := tf.Normalize()
	if err != nil {
		return false
	}
	b, err := other.Normalize()
	if err != nil {
		return false
	}
	return closePoly(a.Num, b.Num, tol) && closePoly(a.Den, b.Den, tol)
}

func (tf TransferFunction) String() string {
	return fmt.Sprintf("%s / %s", formatPoly(tf.Num), formatPoly(tf.Den))
}

func closePoly(a, b Poly, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol*maxf(1, math.Abs(a[i])) {
			return false
		}
	}
	return true
}

func formatPoly(p Poly) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

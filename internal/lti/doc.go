// Package lti provides linear time-invariant model representations.
//
// Three interconvertible forms of a single-input single-output system are
// supported:
//
//   - [TransferFunction]: numerator and denominator polynomials in s
//   - [ZPK]: zeros, poles and a scalar gain
//   - [StateSpace]: the (A, B, C, D) matrix quadruple
//
// Polynomials are stored as coefficient slices ordered from the highest
// power of s down to the constant term, so []float64{1, 2, 3} is s² + 2s + 3.
//
// # Floating Point
//
// Nothing in this package guards against non-finite coefficients. NaN and
// Inf values flow through every conversion and surface in the results.
package lti

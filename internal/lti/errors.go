package lti

import "errors"

var (
	// ErrZeroDenominator indicates a transfer function whose denominator is
	// identically zero.
	ErrZeroDenominator = errors.New("lti: denominator is identically zero")

	// ErrNotSISO indicates a state-space model with more than one input or output.
	ErrNotSISO = errors.New("lti: model is not single-input single-output")

	// ErrDimensionMismatch indicates inconsistent state-space matrix shapes.
	ErrDimensionMismatch = errors.New("lti: dimension mismatch between state-space matrices")

	// ErrEigen indicates the eigenvalue decomposition did not converge.
	ErrEigen = errors.New("lti: eigenvalue decomposition failed")
)

package lti

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StateSpace is the model x' = A·x + B·u, y = C·x + D·u.
type StateSpace struct {
	// State matrix A (nx×nx)
	A *mat.Dense
	// Input matrix B (nx×nu)
	B *mat.Dense
	// Output matrix C (ny×nx)
	C *mat.Dense
	// Feedthrough matrix D (ny×nu)
	D *mat.Dense
}

// NewStateSpace copies the given matrices. Shapes are checked lazily by the
// conversions that need them.
func NewStateSpace(a, b, c, d mat.Matrix) StateSpace {
	return StateSpace{
		A: mat.DenseCopyOf(a),
		B: mat.DenseCopyOf(b),
		C: mat.DenseCopyOf(c),
		D: mat.DenseCopyOf(d),
	}
}

// Dims returns the state, input and output lengths.
func (ss StateSpace) Dims() (nx, nu, ny int) {
	nx, _ = ss.A.Dims()
	_, nu = ss.B.Dims()
	ny, _ = ss.C.Dims()
	return nx, nu, ny
}

func (ss StateSpace) validate() error {
	nx, nu, ny := ss.Dims()
	if r, c := ss.A.Dims(); r != c {
		return fmt.Errorf("%w: A is %dx%d", ErrDimensionMismatch, r, c)
	}
	if r, _ := ss.B.Dims(); r != nx {
		return fmt.Errorf("%w: B has %d rows, want %d", ErrDimensionMismatch, r, nx)
	}
	if _, c := ss.C.Dims(); c != nx {
		return fmt.Errorf("%w: C has %d columns, want %d", ErrDimensionMismatch, c, nx)
	}
	if r, c := ss.D.Dims(); r != ny || c != nu {
		return fmt.Errorf("%w: D is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, ny, nu)
	}
	return nil
}

// CharPoly returns det(sI - A), which is monic.
func (ss StateSpace) CharPoly() Poly {
	coeffs, _ := leverrier(ss.A)
	return coeffs
}

// Poles returns the eigenvalues of A, sorted as [Poly.Roots] sorts them.
func (ss StateSpace) Poles() ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(ss.A, mat.EigenNone); !ok {
		return nil, ErrEigen
	}
	poles := eig.Values(nil)
	sortRoots(poles)
	return poles, nil
}

// TransferFunction returns C·adj(sI - A)·B/det(sI - A) + D for a
// single-input single-output model. The denominator is the full
// characteristic polynomial; pole-zero cancellations are kept.
func (ss StateSpace) TransferFunction() (TransferFunction, error) {
	if err := ss.validate(); err != nil {
		return TransferFunction{}, err
	}
	if _, nu, ny := ss.Dims(); nu != 1 || ny != 1 {
		return TransferFunction{}, fmt.Errorf("%w: %d inputs, %d outputs", ErrNotSISO, nu, ny)
	}

	den, adj := leverrier(ss.A)
	num := make(Poly, len(den))
	for k, m := range adj {
		var cm, cmb mat.Dense
		cm.Mul(ss.C, m)
		cmb.Mul(&cm, ss.B)
		num[k+1] = cmb.At(0, 0)
	}

	d := ss.D.At(0, 0)
	if d != 0 {
		num = num.Add(den.Scale(d))
	}

	return TransferFunction{Num: Trim(num), Den: den}, nil
}

// leverrier runs the Faddeev–LeVerrier recursion. It returns the
// characteristic polynomial of a and the matrices M₁…Mₙ with
// adj(sI - a) = Σ Mₖ·s^(n-k).
func leverrier(a *mat.Dense) (Poly, []*mat.Dense) {
	n, _ := a.Dims()
	coeffs := make(Poly, n+1)
	coeffs[0] = 1
	adj := make([]*mat.Dense, 0, n)

	m := mat.NewDense(n, n, nil)
	for k := 1; k <= n; k++ {
		next := mat.NewDense(n, n, nil)
		if k > 1 {
			next.Mul(a, m)
		}
		for i := 0; i < n; i++ {
			next.Set(i, i, next.At(i, i)+coeffs[k-1])
		}
		m = next
		adj = append(adj, m)

		var am mat.Dense
		am.Mul(a, m)
		coeffs[k] = -mat.Trace(&am) / float64(k)
	}

	return coeffs, adj
}

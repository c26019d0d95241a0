package lti

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Poly is a real polynomial in s, highest power first.
type Poly []float64

// Trim drops leading zero coefficients. The zero polynomial trims to Poly{0}.
func Trim(p []float64) Poly {
	for i, c := range p {
		if c != 0 {
			out := make(Poly, len(p)-i)
			copy(out, p[i:])
			return out
		}
	}
	return Poly{0}
}

func (p Poly) Degree() int {
	return len(Trim(p)) - 1
}

func (p Poly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func (p Poly) Clone() Poly {
	c := make(Poly, len(p))
	copy(c, p)
	return c
}

func (p Poly) Scale(factor float64) Poly {
	result := make(Poly, len(p))
	for i, c := range p {
		result[i] = c * factor
	}
	return result
}

// Add returns p + q, aligning coefficients on the constant term.
func (p Poly) Add(q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	result := make(Poly, n)
	for i := range p {
		result[n-len(p)+i] += p[i]
	}
	for i := range q {
		result[n-len(q)+i] += q[i]
	}
	return result
}

// Mul returns the product p·q.
func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{0}
	}
	result := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			result[i+j] += a * b
		}
	}
	return result
}

// Eval evaluates p at the complex point s using Horner's rule.
func (p Poly) Eval(s complex128) complex128 {
	var v complex128
	for _, c := range p {
		v = v*s + complex(c, 0)
	}
	return v
}

// Roots returns the roots of p as the eigenvalues of its companion matrix,
// sorted by real part and then by imaginary part. Constants have no roots.
func (p Poly) Roots() ([]complex128, error) {
	q := Trim(p)
	n := len(q) - 1
	if n < 1 {
		return nil, nil
	}

	companion := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		companion.Set(0, j, -q[j+1]/q[0])
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, ErrEigen
	}
	roots := eig.Values(nil)
	sortRoots(roots)
	return roots, nil
}

// FromRoots returns the monic polynomial Π(s - r). Imaginary residue left by
// conjugate pairs is discarded.
func FromRoots(roots []complex128) Poly {
	acc := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(acc)+1)
		for i, c := range acc {
			next[i] += c
			next[i+1] -= c * r
		}
		acc = next
	}

	p := make(Poly, len(acc))
	for i, c := range acc {
		p[i] = real(c)
	}
	return p
}

func sortRoots(roots []complex128) {
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) < real(roots[j])
		}
		return imag(roots[i]) < imag(roots[j])
	})
}

// closeRoots reports whether every root in a pairs with a distinct root in b
// within tol, scaled by the root magnitude.
func closeRoots(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, r := range a {
		best := -1
		for j, q := range b {
			if used[j] {
				continue
			}
			if best < 0 || cmplx.Abs(r-q) < cmplx.Abs(r-b[best]) {
				best = j
			}
		}
		if cmplx.Abs(r-b[best]) > tol*maxf(1, cmplx.Abs(r)) {
			return false
		}
		used[best] = true
	}
	return true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

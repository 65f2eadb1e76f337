/*package calc provides some basic calculus routines.
*/
package calc

import (
	"math"
)

const maxQuadDepth = 50

// Quad integrates f over [a, b] with adaptive Simpson quadrature. tol is the
// target absolute error for the whole interval. The returned error estimate
// is the accumulated estimate of the refinement remainder, which is usually
// pessimistic by an order of magnitude or so.
func Quad(f func(float64) float64, a, b, tol float64) (val, errEst float64) {
	fa, fm, fb := f(a), f((a+b)/2), f(b)
	whole := simpson(a, b, fa, fm, fb)
	return quadStep(f, a, b, fa, fm, fb, whole, tol, maxQuadDepth)
}

func simpson(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

func quadStep(
	f func(float64) float64,
	a, b, fa, fm, fb, whole, tol float64, depth int,
) (val, errEst float64) {
	m := (a + b) / 2
	lm, rm := (a+m)/2, (m+b)/2
	flm, frm := f(lm), f(rm)

	left := simpson(a, m, fa, flm, fm)
	right := simpson(m, b, fm, frm, fb)
	delta := left + right - whole

	// Richardson extrapolation: |delta|/15 bounds the error of the refined
	// estimate for a fourth order rule.
	if depth <= 0 || math.Abs(delta) <= 15*tol {
		return left + right + delta/15, math.Abs(delta) / 15
	}

	lval, lerr := quadStep(f, a, m, fa, flm, fm, left, tol/2, depth-1)
	rval, rerr := quadStep(f, m, b, fm, frm, fb, right, tol/2, depth-1)
	return lval + rval, lerr + rerr
}

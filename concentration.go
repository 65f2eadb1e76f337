package commah

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"commah/cosmo"
	"commah/growth"
	"commah/math/calc"
	"commah/perturb"
)

// Concentration bracket for the root solve. Physical halos live well inside
// it.
const (
	cBracketLo = 2
	cBracketHi = 1000
	cSolveTol  = 1e-10
)

// nfwY returns ln(1+c) - c/(1+c), the NFW mass profile shape factor.
func nfwY(c float64) float64 {
	return math.Log(1+c) - c/(1+c)
}

// FormationZ returns the formation redshift of a halo of concentration c
// observed at redshift z: the epoch at which the mean density inside the NFW
// scale radius equalled AScaling times the critical density (Correa et al.
// 2015c eqn 18, rearranged).
func FormationZ(c, z float64, p cosmo.Params) float64 {
	y1 := math.Log(2) - 0.5
	rho2 := 200 * c * c * c * y1 / nfwY(c)

	lm := p.OmegaL / p.OmegaM
	return math.Cbrt((math.Pow(1+z, 3)+lm)*(rho2/p.AScaling)-lm) - 1
}

// residualC is the mismatch between the two sides of Correa et al. (2015c)
// eqn 19 for a trial concentration: the enclosed density ratio the NFW
// profile implies against the mass ratio the accretion history implies at
// the formation redshift of that trial concentration. The correct
// concentration zeroes it.
func residualC(c, z, aTilde, bTilde float64, p cosmo.Params) float64 {
	y1 := math.Log(2) - 0.5
	f1 := y1 / nfwY(c)

	zf := FormationZ(c, z, p)
	f2 := math.Pow(1+zf-z, aTilde) * math.Exp((zf-z)*bTilde)

	return f1 - f2
}

// comResult is the concentration block of one output row.
type comResult struct {
	c, sig, nu, zf float64
	degenerate     bool
}

// com solves the concentration-mass relation for each co-indexed (z, M)
// pair. Unlike mah, the growth indices are refitted at every target epoch
// and mass: the relation is local in (z, M) rather than extrapolated from a
// single starting point. A failed root solve marks only its own row as
// degenerate; the rest of the batch is unaffected.
func com(z, M []float64, p cosmo.Params, log *zap.Logger) ([]comResult, error) {
	if len(z) != len(M) {
		return nil, fmt.Errorf(
			"concentration solve needs co-indexed inputs: len(z) = %d, len(M) = %d",
			len(z), len(M),
		)
	}

	out := make([]comResult, len(z))
	for i := range z {
		aTilde, bTilde, err := calcAB(z[i], M[i], p)
		if err != nil {
			return nil, err
		}

		f := func(c float64) float64 {
			return residualC(c, z[i], aTilde, bTilde, p)
		}
		c, err := calc.Brent(f, cBracketLo, cBracketHi, cSolveTol)
		if err != nil || math.Abs(c) < 1e-8 {
			// Typically the requested mass is too small for the redshift:
			// no concentration in the bracket matches the implied formation
			// epoch.
			log.Warn("concentration solve degenerate",
				zap.Float64("z", z[i]), zap.Float64("M", M[i]))
			out[i] = comResult{c: -1, sig: -1, nu: -1, zf: -1, degenerate: true}
			continue
		}

		zf := FormationZ(c, z[i], p)

		rM := perturb.MassToRadius(M[i], p)
		sig, _, err := perturb.SigmaR(rM, 0, p)
		if err != nil {
			return nil, err
		}
		d, err := growth.Factor(z[i], p, true)
		if err != nil {
			return nil, err
		}
		nu := 1.686 / (sig * d)

		out[i] = comResult{c: c, sig: sig, nu: nu, zf: zf}
	}
	return out, nil
}

package commah

import (
	"math"

	"commah/cosmo"
	"commah/growth"
	"commah/perturb"
)

// calcAB returns the growth rate indices (aTilde, bTilde) describing how the
// mass of a halo of mass Mi grows with redshift near zi. aTilde is the power
// law index, bTilde the exponential index (Correa et al. 2015a eqns 22-23,
// 2015c eqns 9-10).
func calcAB(zi, Mi float64, p cosmo.Params) (aTilde, bTilde float64, err error) {
	// Characteristic formation redshift from the fitted quadratic in
	// log10(Mi) (2015a eqn 23). The z_-2 of the concentration solver is the
	// physically motivated replacement; this one only seeds the progenitor
	// mass fraction.
	logM := math.Log10(Mi)
	zf := -0.0064*logM*logM + 0.0237*logM + 1.8837

	// Progenitor mass fraction scale (2015a eqn 22).
	q := 4.137 * math.Pow(zf, -0.9476)

	rM := perturb.MassToRadius(Mi, p)
	rq := perturb.MassToRadius(Mi/q, p)

	// Mass variance at z = 0 is a good approximation here.
	sig, _, err := perturb.SigmaR(rM, 0, p)
	if err != nil {
		return 0, 0, err
	}
	sigq, _, err := perturb.SigmaR(rq, 0, p)
	if err != nil {
		return 0, 0, err
	}

	f := 1 / math.Sqrt(sigq*sigq-sig*sig)

	d, err := growth.Factor(zi, p, true)
	if err != nil {
		return 0, 0, err
	}
	dd, err := growth.Deriv(zi, p)
	if err != nil {
		return 0, 0, err
	}

	aTilde = (math.Sqrt(2/math.Pi)*1.686*dd/(d*d) + 1) * f
	bTilde = -f
	return aTilde, bTilde, nil
}

package commah

import (
	"math"

	"commah/cosmo"
)

// accRate returns the accretion rate [Msun/yr] and progenitor mass [Msun] at
// redshift z >= zi for a halo of mass Mi at zi, given growth indices fitted
// at zi (Correa et al. 2015c eqns 8 and 11).
func accRate(z, zi, Mi, aTilde, bTilde float64, p cosmo.Params) (dMdt, Mz float64) {
	Mz = Mi * math.Pow(1+z-zi, aTilde) * math.Exp(bTilde*(z-zi))

	dMdt = 71.6 * (Mz / 1e12) * (p.H / 0.7) *
		(-aTilde/(1+z-zi) - bTilde) * (1 + z) *
		cosmo.HubbleFrac(p.OmegaM, p.OmegaL, z)
	return dMdt, Mz
}

// mah evaluates the mass accretion history of a halo of mass Mi at zi over
// the target redshifts z. The growth indices are fitted once at (zi, Mi) and
// reused for every output step, extrapolating forward from that single
// epoch.
func mah(z []float64, zi, Mi float64, p cosmo.Params) (dMdt, Mz []float64, err error) {
	aTilde, bTilde, err := calcAB(zi, Mi, p)
	if err != nil {
		return nil, nil, err
	}

	dMdt = make([]float64, len(z))
	Mz = make([]float64, len(z))
	for i, zv := range z {
		dMdt[i], Mz[i] = accRate(zv, zi, Mi, aTilde, bTilde, p)
	}
	return dMdt, Mz, nil
}

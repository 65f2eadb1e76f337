package commah

import (
	"errors"
	"fmt"
	"math"

	"commah/cosmo"
	"commah/perturb"
)

// ErrUnknownCosmology is returned when a named cosmology is not in the
// catalog.
var ErrUnknownCosmology = errors.New("unrecognized cosmology")

// referenceA is the rho_-2 / rho_crit proportionality constant calibrated
// against the WMAP5 simulations of Correa et al. (2015c); custom cosmologies
// perturb it.
const referenceA = 887.0

// CosmologySpec selects the cosmology a Run call uses: either an entry of
// the named catalog or a fully custom parameter set.
type CosmologySpec struct {
	name   string
	custom *cosmo.Params
}

// Named selects a catalog cosmology by name (case insensitive): DRAGONS,
// WMAP1, WMAP1_lss, WMAP3, WMAP3_mean, WMAP5, WMAP5_ml, WMAP5_lss, WMAP7,
// WMAP7_lss, WMAP9, Planck13 or Planck15.
func Named(name string) CosmologySpec {
	return CosmologySpec{name: name}
}

// Custom selects a user supplied parameter set. OmegaM, OmegaL, Sigma8 and N
// must be set; AScaling is derived from the reference calibration when left
// zero.
func Custom(p cosmo.Params) CosmologySpec {
	return CosmologySpec{custom: &p}
}

// ResolveCosmology turns a CosmologySpec into a fully populated parameter
// record: flatness enforced, AScaling present, and the baryonic effects flag
// set. The record is created once per Run call and never mutated afterwards.
func ResolveCosmology(spec CosmologySpec) (cosmo.Params, error) {
	var p cosmo.Params
	switch {
	case spec.custom != nil:
		p = *spec.custom
		if p.OmegaM <= 0 || p.OmegaL < 0 || p.Sigma8 <= 0 || p.N <= 0 {
			return cosmo.Params{}, fmt.Errorf(
				"custom cosmology needs OmegaM, OmegaL, Sigma8 and N set",
			)
		}
		if p.AScaling == 0 {
			p.AScaling = perturbedA(p)
		}
	case spec.name != "":
		var ok bool
		p, ok = cosmo.Lookup(spec.name)
		if !ok {
			return cosmo.Params{}, fmt.Errorf(
				"%q: %w", spec.name, ErrUnknownCosmology,
			)
		}
	default:
		return cosmo.Params{}, fmt.Errorf(
			"empty cosmology spec: %w", ErrUnknownCosmology,
		)
	}

	p.OmegaK = 0
	p.BaryonicEffects = p.OmegaB > 0
	return p, nil
}

// perturbedA scales the reference AScaling calibration to a non-catalog
// cosmology using the sigma8 and spectral index dependence of Correa et al.
// (2015c) eqn C1. M8 is the mass inside an 8 Mpc sphere at the mean matter
// density.
func perturbedA(p cosmo.Params) float64 {
	m8 := perturb.RadiusToMass(8, p)
	return referenceA * (0.796 / p.Sigma8) *
		math.Pow(m8/2.5e14, (p.N-0.963)/6)
}

/*package growth computes the linear growth factor D(z) and its redshift
derivative for a flat matter + dark energy cosmology, via direct integration
of the growth integral (Correa et al. 2015a, appendix A).*/
package growth

import (
	"errors"
	"fmt"
	"math"

	"commah/cosmo"
	"commah/math/calc"
)

// ZMax is the upper bound of the growth integral. Redshifts at or above it
// are outside the model's domain.
const ZMax = 200

const quadTol = 1e-10

// ErrDomain is returned when a requested redshift lies at or above ZMax.
var ErrDomain = errors.New("redshift outside growth integral domain")

// Integral evaluates the growth integral
//
//	int_z^ZMax (1+z') / (OmegaM (1+z')^3 + OmegaL)^1.5 dz'.
func Integral(z float64, p cosmo.Params) (float64, error) {
	if z >= ZMax {
		return 0, fmt.Errorf("z = %g >= %d: %w", z, ZMax, ErrDomain)
	}

	f := func(zz float64) float64 {
		e2 := p.OmegaM*math.Pow(1+zz, 3) + p.OmegaL
		return (1 + zz) / (e2 * math.Sqrt(e2))
	}
	val, _ := calc.Quad(f, z, ZMax, quadTol)
	return val, nil
}

// Factor returns the linear growth factor D(z) = E(z) * Integral(z). If norm
// is true the result is normalised so that D(0) = 1.
func Factor(z float64, p cosmo.Params, norm bool) (float64, error) {
	ig, err := Integral(z, p)
	if err != nil {
		return 0, err
	}
	d := cosmo.HubbleFrac(p.OmegaM, p.OmegaL, z) * ig

	if norm {
		ig0, err := Integral(0, p)
		if err != nil {
			return 0, err
		}
		d /= ig0
	}
	return d, nil
}

// Deriv returns dD/dz of the normalised growth factor, combining E(z), its
// inverse powers and the growth integral in closed form:
//
//	dD/dz = D E^-2 1.5 OmegaM (1+z)^2 - (1+z) E^-3 D / Integral(z).
func Deriv(z float64, p cosmo.Params) (float64, error) {
	ig, err := Integral(z, p)
	if err != nil {
		return 0, err
	}
	d, err := Factor(z, p, true)
	if err != nil {
		return 0, err
	}

	invH := 1 / cosmo.HubbleFrac(p.OmegaM, p.OmegaL, z)
	fz := (1 + z) * invH * invH * invH
	return d*invH*invH*1.5*p.OmegaM*(1+z)*(1+z) - fz*d/ig, nil
}

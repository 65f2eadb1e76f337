package commah

import (
	"fmt"
	"math"
)

// Cduffy returns the NFW concentration of a halo of mass M [Msun] at
// redshift z from the power law fits of Duffy et al. (2008), table 1. vir
// selects the halo boundary definition ("200crit", "tophat" or "200mean"),
// relaxed selects the relaxed subsample fits over the full sample.
func Cduffy(z, M float64, vir string, relaxed bool) (float64, error) {
	var params [3]float64
	switch vir {
	case "200crit":
		if relaxed {
			params = [3]float64{6.71, -0.091, -0.44}
		} else {
			params = [3]float64{5.71, -0.084, -0.47}
		}
	case "tophat":
		if relaxed {
			params = [3]float64{9.23, -0.090, -0.69}
		} else {
			params = [3]float64{7.85, -0.081, -0.71}
		}
	case "200mean":
		if relaxed {
			params = [3]float64{11.93, -0.090, -0.99}
		} else {
			params = [3]float64{10.14, -0.081, -1.01}
		}
	default:
		return 0, fmt.Errorf(
			"unrecognized halo boundary definition %q", vir,
		)
	}

	// The pivot mass is 2e12/h Msun with the h = 0.72 of the fits.
	return params[0] * math.Pow(M/(2e12/0.72), params[1]) *
		math.Pow(1+z, params[2]), nil
}

package cosmo

import (
	"strings"
)

// The named parameter sets below follow the published CMB analyses the
// accretion model was calibrated against. The AScaling constants are the
// per-cosmology calibrations of Correa et al. (2015c).

// DRAGONS returns the WMAP7 parameter set used by the DRAGONS simulation
// programme.
func DRAGONS() Params {
	return Params{
		OmegaM: 0.275, OmegaL: 0.725, OmegaB: 0.0458, H: 0.702,
		Sigma8: 0.816, N: 0.963,
		YHe: 0.24, T0: 13.76, Tau: 0.088, ZReion: 10.6,
	}
}

// WMAP1Mill returns the WMAP1 parameter set used by the Millennium
// simulation.
func WMAP1Mill() Params {
	return Params{
		OmegaM: 0.25, OmegaL: 0.75, OmegaB: 0.045, H: 0.73,
		Sigma8: 0.9, N: 1.0,
		YHe: 0.24, T0: 13.41, Tau: 0.17, ZReion: 17,
	}
}

// WMAP1LSS returns the WMAP1 + 2dFGRS mean parameter set.
func WMAP1LSS() Params {
	return Params{
		OmegaM: 0.249, OmegaL: 0.751, OmegaB: 0.0418, H: 0.73,
		Sigma8: 0.84, N: 0.966,
		YHe: 0.24, T0: 13.62, Tau: 0.148, ZReion: 16.8,
	}
}

// WMAP3ML returns the WMAP3 maximum likelihood parameter set.
func WMAP3ML() Params {
	return Params{
		OmegaM: 0.238, OmegaL: 0.762, OmegaB: 0.0416, H: 0.732,
		Sigma8: 0.737, N: 0.954,
		YHe: 0.24, T0: 13.72, Tau: 0.091, ZReion: 11.3,
	}
}

// WMAP3Mean returns the WMAP3 mean parameter set.
func WMAP3Mean() Params {
	return Params{
		OmegaM: 0.239, OmegaL: 0.761, OmegaB: 0.0432, H: 0.732,
		Sigma8: 0.761, N: 0.958,
		YHe: 0.24, T0: 13.73, Tau: 0.089, ZReion: 11.0,
	}
}

// WMAP5Mean returns the WMAP5 mean parameter set. This is the reference
// cosmology for the AScaling calibration.
func WMAP5Mean() Params {
	return Params{
		OmegaM: 0.258, OmegaL: 0.742, OmegaB: 0.0462, H: 0.719,
		Sigma8: 0.796, N: 0.963,
		YHe: 0.24, T0: 13.69, Tau: 0.087, ZReion: 11.3,
	}
}

// WMAP5ML returns the WMAP5 maximum likelihood parameter set.
func WMAP5ML() Params {
	return Params{
		OmegaM: 0.249, OmegaL: 0.751, OmegaB: 0.043, H: 0.724,
		Sigma8: 0.787, N: 0.961,
		YHe: 0.24, T0: 13.69, Tau: 0.089, ZReion: 11.2,
	}
}

// WMAP5LSS returns the WMAP5 + BAO + SN mean parameter set.
func WMAP5LSS() Params {
	return Params{
		OmegaM: 0.279, OmegaL: 0.721, OmegaB: 0.0462, H: 0.701,
		Sigma8: 0.817, N: 0.96,
		YHe: 0.24, T0: 13.73, Tau: 0.084, ZReion: 10.8,
	}
}

// WMAP7ML returns the WMAP7 maximum likelihood parameter set.
func WMAP7ML() Params {
	return Params{
		OmegaM: 0.266, OmegaL: 0.734, OmegaB: 0.0449, H: 0.71,
		Sigma8: 0.801, N: 0.963,
		YHe: 0.24, T0: 13.79, Tau: 0.088, ZReion: 10.5,
	}
}

// WMAP7LSS returns the WMAP7 + BAO + H0 mean parameter set.
func WMAP7LSS() Params {
	return Params{
		OmegaM: 0.272, OmegaL: 0.728, OmegaB: 0.0456, H: 0.704,
		Sigma8: 0.809, N: 0.963,
		YHe: 0.24, T0: 13.75, Tau: 0.087, ZReion: 10.4,
	}
}

// WMAP9ML returns the WMAP9 maximum likelihood parameter set.
func WMAP9ML() Params {
	return Params{
		OmegaM: 0.2865, OmegaL: 0.7135, OmegaB: 0.0463, H: 0.6932,
		Sigma8: 0.82, N: 0.9608,
		YHe: 0.24, T0: 13.772, Tau: 0.081, ZReion: 10.1,
	}
}

// Planck2013 returns the Planck 2013 parameter set.
func Planck2013() Params {
	return Params{
		OmegaM: 0.3175, OmegaL: 0.6825, OmegaB: 0.049, H: 0.6711,
		Sigma8: 0.8344, N: 0.9624,
		YHe: 0.24, T0: 13.817, Tau: 0.0925, ZReion: 11.35,
	}
}

// Planck2015 returns the Planck 2015 parameter set.
func Planck2015() Params {
	return Params{
		OmegaM: 0.3089, OmegaL: 0.6911, OmegaB: 0.0486, H: 0.6774,
		Sigma8: 0.8159, N: 0.9667,
		YHe: 0.24, T0: 13.799, Tau: 0.066, ZReion: 8.8,
	}
}

var catalog = map[string]func() Params{
	"dragons":    DRAGONS,
	"wmap1":      WMAP1Mill,
	"wmap1_lss":  WMAP1LSS,
	"wmap3":      WMAP3ML,
	"wmap3_mean": WMAP3Mean,
	"wmap5":      WMAP5Mean,
	"wmap5_ml":   WMAP5ML,
	"wmap5_lss":  WMAP5LSS,
	"wmap7":      WMAP7ML,
	"wmap7_lss":  WMAP7LSS,
	"wmap9":      WMAP9ML,
	"planck13":   Planck2013,
	"planck15":   Planck2015,
}

// AScaling constants from Correa et al. (2015c).
var aScalings = map[string]float64{
	"dragons":    887,
	"wmap1":      853,
	"wmap1_lss":  853,
	"wmap3":      850,
	"wmap3_mean": 850,
	"wmap5":      887,
	"wmap5_ml":   887,
	"wmap5_lss":  887,
	"wmap7":      887,
	"wmap7_lss":  887,
	"wmap9":      950,
	"planck13":   880,
	"planck15":   880,
}

// Lookup returns the named parameter set with its calibrated AScaling
// constant filled in. Names are case insensitive. The second return value
// reports whether the name is in the catalog.
func Lookup(name string) (Params, bool) {
	key := strings.ToLower(name)
	f, ok := catalog[key]
	if !ok {
		return Params{}, false
	}
	p := f()
	p.AScaling = aScalings[key]
	return p, true
}

// Names returns the catalog's cosmology names in no particular order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

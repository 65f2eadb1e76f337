/*package cosmo contains background cosmology parameter records, the catalog
of named cosmologies the accretion model is calibrated for, and a handful of
background density routines.*/
package cosmo

import (
	"math"
)

// Physical constants used to convert between MKS and cosmological units.
const (
	MpcMks  = 3.0856775814913673e+22 // m
	MSunMks = 1.98892e+30            // kg
	GMks    = 6.67408e-11            // m^3 kg^-1 s^-2
)

// Params specifies a flat background cosmology together with the derived
// quantities the accretion model needs. Values are immutable once resolved:
// every numeric routine takes Params by value and never writes to it.
type Params struct {
	OmegaM float64 // total matter density at z = 0, in units of critical
	OmegaL float64 // dark energy density at z = 0
	OmegaK float64 // curvature density, forced to 0 by the resolver
	OmegaB float64 // baryon density at z = 0
	OmegaN float64 // massive neutrino density at z = 0
	H      float64 // H0 / (100 km/s/Mpc)
	Sigma8 float64 // rms mass fluctuation in an 8 Mpc/h sphere at z = 0
	N      float64 // primordial spectral index

	// Auxiliary parameters carried for completeness with the published
	// parameter sets. The engine never reads them and custom cosmologies may
	// leave them zero.
	NNu    float64 // number of massive neutrino species
	YHe    float64 // helium mass fraction
	T0     float64 // age of the universe, Gyr
	Tau    float64 // reionization optical depth
	ZReion float64 // reionization redshift

	// AScaling is the proportionality constant between the NFW inner density
	// rho_-2 and the critical density at formation, calibrated per cosmology.
	AScaling float64
	// BaryonicEffects records whether OmegaB > 0.
	BaryonicEffects bool
}

// HubbleFrac calculates E(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 + k (c/a)**2 = H0**2 h100**2 (OmegaR a**-4 + OmegaM a**-3 + OmegaL).
// Assumes k, r = 0.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}

func rhoCriticalMks(h100, omegaM, omegaL, z float64) float64 {
	H0Mks := (h100 * 100 * 1000) / MpcMks
	H := HubbleFrac(omegaM, omegaL, z) * H0Mks
	return 3.0 * H * H / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe at redshift z
// in Msun Mpc^-3, with no factors of h: the Hubble parameter comes from
// p.H directly.
func (p Params) RhoCritical(z float64) float64 {
	return rhoCriticalMks(p.H, p.OmegaM, p.OmegaL, z) *
		math.Pow(MpcMks, 3) / MSunMks
}

// RhoAverage calculates the average matter density of the universe at
// redshift z in Msun Mpc^-3.
func (p Params) RhoAverage(z float64) float64 {
	return p.RhoCritical(0) * p.OmegaM * math.Pow(1+z, 3.0)
}

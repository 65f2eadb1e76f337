/*package perturb implements the perturbation theory pieces the accretion
model depends on: the Eisenstein & Hu (1998) linear matter power spectrum,
the tophat-filtered mass variance sigma(R), and conversions between halo mass
and comoving Lagrangian radius.

Masses are in Msun, lengths in comoving Mpc, wavenumbers in Mpc^-1: factors
of h are folded in through Params.H, never carried in the units.*/
package perturb

import (
	"math"

	"commah/cosmo"
	"commah/growth"
	"commah/math/calc"
)

// CMB temperature in K, entering the transfer function through
// theta = T_cmb / 2.7.
const tcmb = 2.725

const sigmaQuadTol = 1e-13

// Transfer is the "no wiggle" matter transfer function of Eisenstein & Hu
// (1998), their eqns 26-31: the full baryonic suppression of small scale
// power without the acoustic oscillations. k is in Mpc^-1.
func Transfer(k float64, p cosmo.Params) float64 {
	omh2 := p.OmegaM * p.H * p.H
	obh2 := p.OmegaB * p.H * p.H
	theta := tcmb / 2.7
	fb := p.OmegaB / p.OmegaM

	// Eqn 26: approximate sound horizon, Mpc.
	s := 44.5 * math.Log(9.83/omh2) / math.Sqrt(1+10*math.Pow(obh2, 0.75))
	// Eqn 31: baryon suppression of the apparent shape parameter.
	alpha := 1 - 0.328*math.Log(431*omh2)*fb + 0.38*math.Log(22.3*omh2)*fb*fb
	// Eqn 30.
	gamma := omh2 * (alpha + (1-alpha)/(1+math.Pow(0.43*k*s, 4)))
	// Eqn 28.
	q := k * theta * theta / gamma

	// Eqns 29.
	l := math.Log(2*math.E + 1.8*q)
	c := 14.2 + 731/(1+62.5*q)
	return l / (l + c*q*q)
}

// powerSpectrum returns the unnormalised linear power spectrum k^n T(k)^2 at
// z = 0. The sigma8 normalisation is applied by SigmaR.
func powerSpectrum(k float64, p cosmo.Params) float64 {
	t := Transfer(k, p)
	return math.Pow(k, p.N) * t * t
}

func tophat(x float64) float64 {
	if x < 1e-6 {
		// Series limit, avoids cancellation at small kR.
		return 1 - x*x/10
	}
	return 3 * (math.Sin(x) - x*math.Cos(x)) / (x * x * x)
}

// sigma2Unnorm integrates sigma^2(R) = 1/(2 pi^2) int k^2 P(k) W(kR)^2 dk in
// log k, with P unnormalised. Returns the integral and its error estimate.
func sigma2Unnorm(R float64, p cosmo.Params) (float64, float64) {
	f := func(lnk float64) float64 {
		k := math.Exp(lnk)
		w := tophat(k * R)
		return k * k * k * powerSpectrum(k, p) * w * w
	}
	// The window cuts the integrand off like (kR)^-4 above kR ~ 1, so a few
	// decades beyond that is converged.
	lo, hi := math.Log(1e-7), math.Log(1e3/R)
	val, errEst := calc.Quad(f, lo, hi, sigmaQuadTol)
	return val / (2 * math.Pi * math.Pi), errEst / (2 * math.Pi * math.Pi)
}

// SigmaR returns the rms mass variance sigma inside a comoving tophat of
// radius R [Mpc] at redshift z, along with an estimate of the numerical
// integration error. The spectrum is normalised so that sigma(8/h, 0) is the
// cosmology's Sigma8; redshift dependence enters through the linear growth
// factor.
func SigmaR(R, z float64, p cosmo.Params) (sig, errEst float64, err error) {
	s2, e2 := sigma2Unnorm(R, p)
	s82, _ := sigma2Unnorm(8/p.H, p)
	norm := p.Sigma8 * p.Sigma8 / s82

	d := 1.0
	if z != 0 {
		d, err = growth.Factor(z, p, true)
		if err != nil {
			return 0, 0, err
		}
	}

	sig = math.Sqrt(s2*norm) * d
	errEst = e2 * norm * d * d / (2 * sig)
	return sig, errEst, nil
}

// MassToRadius returns the comoving radius [Mpc] enclosing mass M [Msun] at
// the mean matter density of the universe.
func MassToRadius(M float64, p cosmo.Params) float64 {
	return math.Pow(3*M/(4*math.Pi*p.RhoAverage(0)), 1.0/3)
}

// RadiusToMass returns the mass [Msun] enclosed by a comoving radius R [Mpc]
// at the mean matter density. Inverse of MassToRadius.
func RadiusToMass(R float64, p cosmo.Params) float64 {
	return 4 * math.Pi / 3 * R * R * R * p.RhoAverage(0)
}

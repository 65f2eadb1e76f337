package perturb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commah/cosmo"
)

func wmap5() cosmo.Params {
	p, ok := cosmo.Lookup("wmap5")
	if !ok {
		panic("wmap5 missing from catalog")
	}
	return p
}

func TestTransferLimits(t *testing.T) {
	p := wmap5()
	// T(k) -> 1 on large scales and falls off monotonically.
	assert.InDelta(t, 1.0, Transfer(1e-6, p), 1e-3)

	prev := 2.0
	for _, k := range []float64{1e-4, 1e-3, 1e-2, 0.1, 1, 10} {
		tk := Transfer(k, p)
		assert.Lessf(t, tk, prev, "k = %g", k)
		assert.Positivef(t, tk, "k = %g", k)
		prev = tk
	}
}

func TestSigmaNormalisation(t *testing.T) {
	for _, name := range []string{"wmap5", "planck15", "dragons"} {
		p, ok := cosmo.Lookup(name)
		require.True(t, ok)
		sig, errEst, err := SigmaR(8/p.H, 0, p)
		require.NoError(t, err)
		assert.InEpsilonf(t, p.Sigma8, sig, 1e-5, "cosmology %s", name)
		assert.Lessf(t, errEst, sig*1e-3, "cosmology %s", name)
	}
}

func TestSigmaDecreasesWithRadius(t *testing.T) {
	p := wmap5()
	prev := math.Inf(1)
	for _, r := range []float64{0.1, 0.5, 1, 2, 5, 10, 30} {
		sig, _, err := SigmaR(r, 0, p)
		require.NoError(t, err)
		assert.Lessf(t, sig, prev, "R = %g", r)
		prev = sig
	}
}

func TestSigmaGrowthSuppression(t *testing.T) {
	p := wmap5()
	sig0, _, err := SigmaR(2, 0, p)
	require.NoError(t, err)
	sig1, _, err := SigmaR(2, 1, p)
	require.NoError(t, err)
	assert.Less(t, sig1, sig0)
}

func TestMassRadiusRoundTrip(t *testing.T) {
	p := wmap5()
	for _, m := range []float64{1e8, 1e10, 1e12, 1e14} {
		r := MassToRadius(m, p)
		assert.InEpsilonf(t, m, RadiusToMass(r, p), 1e-12, "M = %g", m)
	}

	// An 8 Mpc sphere at WMAP5 mean density holds roughly 8e13 Msun.
	m8 := RadiusToMass(8, p)
	assert.Greater(t, m8, 5e13)
	assert.Less(t, m8, 1.2e14)
}

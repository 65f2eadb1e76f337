package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commah/cosmo"
)

func testParams() cosmo.Params {
	return cosmo.Params{OmegaM: 0.3, OmegaL: 0.7, H: 0.7, Sigma8: 0.8, N: 0.96}
}

func TestFactorNormalisation(t *testing.T) {
	cosmologies := []cosmo.Params{
		testParams(),
		{OmegaM: 0.258, OmegaL: 0.742, H: 0.719},
		{OmegaM: 0.3089, OmegaL: 0.6911, H: 0.6774},
		{OmegaM: 1, OmegaL: 0, H: 0.7},
	}
	for i, p := range cosmologies {
		d, err := Factor(0, p, true)
		require.NoErrorf(t, err, "cosmology %d", i)
		assert.InDeltaf(t, 1.0, d, 1e-12, "cosmology %d", i)
	}
}

func TestFactorDecreasesWithRedshift(t *testing.T) {
	p := testParams()
	prev := 2.0
	for _, z := range []float64{0, 0.5, 1, 2, 4, 8, 20, 50} {
		d, err := Factor(z, p, true)
		require.NoError(t, err)
		assert.Lessf(t, d, prev, "z = %g", z)
		prev = d
	}
}

func TestFactorEinsteinDeSitter(t *testing.T) {
	// With OmegaM = 1 the normalised growth factor is 1/(1+z) up to the
	// truncation of the integral at ZMax.
	p := cosmo.Params{OmegaM: 1, OmegaL: 0, H: 0.7}
	for _, z := range []float64{0.5, 1, 3, 9} {
		d, err := Factor(z, p, true)
		require.NoError(t, err)
		assert.InEpsilonf(t, 1/(1+z), d, 1e-3, "z = %g", z)
	}
}

func TestDerivMatchesFiniteDifference(t *testing.T) {
	p := testParams()
	const h = 1e-5
	for _, z := range []float64{0, 0.5, 1, 2, 5} {
		dd, err := Deriv(z, p)
		require.NoError(t, err)

		hi, err := Factor(z+h, p, true)
		require.NoError(t, err)
		lo, err := Factor(z-h, p, true)
		require.NoError(t, err)

		num := (hi - lo) / (2 * h)
		assert.InEpsilonf(t, num, dd, 1e-3, "z = %g", z)
		assert.Negativef(t, dd, "z = %g", z)
	}
}

func TestDomainError(t *testing.T) {
	p := testParams()
	for _, z := range []float64{200, 201, 1e4} {
		_, err := Integral(z, p)
		assert.ErrorIsf(t, err, ErrDomain, "z = %g", z)
		_, err = Factor(z, p, true)
		assert.ErrorIsf(t, err, ErrDomain, "z = %g", z)
		_, err = Deriv(z, p)
		assert.ErrorIsf(t, err, ErrDomain, "z = %g", z)
	}
}

package commah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commah/cosmo"
)

func TestResolveNamed(t *testing.T) {
	for _, name := range []string{"planck15", "Planck15", "PLANCK15"} {
		p, err := ResolveCosmology(Named(name))
		require.NoErrorf(t, err, "name %s", name)
		assert.Equal(t, 880.0, p.AScaling)
		assert.Equal(t, 0.0, p.OmegaK)
		assert.True(t, p.BaryonicEffects)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := ResolveCosmology(Named("steady-state"))
	assert.ErrorIs(t, err, ErrUnknownCosmology)

	_, err = ResolveCosmology(CosmologySpec{})
	assert.ErrorIs(t, err, ErrUnknownCosmology)
}

func TestResolveCustom(t *testing.T) {
	// The WMAP5 mean parameters are the reference calibration, so the
	// perturbed AScaling must come back as the reference value: sigma8
	// matches 0.796 exactly and n = 0.963 kills the mass dependent term.
	p, err := ResolveCosmology(Custom(cosmo.Params{
		OmegaM: 0.258, OmegaL: 0.742, OmegaB: 0.0462,
		H: 0.719, Sigma8: 0.796, N: 0.963,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 887.0, p.AScaling, 1e-9)
	assert.True(t, p.BaryonicEffects)

	// A lower sigma8 raises the calibration.
	p2, err := ResolveCosmology(Custom(cosmo.Params{
		OmegaM: 0.258, OmegaL: 0.742,
		H: 0.719, Sigma8: 0.7, N: 0.963,
	}))
	require.NoError(t, err)
	assert.Greater(t, p2.AScaling, p.AScaling)
	assert.False(t, p2.BaryonicEffects)
}

func TestResolveCustomExplicitA(t *testing.T) {
	p, err := ResolveCosmology(Custom(cosmo.Params{
		OmegaM: 0.3, OmegaL: 0.7, H: 0.7, Sigma8: 0.8, N: 0.96,
		AScaling: 900,
	}))
	require.NoError(t, err)
	assert.Equal(t, 900.0, p.AScaling)
}

func TestResolveCustomIncomplete(t *testing.T) {
	_, err := ResolveCosmology(Custom(cosmo.Params{OmegaM: 0.3, OmegaL: 0.7}))
	assert.Error(t, err)
}

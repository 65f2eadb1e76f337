package commah

import (
	"errors"
	"fmt"
)

// ErrAmbiguousInput is returned when zi and Mi are both arrays longer than
// one with different lengths: the pairing of initial redshifts with halo
// masses would be ambiguous.
var ErrAmbiguousInput = errors.New(
	"ambiguous input: need one redshift per halo mass, or a single shared value",
)

// reconcileInput aligns the initial redshift and halo mass inputs into
// slices of equal length, broadcasting a length-1 input over the other.
func reconcileInput(zi, Mi []float64) (ziOut, miOut []float64, err error) {
	switch {
	case len(zi) == 0 || len(Mi) == 0:
		return nil, nil, fmt.Errorf("zi and Mi may not be empty")
	case len(zi) > 1 && len(Mi) > 1 && len(zi) != len(Mi):
		return nil, nil, fmt.Errorf(
			"len(zi) = %d, len(Mi) = %d: %w", len(zi), len(Mi), ErrAmbiguousInput,
		)
	case len(zi) == 1 && len(Mi) > 1:
		return broadcast(zi[0], len(Mi)), Mi, nil
	case len(Mi) == 1 && len(zi) > 1:
		return zi, broadcast(Mi[0], len(zi)), nil
	}
	return zi, Mi, nil
}

func broadcast(x float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// targetRedshifts filters the requested output redshifts down to those at or
// above the sample's initial redshift. An empty request means "evaluate at
// zi only".
func targetRedshifts(zi float64, z []float64) []float64 {
	if len(z) == 0 {
		return []float64{zi}
	}
	out := []float64{}
	for _, zv := range z {
		if zv >= zi {
			out = append(out, zv)
		}
	}
	return out
}

package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadClosedForms(t *testing.T) {
	tests := []struct {
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{func(x float64) float64 { return x * x }, 0, 1, 1.0 / 3},
		{func(x float64) float64 { return x * x * x }, -2, 2, 0},
		{math.Cos, 0, math.Pi / 2, 1},
		{math.Exp, 0, 1, math.E - 1},
		{func(x float64) float64 { return math.Exp(-x) }, 0, 50, 1},
		{func(x float64) float64 { return 1 / x }, 1, math.E, 1},
	}

	for i, test := range tests {
		got, errEst := Quad(test.f, test.a, test.b, 1e-10)
		assert.InDeltaf(t, test.want, got, 1e-8, "integral %d", i)
		assert.Lessf(t, errEst, 1e-6, "error estimate %d", i)
	}
}

func TestQuadPeaked(t *testing.T) {
	// A narrow Gaussian inside a wide interval forces deep refinement near
	// the peak only.
	f := func(x float64) float64 {
		return math.Exp(-(x - 3) * (x - 3) * 1e4)
	}
	got, _ := Quad(f, 0, 6, 1e-12)
	want := math.Sqrt(math.Pi) / 100
	assert.InEpsilon(t, want, got, 1e-6)
}

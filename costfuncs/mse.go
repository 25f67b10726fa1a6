package costfuncs

import (
	"github.com/pkg/errors"
)

type mse int8

// MSE returns the mean squared error cost, Σ(out - target)² / n.
func MSE() mse {
	return mse(0)
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, errors.Errorf("Can't get Cost() of 'mse', len(outs) != len(targets) (%d != %d)", len(outs), len(targets))
	}

	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += d * d
	}

	return sum / float64(len(outs)), nil
}

func (m mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = 2 * (outs[i] - targets[i]) / float64(len(outs))
	}

	return ds
}

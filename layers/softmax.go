package layers

import (
	"math"

	"github.com/pkg/errors"
)

type softmax struct {
	out []float64
}

// Softmax returns the exponential-normalized distribution over its inputs:
// outputs are positive and sum to 1. Inputs are shifted by their maximum
// before exponentiating, which changes nothing mathematically but keeps
// large scores from overflowing.
func Softmax() *softmax {
	return new(softmax)
}

func (s *softmax) TypeString() string {
	return "softmax"
}

func (s *softmax) Finalize(inDims []int) ([]int, error) {
	if len(inDims) == 0 {
		return nil, errors.Errorf("softmax has no input dimensions")
	}

	size := 1
	for _, d := range inDims {
		size *= d
	}
	s.out = make([]float64, size)

	return inDims, nil
}

func (s *softmax) Evaluate(inputs []float64) []float64 {
	max := inputs[0]
	for _, in := range inputs[1:] {
		if in > max {
			max = in
		}
	}

	var sum float64
	for i, in := range inputs {
		s.out[i] = math.Exp(in - max)
		sum += s.out[i]
	}

	for i := range s.out {
		s.out[i] /= sum
	}

	return s.out
}

func (s *softmax) InputDeltas(deltas []float64) []float64 {
	// full softmax Jacobian: ds_i = out_i * (delta_i - Σ_j delta_j*out_j)
	var dot float64
	for j, d := range deltas {
		dot += d * s.out[j]
	}

	ds := make([]float64, len(deltas))
	for i, d := range deltas {
		ds[i] = s.out[i] * (d - dot)
	}

	return ds
}

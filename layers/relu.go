package layers

import "github.com/pkg/errors"

type relu struct {
	in  []float64
	out []float64
}

// ReLU returns the standard rectified linear unit, max(0, x), applied
// elementwise.
func ReLU() *relu {
	return new(relu)
}

func (r *relu) TypeString() string {
	return "relu"
}

func (r *relu) Finalize(inDims []int) ([]int, error) {
	if len(inDims) == 0 {
		return nil, errors.Errorf("relu has no input dimensions")
	}

	size := 1
	for _, d := range inDims {
		size *= d
	}
	r.out = make([]float64, size)

	return inDims, nil
}

func (r *relu) Evaluate(inputs []float64) []float64 {
	r.in = inputs
	for i, in := range inputs {
		if in > 0 {
			r.out[i] = in
		} else {
			r.out[i] = 0
		}
	}

	return r.out
}

func (r *relu) InputDeltas(deltas []float64) []float64 {
	ds := make([]float64, len(deltas))
	for i, d := range deltas {
		if r.in[i] > 0 {
			ds[i] = d
		}
	}

	return ds
}

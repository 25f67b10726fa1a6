package layers

import "github.com/pkg/errors"

type flatten struct {
	size int
}

// Flatten collapses an image-shaped output into a single dimension, so that a
// fully-connected layer can follow. The values pass through untouched; only
// the shape changes.
func Flatten() *flatten {
	return new(flatten)
}

func (f *flatten) TypeString() string {
	return "flatten"
}

func (f *flatten) Finalize(inDims []int) ([]int, error) {
	if len(inDims) == 0 {
		return nil, errors.Errorf("flatten has no input dimensions")
	}

	f.size = 1
	for _, d := range inDims {
		f.size *= d
	}

	return []int{f.size}, nil
}

func (f *flatten) Evaluate(inputs []float64) []float64 {
	return inputs
}

func (f *flatten) InputDeltas(deltas []float64) []float64 {
	return deltas
}

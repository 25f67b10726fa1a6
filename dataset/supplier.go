package dataset

import (
	"github.com/pkg/errors"

	fn "github.com/shubhambhokare1/FoodNet"
)

// Supplier feeds a Split to a Network: pixels scaled into [0, 1] and labels
// one-hot encoded to the full class count. It implements
// foodnet.DataSupplier.
type Supplier struct {
	inputs, targets [][]float64
}

// Supplier preprocesses the Split once, up front. numClasses fixes the
// one-hot width and must come from the class dictionary.
func (s *Split) Supplier(numClasses int) (*Supplier, error) {
	if s.Len() == 0 {
		return nil, errors.Errorf("Split has no samples")
	}

	targets, err := OneHot(s.Labels, numClasses)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't one-hot encode labels")
	}

	return &Supplier{
		inputs:  Scale(s.Images),
		targets: targets,
	}, nil
}

// Len is the number of samples available.
func (s *Supplier) Len() int {
	return len(s.inputs)
}

// Get returns the i'th preprocessed sample.
func (s *Supplier) Get(i int) (fn.Datum, error) {
	if i < 0 || i >= len(s.inputs) {
		return fn.Datum{}, errors.Errorf("Sample index %d out of range [0, %d)", i, len(s.inputs))
	}

	return fn.Datum{Inputs: s.inputs[i], Outputs: s.targets[i]}, nil
}

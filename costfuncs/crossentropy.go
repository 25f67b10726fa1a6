// Package costfuncs provides the CostFunctions used to score foodnet
// Networks.
package costfuncs

import (
	"math"

	"github.com/pkg/errors"
)

// logEps keeps log() and the derivative's division away from zero when an
// output probability collapses.
const logEps = 1e-12

type crossEntropy int8

// CrossEntropy returns the categorical cross-entropy cost, -Σ target·log(out).
// It expects the outputs to already be a probability distribution, i.e. a
// softmax layer at the top of the stack.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, errors.Errorf("Can't get Cost() of 'cross-entropy', len(outs) != len(targets) (%d != %d)", len(outs), len(targets))
	}

	var sum float64
	for i := range outs {
		if targets[i] == 0 {
			continue
		}

		sum -= targets[i] * math.Log(math.Max(outs[i], logEps))
	}

	return sum, nil
}

func (c crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if targets[i] == 0 {
			continue
		}

		ds[i] = -targets[i] / math.Max(outs[i], logEps)
	}

	return ds
}

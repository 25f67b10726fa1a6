package initializers

import (
	"math"
	"math/rand"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling Initializer, which draws from
// a truncated normal whose standard deviation shrinks with the size of the
// layer. It has 3 modes - In, Out, and Avg - and a user-defined scaling
// factor ("varscl-factor" by default). It defaults to Avg.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{defaultVarianceMode, defaultValue["varscl-factor"]}
}

// Xavier is VarianceScaling in its Avg mode, under the name everyone knows
// it by.
func Xavier() *varianceScaling {
	return VarianceScaling().Avg()
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of input values per unit.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the number of output values per unit.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the numbers of input
// and output values per unit.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

func (v *varianceScaling) TypeString() string {
	return "variance-scaling"
}

func (v *varianceScaling) Set(rng *rand.Rand, fanIn, fanOut int, ws []float64) {
	var scale float64
	if v.mode == "in" {
		scale = float64(fanIn)
	} else if v.mode == "out" {
		scale = float64(fanOut)
	} else { // must be "avg"
		scale = float64(fanIn+fanOut) / 2
	}

	gen := TruncNormal()
	gen.SD(math.Sqrt(v.factor / scale))
	gen.Set(rng, fanIn, fanOut, ws)
}

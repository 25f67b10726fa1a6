package layers

import (
	"github.com/pkg/errors"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/utils"
)

type dense struct {
	// Size is the number of output neurons.
	Size int `json:"size"`

	init fn.Initializer

	// number of inputs; each neuron has numIn weights plus a bias, stored
	// row by row with the bias at the end of the row.
	numIn int

	ws, gs []float64
	in     []float64
	out    []float64
}

// Dense returns a fully-connected layer of the given size. Inputs of any
// shape are accepted and treated as flat.
func Dense(size int) *dense {
	return &dense{Size: size}
}

// Init sets the Initializer for this layer's weights, overriding the
// Network's default.
func (d *dense) Init(init fn.Initializer) *dense {
	d.init = init
	return d
}

func (d *dense) TypeString() string {
	return "dense"
}

func (d *dense) Finalize(inDims []int) ([]int, error) {
	if d.Size < 1 {
		return nil, errors.Errorf("dense must have size >= 1 (%d)", d.Size)
	} else if len(inDims) == 0 {
		return nil, errors.Errorf("dense has no input dimensions")
	}

	d.numIn = 1
	for _, dim := range inDims {
		d.numIn *= dim
	}

	d.ws = make([]float64, d.Size*(d.numIn+1))
	d.gs = make([]float64, len(d.ws))
	d.out = make([]float64, d.Size)

	return []int{d.Size}, nil
}

func (d *dense) Evaluate(inputs []float64) []float64 {
	d.in = inputs

	calculateValue := func(j int) {
		row := j * (d.numIn + 1)

		var sum float64
		for i, in := range inputs {
			sum += d.ws[row+i] * in
		}

		d.out[j] = sum + d.ws[row+d.numIn]*biasValue
	}

	opsPerThread, threadsPerCPU := 1, 1
	utils.MultiThread(0, d.Size, calculateValue, opsPerThread, threadsPerCPU)

	return d.out
}

func (d *dense) InputDeltas(deltas []float64) []float64 {
	ds := make([]float64, d.numIn)

	for j, delta := range deltas {
		row := j * (d.numIn + 1)

		for i := 0; i < d.numIn; i++ {
			ds[i] += d.ws[row+i] * delta
			d.gs[row+i] += d.in[i] * delta
		}

		d.gs[row+d.numIn] += delta * biasValue
	}

	return ds
}

func (d *dense) Weights() []float64 {
	return d.ws
}

func (d *dense) Grads() []float64 {
	return d.gs
}

func (d *dense) ClearGrads() {
	for i := range d.gs {
		d.gs[i] = 0
	}
}

func (d *dense) FanIn() int {
	return d.numIn
}

func (d *dense) FanOut() int {
	return d.Size
}

func (d *dense) Initializer() fn.Initializer {
	return d.init
}

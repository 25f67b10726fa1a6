package foodnet

import "math/rand"

// Layer is the interface for the stages of a sequential Network: layers with
// weights (convolutions, fully-connected layers) and elementwise activations
// alike. Layers are stacked in order by *Network.Add.
//
// The pipeline is strictly sequential, so implementations are free to memoize
// whatever Evaluate sees for use by InputDeltas; no Layer method is ever
// called concurrently for the same Layer.
type Layer interface {
	// TypeString returns the string corresponding to the type of the Layer.
	// For example: the convolution Layer returns "conv". It is the key under
	// which the type is registered for reconstruction from file.
	TypeString() string

	// Finalize checks the Layer's configuration against the dimensions of its
	// input, allocates whatever the Layer needs, and returns the dimensions
	// of its output. Image-shaped dimensions are given as
	// {channels, width, height}, with channels oscillating fastest in the
	// backing slice.
	//
	// Finalize will always be run before any other method, and only once.
	Finalize(inDims []int) (outDims []int, err error)

	// Evaluate computes the Layer's output values from its inputs. The
	// returned slice is owned by the Layer and is only valid until the next
	// call to Evaluate.
	Evaluate(inputs []float64) []float64

	// InputDeltas takes the derivative of the total cost w.r.t. each of the
	// Layer's outputs and returns the derivative w.r.t. each of its inputs.
	// Layers with weights also accumulate their parameter gradients here.
	//
	// InputDeltas must only be called directly after an Evaluate of the same
	// sample.
	InputDeltas(deltas []float64) []float64
}

// Adjustable is the subset of Layers that carry trainable parameters.
type Adjustable interface {
	Layer

	// Weights returns the Layer's parameters as a flat slice, biases
	// included. The slice is the backing storage; writes to it move the
	// actual weights.
	Weights() []float64

	// Grads returns the parameter gradients accumulated by InputDeltas since
	// the last ClearGrads, aligned with Weights.
	Grads() []float64

	// ClearGrads zeroes the accumulated gradients, at the end of a batch.
	ClearGrads()

	// FanIn and FanOut report the effective number of inputs and outputs per
	// unit, for use by variance-scaling initialization.
	FanIn() int
	FanOut() int

	// Initializer returns the Layer's own Initializer, or nil if the
	// Network's default should be used.
	Initializer() Initializer
}

// Optimizer is the interface for weight-update rules. A single Optimizer
// serves every Adjustable in a Network; any per-layer state (momentum
// velocities, for instance) is keyed by the Layer itself.
type Optimizer interface {
	// Run is called once per batch per Adjustable to suggest changes to each
	// weight, given: the host layer, the number of weights, the averaged
	// gradient at an index, a function to add to the weight at an index, and
	// a learning-rate.
	Run(l Adjustable, size int, grad func(int) float64, add func(int, float64), learningRate float64) error

	// TypeString returns the string corresponding to the type of the
	// Optimizer. For example: "sgd".
	TypeString() string
}

// CostFunction scores Network outputs against their targets and provides the
// derivatives that seed backpropagation.
//
// Implementations can assume that outputs and targets have the same length
// and contain no NaNs or Infs.
type CostFunction interface {
	TypeString() string

	// Cost returns the scalar cost of the given outputs.
	Cost(outs, targets []float64) (float64, error)

	// Derivs returns the derivative of the cost w.r.t. each output.
	Derivs(outs, targets []float64) []float64
}

// HyperParameter provides a training value as a function of the number of
// weight updates performed so far, so that schedules (learning-rate decay and
// the like) need no extra bookkeeping in the training loop.
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}

// Initializer dictates how the weights of an Adjustable are set before
// training, given the layer's fan-in and fan-out and a blank slice to hold
// weights. The provided rand.Rand is seeded by the Network so that runs are
// reproducible.
type Initializer interface {
	TypeString() string
	Set(rng *rand.Rand, fanIn, fanOut int, ws []float64)
}

// Penalty augments parameter gradients with a regularization term. It is
// applied to the averaged batch gradient of every weight, just before the
// Optimizer runs.
type Penalty interface {
	TypeString() string

	// Penalize returns the penalized gradient for a weight, given the
	// weight's current value and its raw gradient.
	Penalize(weight, grad float64) float64
}

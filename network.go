package foodnet

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// New returns an empty Network expecting inputs with the given dimensions.
// Image-shaped inputs are given as {channels, width, height}; a bare vector as
// a single dimension.
//
// The Network is seeded from the clock; call Seed for reproducible runs.
func New(inDims ...int) *Network {
	net := &Network{
		inDims:      inDims,
		hyperParams: make(map[string]HyperParameter),
		seed:        time.Now().UnixNano(),
	}

	if len(inDims) == 0 {
		net.setError(errors.Errorf("Network must have at least one input dimension"))
		return net
	}

	size := 1
	for i, d := range inDims {
		if d < 1 {
			net.setError(errors.Errorf("Input dimension %d must be >= 1 (%d)", i, d))
			return net
		}
		size *= d
	}

	net.inSize = size
	return net
}

// Seed fixes the source used for weight initialization and batch shuffling so
// that training runs are reproducible. Seed must be called before Finalize.
func (net *Network) Seed(seed int64) *Network {
	if net.stat >= finalized {
		net.setError(errors.Errorf("Can't seed Network, it has already been finalized"))
		return net
	}

	net.seed = seed
	return net
}

// Add appends a Layer to the end of the stack. The name of each layer must be
// unique, cannot be "", and cannot contain a double-quote (").
//
// Add returns the Network to allow chaining; errors are deferred to Error(),
// in the same way as much of the rest of construction.
func (net *Network) Add(name string, l Layer) *Network {
	if net.err != nil {
		return net
	}

	if net.stat >= finalized {
		net.setError(errors.Errorf("Can't add Layer %q, Network has finished construction", name))
		return net
	} else if l == nil {
		net.setError(errors.Errorf("Can't add Layer %q, Layer is nil", name))
		return net
	} else if name == "" {
		net.setError(errors.Errorf(`Layer name cannot be ""`))
		return net
	} else if strings.Contains(name, `"`) {
		net.setError(errors.Errorf(`Layer name %s contains illegal character: "`, name))
		return net
	}

	for _, n := range net.names {
		if n == name {
			net.setError(errors.Errorf("Layer name %q is already taken", name))
			return net
		}
	}

	net.layers = append(net.layers, l)
	net.names = append(net.names, name)
	return net
}

// DefaultInit sets the Initializer used for every Adjustable layer that does
// not carry its own.
func (net *Network) DefaultInit(init Initializer) *Network {
	net.defaultInit = init
	return net
}

// AddHP registers a HyperParameter under the given name. The only name the
// training loop requires is "learning-rate".
func (net *Network) AddHP(name string, hp HyperParameter) *Network {
	if hp == nil {
		net.setError(NilArgError{"HyperParameter"})
		return net
	}

	net.hyperParams[name] = hp
	return net
}

// Penalize sets the Penalty applied to every parameter gradient during
// training. Providing nil removes any penalty.
func (net *Network) Penalize(p Penalty) *Network {
	net.pen = p
	return net
}

// PanicErrors makes all construction errors panic instead of being stored.
func (net *Network) PanicErrors() *Network {
	net.panicErrors = true
	return net
}

// Error returns any error encountered while constructing the Network. This
// method will always return nil after the Network has been successfully
// finalized.
func (net *Network) Error() error {
	return net.err
}

// Finalize finishes construction of the Network: it threads the input
// dimensions through every Layer's Init, initializes all weights, and attaches
// the cost function and optimizer used for training. After Finalize, no more
// Layers can be added.
//
// A Network that is only used for inference after Load does not go through
// Finalize.
func (net *Network) Finalize(cf CostFunction, opt Optimizer) error {
	if net.err != nil {
		return net.err
	} else if cf == nil {
		return NilArgError{"CostFunction"}
	}

	if err := net.build(true); err != nil {
		return err
	}

	net.cf = cf
	net.opt = opt
	return nil
}

// build runs the Init chain and, if initWeights is set, initializes the
// weights of every Adjustable. It is shared between Finalize and Load.
func (net *Network) build(initWeights bool) error {
	if net.stat >= finalized {
		return errors.Errorf("Network has already been finalized")
	} else if len(net.layers) == 0 {
		return errors.Errorf("Can't finalize Network, it has no layers")
	}

	net.rng = rand.New(rand.NewSource(net.seed))

	dims := net.inDims
	for i, l := range net.layers {
		out, err := l.Finalize(dims)
		if err != nil {
			return errors.Wrapf(err, "Finalizing layer %q (#%d) failed", net.names[i], i)
		}

		dims = out
	}

	net.outSize = 1
	for _, d := range dims {
		net.outSize *= d
	}

	if initWeights {
		for i, l := range net.layers {
			a, ok := l.(Adjustable)
			if !ok {
				continue
			}

			init := a.Initializer()
			if init == nil {
				init = net.defaultInit
			}
			if init == nil {
				init = defaultInitializer
			}
			if init == nil {
				return errors.Errorf("Layer %q needs an Initializer and no default is set "+
					`(is the subpackage "initializers" imported?)`, net.names[i])
			}

			init.Set(net.rng, a.FanIn(), a.FanOut(), a.Weights())
		}
	}

	net.stat = finalized
	return nil
}

// InputDims returns a copy of the dimensions the Network expects its inputs
// in.
func (net *Network) InputDims() []int {
	ds := make([]int, len(net.inDims))
	copy(ds, net.inDims)
	return ds
}

// InputSize returns the total number of expected input values to the Network.
func (net *Network) InputSize() int {
	return net.inSize
}

// OutputSize returns the total number of output values of the Network. If the
// Network has not been finalized yet, OutputSize will return -1.
func (net *Network) OutputSize() int {
	if net.stat < finalized {
		return -1
	}

	return net.outSize
}

// forward runs one pass through the stack. The returned slice is owned by the
// final Layer.
func (net *Network) forward(inputs []float64) []float64 {
	vs := inputs
	for _, l := range net.layers {
		vs = l.Evaluate(vs)
	}

	return vs
}

// backward seeds the stack with the cost derivatives and propagates them to
// the inputs, accumulating parameter gradients along the way.
func (net *Network) backward(deltas []float64) {
	for i := len(net.layers) - 1; i >= 0; i-- {
		deltas = net.layers[i].InputDeltas(deltas)
	}
}

// GetOutputs returns a copy of the Network's output values for the given
// inputs. There are two error conditions:
//	(0) If the Network has not been finalized: ErrNotFinalized,
//	(1) If the number of inputs doesn't match the total size: type SizeMismatchError.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if net.stat < finalized {
		return nil, ErrNotFinalized
	} else if len(inputs) != net.inSize {
		return nil, SizeMismatchError{net.inSize, len(inputs), "inputs"}
	}

	outs := net.forward(inputs)

	cp := make([]float64, len(outs))
	copy(cp, outs)
	return cp, nil
}

// Predict runs one forward pass and returns the index of the highest output
// alongside a copy of the full output distribution.
func (net *Network) Predict(inputs []float64) (class int, outs []float64, err error) {
	if outs, err = net.GetOutputs(inputs); err != nil {
		return -1, nil, errors.Wrapf(err, "Getting outputs failed")
	}

	return ArgMax(outs), outs, nil
}

// learningRate fetches the "learning-rate" HyperParameter's value for the
// current iteration.
func (net *Network) learningRate() (float64, error) {
	hp := net.hyperParams["learning-rate"]
	if hp == nil {
		return 0, errors.Errorf(`Network has no "learning-rate" HyperParameter`)
	}

	return hp.Value(net.iter), nil
}

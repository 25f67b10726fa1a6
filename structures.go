package foodnet

import (
	"math/rand"
)

// Network is a sequential stack of Layers mapping a fixed-size input to a
// probability distribution over classes. A Network is more of a containing
// structure than it actually stores information; the interesting state lives
// in its Layers.
type Network struct {
	// the stack, in evaluation order, with the user-supplied name of each
	layers []Layer
	names  []string

	// dimensions of the input, as given to New
	inDims []int

	// total number of input and output values. outSize is only valid once the
	// Network has been finalized.
	inSize, outSize int

	cf  CostFunction
	opt Optimizer
	pen Penalty

	defaultInit Initializer
	hyperParams map[string]HyperParameter

	// seeded source for weight initialization and batch shuffling
	seed int64
	rng  *rand.Rand

	// number of weight updates performed so far, across training runs. Fed to
	// HyperParameters.
	iter int

	// whether or not the network should panic when it encounters an error
	panicErrors bool

	err error

	stat status
}

type status int8

const (
	initialized status = iota // 0
	finalized                 // 1
	training                  // 2
	stopped                   // 3
)

// setError sets the Network's stored error to the error provided. If
// net.panicErrors is true, setError will additionally panic the error it is
// given.
func (net *Network) setError(e error) {
	net.err = e
	if net.panicErrors {
		panic(e)
	}
}

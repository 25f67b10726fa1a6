// Package optimizers provides the weight-update rules for foodnet Networks.
package optimizers

import (
	fn "github.com/shubhambhokare1/FoodNet"
)

type sgd struct {
	momentum float64

	// one velocity slice per layer the optimizer has seen
	vel map[fn.Adjustable][]float64
}

// SGD returns plain stochastic gradient descent, available as a
// foodnet.Optimizer. Momentum can be chained to add classical (non-Nesterov)
// momentum; with the default of 0 every update is just -lr * gradient.
func SGD() *sgd {
	return &sgd{vel: make(map[fn.Adjustable][]float64)}
}

// Momentum sets the fraction of the previous update carried into the next
// one. The usual value is 0.9.
func (s *sgd) Momentum(m float64) *sgd {
	s.momentum = m
	return s
}

func (s *sgd) TypeString() string {
	return "sgd"
}

func (s *sgd) Run(l fn.Adjustable, size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	if s.momentum == 0 {
		for i := 0; i < size; i++ {
			add(i, -1*learningRate*grad(i))
		}

		return nil
	}

	v := s.vel[l]
	if v == nil {
		v = make([]float64, size)
		s.vel[l] = v
	}

	for i := 0; i < size; i++ {
		v[i] = s.momentum*v[i] - learningRate*grad(i)
		add(i, v[i])
	}

	return nil
}

// Package penalties provides weight-regularization Penalties for foodnet
// Networks. A Penalty adjusts each parameter gradient before the optimizer
// runs; attach one with *Network.Penalize.
package penalties

import "math"

// **********************************************
// L1 (Lasso)
// **********************************************

type l1 float64

// L1 returns the lasso penalty. lambda is a small value close to 0 where
// lambda > 0.
func L1(lambda float64) *l1 {
	p := l1(lambda)
	return &p
}

// Lasso is L1, by its other name.
func Lasso(lambda float64) *l1 {
	return L1(lambda)
}

func (p *l1) TypeString() string {
	return "l1-lasso"
}

func (p *l1) Penalize(weight, grad float64) float64 {
	lambda := float64(*p)
	return grad + lambda*math.Copysign(1, weight)
}

// **********************************************
// L2 (Ridge)
// **********************************************

type l2 float64

// L2 returns the ridge penalty, the usual "weight decay". lambda is a small
// value close to 0 where lambda > 0.
func L2(lambda float64) *l2 {
	p := l2(lambda)
	return &p
}

// Ridge is L2, by its other name.
func Ridge(lambda float64) *l2 {
	return L2(lambda)
}

func (p *l2) TypeString() string {
	return "l2-ridge"
}

func (p *l2) Penalize(weight, grad float64) float64 {
	lambda := float64(*p)
	return grad + 2*lambda*weight
}

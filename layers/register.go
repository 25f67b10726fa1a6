// Package layers provides the Layer implementations used to build foodnet
// Networks: convolution, max-pooling, flatten, fully-connected, and the ReLU
// and softmax activations.
package layers

import (
	fn "github.com/shubhambhokare1/FoodNet"
)

func init() {
	list := map[string]func() fn.Layer{
		Conv().TypeString():    func() fn.Layer { return Conv() },
		MaxPool().TypeString(): func() fn.Layer { return MaxPool() },
		Flatten().TypeString(): func() fn.Layer { return Flatten() },
		Dense(0).TypeString():  func() fn.Layer { return Dense(0) },
		ReLU().TypeString():    func() fn.Layer { return ReLU() },
		Softmax().TypeString(): func() fn.Layer { return Softmax() },
	}

	for s, f := range list {
		if err := fn.RegisterLayer(s, f); err != nil {
			panic(err.Error())
		}
	}
}

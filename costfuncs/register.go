package costfuncs

import (
	fn "github.com/shubhambhokare1/FoodNet"
)

func init() {
	list := map[string]func() fn.CostFunction{
		CrossEntropy().TypeString(): func() fn.CostFunction { return CrossEntropy() },
		MSE().TypeString():          func() fn.CostFunction { return MSE() },
	}

	for s, f := range list {
		if err := fn.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}

package main

import (
	"github.com/pkg/errors"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/costfuncs"
	"github.com/shubhambhokare1/FoodNet/hyperparams"
	"github.com/shubhambhokare1/FoodNet/initializers"
	"github.com/shubhambhokare1/FoodNet/layers"
	"github.com/shubhambhokare1/FoodNet/optimizers"
	"github.com/shubhambhokare1/FoodNet/penalties"
)

// buildNetwork assembles and finalizes the classifier:
//
//	conv 32×(5,5), same padding, ReLU
//	max-pool (2,2)
//	conv 64×(5,5), same padding, ReLU
//	flatten
//	dense → numClasses, softmax
//
// trained with momentum SGD, cross-entropy, and a learning rate decaying by
// rate/epochs per update.
func buildNetwork(cfg *Config, numClasses int) (*fn.Network, error) {
	if numClasses < 2 {
		return nil, errors.Errorf("Need at least 2 classes (%d)", numClasses)
	}

	net := fn.New(3, cfg.Side, cfg.Side).DefaultInit(initializers.Xavier())
	if cfg.Seed != 0 {
		net.Seed(cfg.Seed)
	}

	net.Add("conv-1", layers.Conv().Filters(32).Filter(5, 5).SamePad()).
		Add("relu-1", layers.ReLU()).
		Add("pool-1", layers.MaxPool().Filter(2, 2)).
		Add("conv-2", layers.Conv().Filters(64).Filter(5, 5).SamePad()).
		Add("relu-2", layers.ReLU()).
		Add("flatten", layers.Flatten()).
		Add("dense", layers.Dense(numClasses)).
		Add("softmax", layers.Softmax())

	net.AddHP("learning-rate",
		hyperparams.Decay(cfg.LearningRate, cfg.LearningRate/float64(cfg.Epochs)))

	if cfg.WeightDecay > 0 {
		net.Penalize(penalties.L2(cfg.WeightDecay))
	}

	if err := net.Finalize(costfuncs.CrossEntropy(), optimizers.SGD().Momentum(cfg.Momentum)); err != nil {
		return nil, errors.Wrapf(err, "Couldn't finalize network")
	}

	return net, nil
}

// Package foodnet is a small framework for training convolutional image
// classifiers, built around a sequential stack of layers.
//
// Creating Networks
//
// The center of everything is the Network, created with the dimensions of its
// input:
//
//	net := foodnet.New(3, 32, 32)
//
// Networks are built by stacking layers in order. Each layer is constructed in
// the subpackage "layers", usually with chained configuration methods:
//
//	net.Add("conv-1", layers.Conv().Filters(32).Filter(5, 5).SamePad())
//	net.Add("relu-1", layers.ReLU())
//	net.Add("pool-1", layers.MaxPool().Filter(2, 2))
//
//	if net.Error() != nil {
//		return net.Error()
//	}
//
// Layers with weights require an Initializer, either set per-layer or through
// DefaultInit; the subpackage "initializers" provides the usual suspects. The
// Network is finished by providing a cost function and an optimizer:
//
//	net.AddHP("learning-rate", hyperparams.Constant(0.001))
//	err := net.Finalize(costfuncs.CrossEntropy(), optimizers.SGD().Momentum(0.9))
//
// costfuncs, optimizers, hyperparams, initializers, and penalties are - of
// course - subpackages of foodnet.
//
// Training and Testing
//
// Training is driven by the type TrainArgs, used as a proxy for the optional
// arguments available in other languages. Samples are provided through the
// DataSupplier interface; the subpackage "dataset" supplies one backed by an
// image directory, and Data converts in-memory slices for tests and toys.
//
//	err := net.Train(foodnet.TrainArgs{
//		TrainData: train,
//		ValidData: valid,
//		Epochs:    200,
//		BatchSize: 100,
//	})
//
// Test runs a forward-only pass and reports average cost and the fraction of
// correctly classified samples. It never changes weights.
//
// Saving and Loading
//
// The topology and the weights are written independently: SaveArch produces a
// JSON description of the layer stack, SaveWeights a binary blob of the
// trained parameters. Save writes both into a directory, and Load rebuilds a
// Network that predicts identically to the one that was saved.
package foodnet

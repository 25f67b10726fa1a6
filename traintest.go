package foodnet

import (
	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send samples to the Network.
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that
	// of the network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input: a
	// one-hot vector for classification.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Outputs) == net.OutputSize()
}

// DataSupplier is the primary method of providing datasets to the Network,
// either for training or testing. Suppliers are indexed collections; the
// training loop owns ordering, shuffling, and batching.
type DataSupplier interface {
	// Len returns the number of samples available.
	Len() int

	// Get returns the sample at the given index, 0 <= i < Len().
	Get(i int) (Datum, error)
}

type sliceSupplier struct {
	inputs, targets [][]float64
}

func (s sliceSupplier) Len() int {
	return len(s.inputs)
}

func (s sliceSupplier) Get(i int) (Datum, error) {
	return Datum{s.inputs[i], s.targets[i]}, nil
}

// Data converts aligned slices of inputs and targets to a DataSupplier, for
// training or testing.
//
// N.B.: Data does not check that the samples fit a certain network; that will
// be done during training/testing.
func Data(inputs, targets [][]float64) (DataSupplier, error) {
	if len(inputs) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	} else if len(inputs) != len(targets) {
		return nil, errors.Errorf("dataset is misaligned: %d inputs, %d targets", len(inputs), len(targets))
	}

	return sliceSupplier{inputs, targets}, nil
}

// Result is a wrapper for sending back the progress of training or testing.
type Result struct {
	// The 1-based epoch the result belongs to.
	Epoch int

	// Average cost, from the Network's CostFunction.
	Cost float64

	// The fraction correct, as per IsCorrect() from TrainArgs. 0 → 1.
	Correct float64

	// Whether the result came from the validation data instead of the
	// training pass.
	IsValidation bool
}

// TrainArgs is used as a proxy for the type of optional arguments that are
// available in other languages.
type TrainArgs struct {
	// TrainData is the source of training samples. It is required.
	TrainData DataSupplier

	// ValidData is the source of cross-validation data. If non-nil, it is
	// scored at the end of every epoch and reported through Update.
	ValidData DataSupplier

	// Epochs is the number of full passes over TrainData. Training ends when
	// the count is exhausted; there is no early stopping.
	Epochs int

	// BatchSize is the number of samples per weight update. The final batch
	// of an epoch may be smaller. Defaults to 1.
	BatchSize int

	// IsCorrect returns whether or not the network outputs are correct, given
	// the target outputs. In order, it is given: outputs; targets. Defaults
	// to CorrectHighest.
	IsCorrect func(outs, targets []float64) bool

	// Update is how per-epoch results are returned. May be nil.
	Update func(Result)
}

// Train adjusts the weights of the Network: Epochs passes of shuffled
// mini-batch gradient descent over TrainData, reporting training cost and
// accuracy - and validation cost and accuracy, if ValidData is given - at the
// end of every epoch.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if net.stat < finalized {
			return ErrNotFinalized
		} else if net.opt == nil {
			return errors.Errorf("Network has no Optimizer; was it loaded for inference only?")
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		} else if args.TrainData.Len() == 0 {
			return errors.Errorf("TrainData is empty")
		}

		if args.Epochs < 1 {
			return errors.Errorf("Epochs must be >= 1 (%d)", args.Epochs)
		}

		if args.BatchSize == 0 {
			args.BatchSize = 1
		} else if args.BatchSize < 0 {
			return errors.Errorf("BatchSize must be >= 1 (%d)", args.BatchSize)
		}

		if args.IsCorrect == nil {
			args.IsCorrect = CorrectHighest
		}

		if args.Update == nil {
			args.Update = func(r Result) {}
		}
	}

	net.stat = training
	n := args.TrainData.Len()

	for epoch := 1; epoch <= args.Epochs; epoch++ {
		perm := net.rng.Perm(n)

		var epochCost, epochCorrect float64

		for start := 0; start < n; start += args.BatchSize {
			end := start + args.BatchSize
			if end > n {
				end = n
			}

			for _, i := range perm[start:end] {
				d, err := args.TrainData.Get(i)
				if err != nil {
					return errors.Wrapf(err, "Failed to get training sample %d in epoch %d", i, epoch)
				} else if !d.Fits(net) {
					return errors.Errorf("Training sample %d does not fit Network dimensions", i)
				}

				outs := net.forward(d.Inputs)

				cost, err := net.cf.Cost(outs, d.Outputs)
				if err != nil {
					return errors.Wrapf(err, "Cost of training sample %d failed in epoch %d", i, epoch)
				}

				epochCost += cost
				if args.IsCorrect(outs, d.Outputs) {
					epochCorrect++
				}

				net.backward(net.cf.Derivs(outs, d.Outputs))
			}

			if err := net.applyBatch(end - start); err != nil {
				return errors.Wrapf(err, "Failed to adjust Network in epoch %d", epoch)
			}
		}

		args.Update(Result{
			Epoch:   epoch,
			Cost:    epochCost / float64(n),
			Correct: epochCorrect / float64(n),
		})

		if args.ValidData != nil {
			cost, correct, err := net.Test(args.ValidData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Validation after epoch %d failed", epoch)
			}

			args.Update(Result{
				Epoch:        epoch,
				Cost:         cost,
				Correct:      correct,
				IsValidation: true,
			})
		}
	}

	net.stat = stopped
	return nil
}

// applyBatch averages the gradients accumulated over the last batch, applies
// any Penalty, and hands the result to the Optimizer. One call is one
// iteration for HyperParameter schedules.
func (net *Network) applyBatch(batchSize int) error {
	lr, err := net.learningRate()
	if err != nil {
		return err
	}

	scale := 1 / float64(batchSize)

	for i, l := range net.layers {
		a, ok := l.(Adjustable)
		if !ok {
			continue
		}

		ws, gs := a.Weights(), a.Grads()

		grad := func(i int) float64 {
			g := gs[i] * scale
			if net.pen != nil {
				g = net.pen.Penalize(ws[i], g)
			}
			return g
		}
		add := func(i int, v float64) {
			ws[i] += v
		}

		if err := net.opt.Run(a, len(ws), grad, add, lr); err != nil {
			return errors.Wrapf(err, "Optimizer failed on layer %q", net.names[i])
		}

		a.ClearGrads()
	}

	net.iter++
	return nil
}

// Test runs one forward pass over every sample from data, with no parameter
// updates, and returns the average cost and the fraction judged correct by
// isCorrect (CorrectHighest if nil). The model is left untouched.
func (net *Network) Test(data DataSupplier, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if net.stat < finalized {
		return 0, 0, ErrNotFinalized
	} else if data == nil {
		return 0, 0, NilArgError{"DataSupplier"}
	}

	if isCorrect == nil {
		isCorrect = CorrectHighest
	}

	var avgCost, avgCorrect float64
	n := data.Len()

	for i := 0; i < n; i++ {
		d, err := data.Get(i)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d", i)
		} else if !d.Fits(net) {
			return 0, 0, errors.Errorf("Test sample %d does not fit Network dimensions", i)
		}

		outs := net.forward(d.Inputs)

		cost, err := net.cf.Cost(outs, d.Outputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Cost of test sample %d failed", i)
		}

		avgCost += cost
		if isCorrect(outs, d.Outputs) {
			avgCorrect++
		}
	}

	if n != 0 {
		avgCost /= float64(n)
		avgCorrect /= float64(n)
	}

	return avgCost, avgCorrect, nil
}

package hyperparams

type decay struct {
	base, rate float64
}

// Decay returns a HyperParameter following base / (1 + rate*iter), the
// classic inverse-time learning-rate decay. 'iter' counts weight updates
// (batches), not epochs, so the value shrinks smoothly over a run.
//
// A common choice of rate is base/epochs.
func Decay(base, rate float64) *decay {
	return &decay{base, rate}
}

func (d *decay) TypeString() string {
	return "decay"
}

func (d *decay) Value(iter int) float64 {
	return d.base / (1 + d.rate*float64(iter))
}

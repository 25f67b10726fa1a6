package hyperparams

type step struct {
	Iter int
	Val  float64
}

type stepper []step

// Step returns a HyperParameter that holds 'base' until steps are added with
// Add, after which it takes the value of the latest step at or before the
// current iteration.
func Step(base float64) *stepper {
	st := stepper([]step{{0, base}})
	return &st
}

// Add adds a step to the HyperParameter. Steps must be added in increasing
// iteration order.
func (s *stepper) Add(iter int, value float64) *stepper {
	*s = append(*s, step{iter, value})
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(iter int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].Iter > iter {
			return sl[i-1].Val
		}
	}

	return sl[len(sl)-1].Val
}

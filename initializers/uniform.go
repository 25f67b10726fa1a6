package initializers

import "math/rand"

type uniform struct {
	lower, upper float64
}

// Uniform returns an Initializer that draws from a uniform random sample
// within a range, which can be set by Range. The defaults ("uniform-lower"
// and "uniform-upper") can be set by SetDefault.
//
// Uniform is the default Initializer.
func Uniform() *uniform {
	return &uniform{defaultValue["uniform-lower"], defaultValue["uniform-upper"]}
}

// Range sets the range of a Uniform Initializer, returning the same
// Initializer.
func (u *uniform) Range(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

func (u *uniform) TypeString() string {
	return "uniform"
}

func (u *uniform) Set(rng *rand.Rand, fanIn, fanOut int, ws []float64) {
	if u.lower > u.upper {
		u.lower, u.upper = u.upper, u.lower
	}

	for i := 0; i < len(ws); i++ {
		w := rng.Float64()*(u.upper-u.lower) + u.lower
		if w == 0 {
			// discard and try again
			i--
			continue
		}
		ws[i] = w
	}
}

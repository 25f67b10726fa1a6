package initializers

import "math/rand"

type normal struct {
	mean, sd float64
}

// Normal returns an Initializer that draws from a normal distribution. The
// center and standard deviation can be set by Mean and SD, respectively;
// their defaults ("normal-mean" and "normal-sd") by SetDefault.
func Normal() *normal {
	return &normal{defaultValue["normal-mean"], defaultValue["normal-sd"]}
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.mean = mean
	return n
}

// SD sets the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.sd = sd
	return n
}

func (n *normal) TypeString() string {
	return "normal"
}

func (n *normal) Set(rng *rand.Rand, fanIn, fanOut int, ws []float64) {
	for i := range ws {
		ws[i] = rng.NormFloat64()*n.sd + n.mean
	}
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an Initializer drawing from a normal distribution
// truncated at 2 standard deviations. The center and standard deviation are
// set the same way as Normal, because Normal is embedded in the TruncNormal
// type; the cutoff can be changed with Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc
// will panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

func (t *truncNormal) TypeString() string {
	return "trunc-normal"
}

func (t *truncNormal) Set(rng *rand.Rand, fanIn, fanOut int, ws []float64) {
	for i := range ws {
		for {
			v := rng.NormFloat64()
			if v < -t.trunc || v > t.trunc {
				continue
			}

			ws[i] = v*t.sd + t.mean
			break
		}
	}
}

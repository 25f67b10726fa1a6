package layers

import (
	"github.com/pkg/errors"

	"github.com/shubhambhokare1/FoodNet/utils"
)

type maxPool struct {
	// Filt is the spatial size of the pooled region: {width, height}.
	Filt []int `json:"filter"`

	// Str is the space between pooled regions. Defaults to the same size as
	// the filter, for the usual non-overlapping pooling.
	Str []int `json:"stride,omitempty"`

	ins, outs *utils.MultiDim

	// the index (in inputs) of the highest value of each pooled region
	switches []int

	inLen int
	out   []float64
}

// MaxPool returns a 2-dimensional max-pooling layer over
// {channels, width, height} inputs. The method Filter is required; Stride can
// be chained to make regions overlap. Validation is deferred to the Network's
// Finalize.
func MaxPool() *maxPool {
	return new(maxPool)
}

// Filter sets the spatial size of the pooled region, given as
// {width, height}.
func (m *maxPool) Filter(dims ...int) *maxPool {
	m.Filt = dims
	return m
}

// Stride sets the space between pooled regions. It defaults to the filter
// size.
func (m *maxPool) Stride(dims ...int) *maxPool {
	m.Str = dims
	return m
}

func (m *maxPool) TypeString() string {
	return "max-pool"
}

func (m *maxPool) Finalize(inDims []int) ([]int, error) {
	if len(inDims) != 3 {
		return nil, errors.Errorf("max-pool expects {channels, width, height} inputs, got %d dimensions", len(inDims))
	}

	if len(m.Filt) != 2 || m.Filt[0] < 1 || m.Filt[1] < 1 {
		return nil, errors.Errorf("max-pool filter must be 2 dimensions of >= 1 (%v)", m.Filt)
	}

	if m.Str == nil {
		m.Str = []int{m.Filt[0], m.Filt[1]}
	}
	if len(m.Str) != 2 || m.Str[0] < 1 || m.Str[1] < 1 {
		return nil, errors.Errorf("max-pool stride must be 2 dimensions of >= 1 (%v)", m.Str)
	}

	outW, err := outDim(inDims[1], m.Filt[0], m.Str[0], 0)
	if err != nil {
		return nil, errors.Wrapf(err, "max-pool width does not divide evenly")
	}
	outH, err := outDim(inDims[2], m.Filt[1], m.Str[1], 0)
	if err != nil {
		return nil, errors.Wrapf(err, "max-pool height does not divide evenly")
	}

	m.ins = utils.NewMultiDim(inDims)
	m.outs = utils.NewMultiDim([]int{inDims[0], outW, outH})
	m.inLen = m.ins.Size()
	m.switches = make([]int, m.outs.Size())
	m.out = make([]float64, m.outs.Size())

	return m.outs.Dims, nil
}

func (m *maxPool) Evaluate(inputs []float64) []float64 {
	chs, w := m.ins.Dim(0), m.ins.Dim(1)

	poolRegion := func(i int) {
		p := m.outs.Point(i)
		ch, ox, oy := p[0], p[1], p[2]

		best := -1
		bestVal := 0.0

		for dy := 0; dy < m.Filt[1]; dy++ {
			iy := oy*m.Str[1] + dy
			for dx := 0; dx < m.Filt[0]; dx++ {
				ix := ox*m.Str[0] + dx

				idx := ch + chs*(ix+w*iy)
				if best == -1 || inputs[idx] > bestVal {
					best = idx
					bestVal = inputs[idx]
				}
			}
		}

		m.switches[i] = best
		m.out[i] = bestVal
	}

	opsPerThread, threadsPerCPU := 16, 1
	utils.MultiThread(0, len(m.out), poolRegion, opsPerThread, threadsPerCPU)

	return m.out
}

func (m *maxPool) InputDeltas(deltas []float64) []float64 {
	ds := make([]float64, m.inLen)
	for i, d := range deltas {
		ds[m.switches[i]] += d
	}

	return ds
}

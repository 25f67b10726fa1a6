package layers

import (
	"github.com/pkg/errors"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/utils"
)

type conv struct {
	// NumFilters is the number of independent filters, each producing one
	// output channel.
	NumFilters int `json:"filters"`

	// Filt is the spatial size of each filter: {width, height}.
	Filt []int `json:"filter"`

	// Str is the space between centers of filter regions: {width, height}.
	// Defaults to {1, 1}.
	Str []int `json:"stride,omitempty"`

	// Padding is the amount of zero-padding on each side, per spatial
	// dimension. Defaults to none, unless Same is set.
	Padding []int `json:"pad,omitempty"`

	// Same requests padding that preserves the spatial dimensions of the
	// input. It requires stride {1, 1} and odd filter dimensions, and
	// overrides Padding.
	Same bool `json:"same_pad,omitempty"`

	init fn.Initializer

	ins, outs *utils.MultiDim

	// number of weights per filter, bias included
	fsize int

	ws, gs []float64
	in     []float64
	out    []float64
}

// the value multiplied by bias weights
const biasValue float64 = 1

// Conv returns a 2-dimensional convolution over {channels, width, height}
// inputs, available as a foodnet.Layer once configured. The methods Filters
// and Filter are required; Stride, Pad, SamePad, and Init can be chained to
// further customize it. Validation is deferred to the Network's Finalize.
func Conv() *conv {
	return new(conv)
}

// Filters sets the number of filters, which is the number of output channels.
func (c *conv) Filters(n int) *conv {
	c.NumFilters = n
	return c
}

// Filter sets the spatial size of each filter, given as {width, height}.
func (c *conv) Filter(dims ...int) *conv {
	c.Filt = dims
	return c
}

// Stride sets the space between centers of filter regions. Stride defaults to
// {1, 1}.
func (c *conv) Stride(dims ...int) *conv {
	c.Str = dims
	return c
}

// Pad sets the amount of zero-padding on both ends of each spatial dimension.
func (c *conv) Pad(dims ...int) *conv {
	c.Padding = dims
	return c
}

// SamePad pads the input so that the output has the same spatial dimensions,
// in the manner of "same" convolutions everywhere else. It requires stride
// {1, 1} and odd filter dimensions.
func (c *conv) SamePad() *conv {
	c.Same = true
	return c
}

// Init sets the Initializer for this layer's weights, overriding the
// Network's default.
func (c *conv) Init(init fn.Initializer) *conv {
	c.init = init
	return c
}

func (c *conv) TypeString() string {
	return "conv"
}

func (c *conv) Finalize(inDims []int) (outDims []int, err error) {
	if len(inDims) != 3 {
		return nil, errors.Errorf("conv expects {channels, width, height} inputs, got %d dimensions", len(inDims))
	}

	chs, w, h := inDims[0], inDims[1], inDims[2]

	if c.NumFilters < 1 {
		return nil, errors.Errorf("conv must have >= 1 filter (%d)", c.NumFilters)
	} else if len(c.Filt) != 2 {
		return nil, errors.Errorf("conv filter must have 2 dimensions (%v)", c.Filt)
	} else if c.Filt[0] < 1 || c.Filt[1] < 1 {
		return nil, errors.Errorf("conv filter dimensions must be >= 1 (%v)", c.Filt)
	}

	if c.Str == nil {
		c.Str = []int{1, 1}
	}
	if len(c.Str) != 2 || c.Str[0] < 1 || c.Str[1] < 1 {
		return nil, errors.Errorf("conv stride must be 2 dimensions of >= 1 (%v)", c.Str)
	}

	if c.Same {
		if c.Str[0] != 1 || c.Str[1] != 1 {
			return nil, errors.Errorf("same-padding requires stride {1, 1} (%v)", c.Str)
		} else if c.Filt[0]%2 == 0 || c.Filt[1]%2 == 0 {
			return nil, errors.Errorf("same-padding requires odd filter dimensions (%v)", c.Filt)
		}

		c.Padding = []int{(c.Filt[0] - 1) / 2, (c.Filt[1] - 1) / 2}
	} else if c.Padding == nil {
		c.Padding = []int{0, 0}
	}
	if len(c.Padding) != 2 || c.Padding[0] < 0 || c.Padding[1] < 0 {
		return nil, errors.Errorf("conv padding must be 2 dimensions of >= 0 (%v)", c.Padding)
	}

	outW, err := outDim(w, c.Filt[0], c.Str[0], c.Padding[0])
	if err != nil {
		return nil, errors.Wrapf(err, "conv width does not divide evenly")
	}
	outH, err := outDim(h, c.Filt[1], c.Str[1], c.Padding[1])
	if err != nil {
		return nil, errors.Wrapf(err, "conv height does not divide evenly")
	}

	c.ins = utils.NewMultiDim(inDims)
	c.outs = utils.NewMultiDim([]int{c.NumFilters, outW, outH})
	c.fsize = c.Filt[0]*c.Filt[1]*chs + 1

	c.ws = make([]float64, c.NumFilters*c.fsize)
	c.gs = make([]float64, len(c.ws))
	c.out = make([]float64, c.outs.Size())

	return c.outs.Dims, nil
}

// outDim computes one output dimension of a strided filter pass, or errors if
// the stride doesn't land exactly on the final position.
func outDim(in, filter, stride, pad int) (int, error) {
	span := in + 2*pad - filter
	if span < 0 || span%stride != 0 {
		return 0, errors.Errorf("(%d + 2*%d - %d) %% %d != 0", in, pad, filter, stride)
	}

	return span/stride + 1, nil
}

func (c *conv) Evaluate(inputs []float64) []float64 {
	c.in = inputs

	chs, w, h := c.ins.Dim(0), c.ins.Dim(1), c.ins.Dim(2)
	fw, fh := c.Filt[0], c.Filt[1]

	calculateValue := func(i int) {
		p := c.outs.Point(i)
		f, ox, oy := p[0], p[1], p[2]

		base := f * c.fsize
		sum := c.ws[base+c.fsize-1] * biasValue

		wi := base
		for dy := 0; dy < fh; dy++ {
			iy := oy*c.Str[1] + dy - c.Padding[1]
			for dx := 0; dx < fw; dx++ {
				ix := ox*c.Str[0] + dx - c.Padding[0]

				if iy < 0 || iy >= h || ix < 0 || ix >= w {
					wi += chs
					continue
				}

				inIdx := chs * (ix + w*iy)
				for ch := 0; ch < chs; ch++ {
					sum += c.ws[wi] * inputs[inIdx+ch]
					wi++
				}
			}
		}

		c.out[i] = sum
	}

	opsPerThread, threadsPerCPU := 4, 1
	utils.MultiThread(0, len(c.out), calculateValue, opsPerThread, threadsPerCPU)

	return c.out
}

func (c *conv) InputDeltas(deltas []float64) []float64 {
	ds := make([]float64, len(c.in))

	chs, w, h := c.ins.Dim(0), c.ins.Dim(1), c.ins.Dim(2)
	fw, fh := c.Filt[0], c.Filt[1]

	// Different outputs share weights, so this accumulation stays sequential.
	for i, d := range deltas {
		p := c.outs.Point(i)
		f, ox, oy := p[0], p[1], p[2]

		base := f * c.fsize

		wi := base
		for dy := 0; dy < fh; dy++ {
			iy := oy*c.Str[1] + dy - c.Padding[1]
			for dx := 0; dx < fw; dx++ {
				ix := ox*c.Str[0] + dx - c.Padding[0]

				if iy < 0 || iy >= h || ix < 0 || ix >= w {
					wi += chs
					continue
				}

				inIdx := chs * (ix + w*iy)
				for ch := 0; ch < chs; ch++ {
					ds[inIdx+ch] += c.ws[wi] * d
					c.gs[wi] += c.in[inIdx+ch] * d
					wi++
				}
			}
		}

		c.gs[base+c.fsize-1] += d * biasValue
	}

	return ds
}

func (c *conv) Weights() []float64 {
	return c.ws
}

func (c *conv) Grads() []float64 {
	return c.gs
}

func (c *conv) ClearGrads() {
	for i := range c.gs {
		c.gs[i] = 0
	}
}

func (c *conv) FanIn() int {
	return c.Filt[0] * c.Filt[1] * c.ins.Dim(0)
}

func (c *conv) FanOut() int {
	return c.Filt[0] * c.Filt[1] * c.NumFilters
}

func (c *conv) Initializer() fn.Initializer {
	return c.init
}

// Package hyperparams provides HyperParameter schedules for foodnet
// Networks: values that can change as a function of the number of weight
// updates performed.
package hyperparams

type constant float64

// Constant returns a HyperParameter whose value never changes.
func Constant(value float64) *constant {
	c := constant(value)
	return &c
}

func (c *constant) TypeString() string {
	return "constant"
}

func (c *constant) Value(iter int) float64 {
	return float64(*c)
}

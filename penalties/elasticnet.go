package penalties

type elasticNet struct {
	l1 *l1
	l2 *l2
}

// ElasticNet returns the sum of the L1 and L2 penalties, with independent
// lambdas.
func ElasticNet(lambda1, lambda2 float64) *elasticNet {
	return &elasticNet{L1(lambda1), L2(lambda2)}
}

func (p *elasticNet) TypeString() string {
	return "elastic-net"
}

func (p *elasticNet) Penalize(weight, grad float64) float64 {
	return p.l2.Penalize(weight, p.l1.Penalize(weight, grad))
}

package penalties

import (
	"math"
	"testing"
)

func TestL1(t *testing.T) {
	t.Parallel()

	p := L1(0.01)

	if got := p.Penalize(3, 0.5); math.Abs(got-0.51) > 1e-15 {
		t.Errorf("Penalize(3, 0.5) = %g, want 0.51", got)
	}
	if got := p.Penalize(-3, 0.5); math.Abs(got-0.49) > 1e-15 {
		t.Errorf("Penalize(-3, 0.5) = %g, want 0.49", got)
	}
}

func TestL2(t *testing.T) {
	t.Parallel()

	p := L2(0.01)

	// the gradient gains 2*lambda*weight
	if got := p.Penalize(3, 0.5); math.Abs(got-0.56) > 1e-15 {
		t.Errorf("Penalize(3, 0.5) = %g, want 0.56", got)
	}
	if got := p.Penalize(0, 0.5); got != 0.5 {
		t.Errorf("Penalize(0, 0.5) = %g, want 0.5", got)
	}
}

func TestElasticNet(t *testing.T) {
	t.Parallel()

	p := ElasticNet(0.01, 0.02)

	want := 0.5 + 0.01 + 2*0.02*3
	if got := p.Penalize(3, 0.5); math.Abs(got-want) > 1e-15 {
		t.Errorf("Penalize(3, 0.5) = %g, want %g", got, want)
	}
}

package costfuncs

import (
	"math"
	"testing"
)

func TestCrossEntropy(t *testing.T) {
	t.Parallel()

	ce := CrossEntropy()

	t.Run("confident correct answers cost almost nothing", func(t *testing.T) {
		t.Parallel()

		low, err := ce.Cost([]float64{0.99, 0.005, 0.005}, []float64{1, 0, 0})
		if err != nil {
			t.Fatalf("Cost: %v", err)
		}
		high, err := ce.Cost([]float64{0.01, 0.495, 0.495}, []float64{1, 0, 0})
		if err != nil {
			t.Fatalf("Cost: %v", err)
		}

		if low >= high {
			t.Errorf("confident cost %g should be below unconfident cost %g", low, high)
		}
		if want := -math.Log(0.99); math.Abs(low-want) > 1e-12 {
			t.Errorf("Cost = %g, want %g", low, want)
		}
	})

	t.Run("collapsed probabilities stay finite", func(t *testing.T) {
		t.Parallel()

		cost, err := ce.Cost([]float64{0, 1}, []float64{1, 0})
		if err != nil {
			t.Fatalf("Cost: %v", err)
		}
		if math.IsInf(cost, 0) || math.IsNaN(cost) {
			t.Errorf("Cost = %g, want finite", cost)
		}

		ds := ce.Derivs([]float64{0, 1}, []float64{1, 0})
		if math.IsInf(ds[0], 0) || math.IsNaN(ds[0]) {
			t.Errorf("Derivs[0] = %g, want finite", ds[0])
		}
	})

	t.Run("derivatives are -target/out where the target is hot", func(t *testing.T) {
		t.Parallel()

		ds := ce.Derivs([]float64{0.25, 0.75}, []float64{0, 1})
		if ds[0] != 0 {
			t.Errorf("ds[0] = %g, want 0", ds[0])
		}
		if want := -1 / 0.75; math.Abs(ds[1]-want) > 1e-12 {
			t.Errorf("ds[1] = %g, want %g", ds[1], want)
		}
	})

	t.Run("mismatched lengths are an error", func(t *testing.T) {
		t.Parallel()

		if _, err := ce.Cost([]float64{1}, []float64{1, 0}); err == nil {
			t.Error("expected an error for mismatched lengths")
		}
	})
}

func TestMSE(t *testing.T) {
	t.Parallel()

	m := MSE()

	cost, err := m.Cost([]float64{1, 2}, []float64{0, 0})
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != 2.5 {
		t.Errorf("Cost = %g, want 2.5", cost)
	}

	ds := m.Derivs([]float64{1, 2}, []float64{0, 0})
	if ds[0] != 1 || ds[1] != 2 {
		t.Errorf("Derivs = %v, want [1 2]", ds)
	}

	if _, err := m.Cost([]float64{1}, []float64{1, 0}); err == nil {
		t.Error("expected an error for mismatched lengths")
	}
}

package optimizers

import (
	"math"
	"testing"

	fn "github.com/shubhambhokare1/FoodNet"
)

func TestSGD(t *testing.T) {
	t.Parallel()

	t.Run("plain descent steps against the gradient", func(t *testing.T) {
		t.Parallel()

		s := SGD()
		ws := []float64{1, 1}

		grad := func(i int) float64 { return float64(i + 1) }
		add := func(i int, v float64) { ws[i] += v }

		var l fn.Adjustable
		if err := s.Run(l, 2, grad, add, 0.1); err != nil {
			t.Fatalf("Run: %v", err)
		}

		if math.Abs(ws[0]-0.9) > 1e-15 || math.Abs(ws[1]-0.8) > 1e-15 {
			t.Errorf("ws = %v, want [0.9 0.8]", ws)
		}
	})

	t.Run("momentum carries the previous update", func(t *testing.T) {
		t.Parallel()

		s := SGD().Momentum(0.5)
		ws := []float64{0}

		grad := func(i int) float64 { return 2 }
		add := func(i int, v float64) { ws[i] += v }

		var l fn.Adjustable

		// v1 = -0.2; v2 = 0.5*(-0.2) - 0.2 = -0.3
		if err := s.Run(l, 1, grad, add, 0.1); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if math.Abs(ws[0]-(-0.2)) > 1e-15 {
			t.Fatalf("after first step ws[0] = %g, want -0.2", ws[0])
		}

		if err := s.Run(l, 1, grad, add, 0.1); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if math.Abs(ws[0]-(-0.5)) > 1e-15 {
			t.Errorf("after second step ws[0] = %g, want -0.5", ws[0])
		}
	})
}

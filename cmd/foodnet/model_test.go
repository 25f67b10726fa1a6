package main

import "testing"

func TestBuildNetwork(t *testing.T) {
	t.Parallel()

	t.Run("output width follows the class count", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Side = 8
		cfg.Seed = 1

		net, err := buildNetwork(cfg, 11)
		if err != nil {
			t.Fatalf("buildNetwork: %v", err)
		}

		if net.InputSize() != 3*8*8 {
			t.Errorf("InputSize = %d, want %d", net.InputSize(), 3*8*8)
		}
		if net.OutputSize() != 11 {
			t.Errorf("OutputSize = %d, want 11", net.OutputSize())
		}

		// the outputs form a distribution
		in := make([]float64, net.InputSize())
		outs, err := net.GetOutputs(in)
		if err != nil {
			t.Fatalf("GetOutputs: %v", err)
		}

		var sum float64
		for _, o := range outs {
			sum += o
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("outputs sum to %g, want 1", sum)
		}
	})

	t.Run("identical seeds build identical weights", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Side = 8
		cfg.Seed = 7

		a, err := buildNetwork(cfg, 4)
		if err != nil {
			t.Fatal(err)
		}
		b, err := buildNetwork(cfg, 4)
		if err != nil {
			t.Fatal(err)
		}

		in := make([]float64, a.InputSize())
		for i := range in {
			in[i] = float64(i%13) / 13
		}

		av, err := a.GetOutputs(in)
		if err != nil {
			t.Fatal(err)
		}
		bv, err := b.GetOutputs(in)
		if err != nil {
			t.Fatal(err)
		}

		for i := range av {
			if av[i] != bv[i] {
				t.Fatalf("seeded networks diverged at output %d: %g vs %g", i, av[i], bv[i])
			}
		}
	})

	t.Run("too few classes is an error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if _, err := buildNetwork(cfg, 1); err == nil {
			t.Error("expected an error for a single class")
		}
	})

	t.Run("side must divide through the pooling", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Side = 7

		if _, err := buildNetwork(cfg, 4); err == nil {
			t.Error("expected an error for a side the pooling can't divide")
		}
	})
}

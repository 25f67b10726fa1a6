package foodnet_test

import (
	"os"
	"path/filepath"
	"testing"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/costfuncs"
	_ "github.com/shubhambhokare1/FoodNet/initializers"
	"github.com/shubhambhokare1/FoodNet/layers"
	"github.com/shubhambhokare1/FoodNet/optimizers"
)

// convNetwork builds a small finalized convolutional classifier on 8x8
// inputs, in the shape of the full food model.
func convNetwork(t *testing.T) *fn.Network {
	t.Helper()

	net := fn.New(3, 8, 8).Seed(42).
		Add("conv-1", layers.Conv().Filters(4).Filter(3, 3).SamePad()).
		Add("relu-1", layers.ReLU()).
		Add("pool-1", layers.MaxPool().Filter(2, 2)).
		Add("conv-2", layers.Conv().Filters(8).Filter(3, 3).SamePad()).
		Add("relu-2", layers.ReLU()).
		Add("flatten", layers.Flatten()).
		Add("dense", layers.Dense(5)).
		Add("softmax", layers.Softmax())

	if err := net.Finalize(costfuncs.CrossEntropy(), optimizers.SGD()); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	return net
}

// rampInput fills a deterministic input of the given size.
func rampInput(size int) []float64 {
	vs := make([]float64, size)
	for i := range vs {
		vs[i] = float64(i%17) / 17
	}
	return vs
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trip predicts identically", func(t *testing.T) {
		t.Parallel()

		net := convNetwork(t)
		dir := filepath.Join(t.TempDir(), "model")

		if err := net.Save(dir, false); err != nil {
			t.Fatalf("Save: %v", err)
		}

		loaded, err := fn.Load(dir)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		in := rampInput(net.InputSize())

		want, err := net.GetOutputs(in)
		if err != nil {
			t.Fatalf("GetOutputs (original): %v", err)
		}
		got, err := loaded.GetOutputs(in)
		if err != nil {
			t.Fatalf("GetOutputs (loaded): %v", err)
		}

		if len(got) != len(want) {
			t.Fatalf("loaded model has %d outputs, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("output %d = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("refuses to overwrite unless asked", func(t *testing.T) {
		t.Parallel()

		net := convNetwork(t)
		dir := filepath.Join(t.TempDir(), "model")

		if err := net.Save(dir, false); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := net.Save(dir, false); err == nil {
			t.Error("expected an error saving over an existing directory")
		}
		if err := net.Save(dir, true); err != nil {
			t.Errorf("Save with overwrite: %v", err)
		}
	})

	t.Run("requires a finalized Network", func(t *testing.T) {
		t.Parallel()

		net := fn.New(4).Add("dense", layers.Dense(2))
		if err := net.Save(filepath.Join(t.TempDir(), "model"), false); err == nil {
			t.Error("expected an error saving an unfinalized Network")
		}
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := fn.Load(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected an error loading a missing directory")
		}
	})
}

func TestSaveArchAndWeights(t *testing.T) {
	t.Parallel()

	t.Run("standalone files round trip", func(t *testing.T) {
		t.Parallel()

		net := convNetwork(t)
		dir := t.TempDir()
		archPath := filepath.Join(dir, "model1.json")
		weightsPath := filepath.Join(dir, "model1_weights.bin")

		if err := net.SaveArch(archPath); err != nil {
			t.Fatalf("SaveArch: %v", err)
		}
		if err := net.SaveWeights(weightsPath); err != nil {
			t.Fatalf("SaveWeights: %v", err)
		}

		loaded, err := fn.LoadArch(archPath)
		if err != nil {
			t.Fatalf("LoadArch: %v", err)
		}
		if err := loaded.LoadWeights(weightsPath); err != nil {
			t.Fatalf("LoadWeights: %v", err)
		}

		in := rampInput(net.InputSize())
		want, _ := net.GetOutputs(in)
		got, err := loaded.GetOutputs(in)
		if err != nil {
			t.Fatalf("GetOutputs: %v", err)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Errorf("output %d = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("weights reject a mismatched topology", func(t *testing.T) {
		t.Parallel()

		net := convNetwork(t)
		weightsPath := filepath.Join(t.TempDir(), "weights.bin")
		if err := net.SaveWeights(weightsPath); err != nil {
			t.Fatalf("SaveWeights: %v", err)
		}

		other := fn.New(3, 8, 8).
			Add("flatten", layers.Flatten()).
			Add("dense", layers.Dense(5)).
			Add("softmax", layers.Softmax())
		if err := other.Finalize(costfuncs.CrossEntropy(), optimizers.SGD()); err != nil {
			t.Fatalf("Finalize: %v", err)
		}

		if err := other.LoadWeights(weightsPath); err == nil {
			t.Error("expected an error loading weights into a different topology")
		}
	})

	t.Run("weights reject a foreign blob", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "weights.bin")
		if err := os.WriteFile(path, []byte("not a weight blob"), 0644); err != nil {
			t.Fatal(err)
		}

		net := convNetwork(t)
		if err := net.LoadWeights(path); err == nil {
			t.Error("expected an error for a blob without the magic header")
		}
	})

	t.Run("arch document rejects unknown layer types", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "model.json")
		doc := `{"input": [4], "layers": [{"name": "x", "type": "no-such-layer"}]}`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := fn.LoadArch(path); err == nil {
			t.Error("expected an error for an unregistered layer type")
		}
	})
}

// A loaded model can keep training once it gets a learning rate and an
// optimizer through Finalize... except Load doesn't go through Finalize, so
// training after Load should fail cleanly instead.
func TestTrainAfterLoad(t *testing.T) {
	t.Parallel()

	net := convNetwork(t)
	dir := filepath.Join(t.TempDir(), "model")
	if err := net.Save(dir, false); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := fn.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	data := toyData(t)
	if err := loaded.Train(fn.TrainArgs{TrainData: data, Epochs: 1}); err == nil {
		t.Error("expected an error training a Network loaded for inference")
	}
}

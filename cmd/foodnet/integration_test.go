package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeAssets lays out a tiny two-class dataset (solid red vs solid blue)
// and a config file pointing at it, and returns the config path and the
// model directory.
func writeAssets(t *testing.T) (cfgPath, modelDir string) {
	t.Helper()

	root := t.TempDir()
	trainDir := filepath.Join(root, "training")
	if err := os.MkdirAll(trainDir, 0755); err != nil {
		t.Fatal(err)
	}

	solid := func(path string, c color.RGBA) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetRGBA(x, y, c)
			}
		}

		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 5; i++ {
		solid(filepath.Join(trainDir, fmt.Sprintf("0_red_%d.png", i)), color.RGBA{R: 255, A: 255})
		solid(filepath.Join(trainDir, fmt.Sprintf("1_blue_%d.png", i)), color.RGBA{B: 255, A: 255})
	}

	classFile := filepath.Join(root, "classes.txt")
	if err := os.WriteFile(classFile, []byte("red\nblue\n"), 0644); err != nil {
		t.Fatal(err)
	}

	modelDir = filepath.Join(root, "model")
	cfg := fmt.Sprintf(`classes: %s
training: %s
validation: ""
evaluation: %s
side: 8
epochs: 3
batch_size: 5
learning_rate: 0.01
momentum: 0.9
seed: 1
arch: %s
weights: %s
model_dir: %s
`, classFile, trainDir, trainDir,
		filepath.Join(root, "model1.json"),
		filepath.Join(root, "model1_weights.bin"),
		modelDir)

	cfgPath = filepath.Join(root, "foodnet.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	return cfgPath, modelDir
}

// TestCLIRoundTrip drives train, evaluate, and predict through the real
// command tree.
func TestCLIRoundTrip(t *testing.T) {
	cfgPath, modelDir := writeAssets(t)

	run := func(args ...string) string {
		t.Helper()

		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("foodnet %s: %v", strings.Join(args, " "), err)
		}

		return out.String()
	}

	run("train", "-c", cfgPath)

	for _, f := range []string{
		filepath.Join(modelDir, "model.json"),
		filepath.Join(modelDir, "weights.bin"),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("train did not write %q: %v", f, err)
		}
	}

	out := run("evaluate", "-c", cfgPath, modelDir)
	if !strings.Contains(out, "accuracy:") {
		t.Errorf("evaluate output missing accuracy: %q", out)
	}

	redImg := filepath.Join(filepath.Dir(cfgPath), "training", "0_red_0.png")
	out = run("predict", "-c", cfgPath, "--model", modelDir, redImg)
	if !strings.Contains(out, "red") && !strings.Contains(out, "blue") {
		t.Errorf("predict output missing a class name: %q", out)
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "foodnet version") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

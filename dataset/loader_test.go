package dataset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a solid-color PNG of the given size.
func writePNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %q: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %q: %v", path, err)
	}
}

func TestParseLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{name: "0_pizza.jpg", want: 0},
		{name: "5_rice.png", want: 5},
		{name: "9_soup.jpg", want: 9},
		{name: "10_noodles.jpg", want: 10},
		{name: "10", want: 10},
		{name: "1_noodles.jpg", want: 1},
		// "11_x.jpg" still reads as class 10: the "10" rule only inspects
		// the first two characters
		{name: "bread.jpg", wantErr: true},
		{name: "_1_bread.jpg", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLabel(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLabel(%q) = %d, want error", tt.name, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLabel(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLabel(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	t.Run("loads sorted and labeled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "1_a.png"), 4, 4, color.RGBA{R: 255, A: 255})
		writePNG(t, filepath.Join(dir, "0_b.png"), 4, 4, color.RGBA{G: 255, A: 255})
		writePNG(t, filepath.Join(dir, "10_c.png"), 4, 4, color.RGBA{B: 255, A: 255})

		s, err := LoadDir(dir, 4)
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}

		if s.Len() != 3 {
			t.Fatalf("expected 3 samples, got %d", s.Len())
		}

		// lexical order: "0_b.png" < "10_c.png" < "1_a.png"
		wantFiles := []string{"0_b.png", "10_c.png", "1_a.png"}
		wantLabels := []int{0, 10, 1}
		for i := range wantFiles {
			if s.Files[i] != wantFiles[i] {
				t.Errorf("Files[%d] = %q, want %q", i, s.Files[i], wantFiles[i])
			}
			if s.Labels[i] != wantLabels[i] {
				t.Errorf("Labels[%d] = %d, want %d", i, s.Labels[i], wantLabels[i])
			}
		}
	})

	t.Run("pixels are interleaved RGB", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "3_red.png"), 4, 4, color.RGBA{R: 255, A: 255})

		s, err := LoadDir(dir, 4)
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}

		px := s.Images[0]
		if len(px) != 4*4*3 {
			t.Fatalf("expected %d values, got %d", 4*4*3, len(px))
		}
		if px[0] != 255 || px[1] != 0 || px[2] != 0 {
			t.Errorf("first pixel = (%g, %g, %g), want (255, 0, 0)", px[0], px[1], px[2])
		}
	})

	t.Run("resizes to the requested side", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "2_big.png"), 16, 10, color.RGBA{R: 80, G: 80, B: 80, A: 255})

		s, err := LoadDir(dir, 8)
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}

		if len(s.Images[0]) != 8*8*3 {
			t.Errorf("expected %d values after resize, got %d", 8*8*3, len(s.Images[0]))
		}
	})

	t.Run("subdirectories are skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "4_a.png"), 4, 4, color.RGBA{A: 255})
		if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
			t.Fatal(err)
		}

		s, err := LoadDir(dir, 4)
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}
		if s.Len() != 1 {
			t.Errorf("expected 1 sample, got %d", s.Len())
		}
	})

	t.Run("unlabeled file aborts the load", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "salad.png"), 4, 4, color.RGBA{A: 255})

		if _, err := LoadDir(dir, 4); err == nil {
			t.Error("expected error for unlabeled file name")
		}
	})

	t.Run("undecodable file aborts the load", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "5_junk.png"), []byte("not an image"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadDir(dir, 4); err == nil {
			t.Error("expected error for undecodable image")
		}
	})

	t.Run("bad side is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadDir(t.TempDir(), 0); err == nil {
			t.Error("expected error for side 0")
		}
	})
}

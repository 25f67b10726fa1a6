package dataset

import "github.com/pkg/errors"

// Scale maps raw channel intensities into [0, 1] by dividing every value by
// 255. The input is left untouched; new slices are returned so callers can
// keep the raw pixels.
func Scale(images [][]float64) [][]float64 {
	out := make([][]float64, len(images))
	for i, img := range images {
		o := make([]float64, len(img))
		for j, v := range img {
			o[j] = v / maxPixel
		}
		out[i] = o
	}

	return out
}

// OneHot converts integer labels into one-hot vectors of the given width.
// The width comes from the class dictionary, never from the labels of a
// single split; a class that happens to be absent from one split must not
// change the vector width.
func OneHot(labels []int, width int) ([][]float64, error) {
	if width < 1 {
		return nil, errors.Errorf("One-hot width must be >= 1 (%d)", width)
	}

	out := make([][]float64, len(labels))
	for i, l := range labels {
		if l < 0 || l >= width {
			return nil, errors.Errorf("Label %d at index %d out of range [0, %d)", l, i, width)
		}

		v := make([]float64, width)
		v[l] = 1
		out[i] = v
	}

	return out, nil
}

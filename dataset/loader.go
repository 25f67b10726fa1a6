package dataset

import (
	"image"
	"os"
	"path/filepath"

	// registered formats for image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// DefaultSide is the resolution every image is resized to before training.
const DefaultSide = 32

// MaxLabel is the highest class id the filename convention can express: the
// leading "10" is checked as a special case, every other id is a single
// leading digit.
const MaxLabel = 10

// maxPixel is the largest channel intensity of the decoded images.
const maxPixel float64 = 255

// Split is one named portion of the dataset (training, validation, or
// evaluation): aligned images and labels plus the file names they came from.
// Pixels are raw channel intensities in [0, 255], interleaved RGB, row-major.
type Split struct {
	Images [][]float64
	Labels []int
	Files  []string
}

// ParseLabel derives a class id from the leading characters of a file name:
// a name beginning with "10" is class 10; otherwise the first character must
// be a single digit. Class ids above MaxLabel cannot be expressed and any
// other leading character is an error.
func ParseLabel(name string) (int, error) {
	// the two-character case has to win before the single-digit rule, or
	// "10_..." would read as class 1
	if len(name) >= 2 && name[0] == '1' && name[1] == '0' {
		return 10, nil
	}

	if len(name) == 0 || name[0] < '0' || name[0] > '9' {
		return -1, errors.Errorf("File name %q does not begin with a class id", name)
	}

	return int(name[0] - '0'), nil
}

// LoadDir reads every file of an image directory into a Split, decoding each
// as JPEG or PNG, resizing bilinearly to (side, side), and deriving its label
// with ParseLabel. File names are sorted before pairing, so the order is
// stable across platforms. Any file that fails to decode or to parse aborts
// the load.
func LoadDir(dir string, side int) (*Split, error) {
	if side < 1 {
		return nil, errors.Errorf("Side length must be >= 1 (%d)", side)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read image directory %q", dir)
	}

	s := new(Split)

	// os.ReadDir returns entries sorted by name
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}

		name := ent.Name()

		label, err := ParseLabel(name)
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't label %q", filepath.Join(dir, name))
		}

		px, err := LoadImage(filepath.Join(dir, name), side)
		if err != nil {
			return nil, err
		}

		s.Images = append(s.Images, px)
		s.Labels = append(s.Labels, label)
		s.Files = append(s.Files, name)
	}

	return s, nil
}

// LoadImage decodes one file and returns its pixels resized to (side, side),
// interleaved RGB in [0, 255]. Scale maps the result into the range the
// Network expects.
func LoadImage(path string, side int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open image %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode image %q", path)
	}

	img = resize.Resize(uint(side), uint(side), img, resize.Bilinear)

	px := make([]float64, 0, side*side*3)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px = append(px, float64(r>>8), float64(g>>8), float64(bl>>8))
		}
	}

	return px, nil
}

// Len returns the number of samples in the Split.
func (s *Split) Len() int {
	return len(s.Images)
}

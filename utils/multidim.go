// Package utils holds the small helpers shared by the layer implementations:
// multi-dimensional index math and a bounded worker pool for the expensive
// inner loops.
package utils

// MultiDim maps between flat indexes and n-dimensional points over a slice.
//
// Values are stored such that the oscillation frequency of the dimensions
// decreases as the index in Dims increases: for image data shaped
// {channels, width, height}, channels oscillate fastest.
//
// The fields are public to allow exporting to JSON, but should not be altered
// once initialized.
type MultiDim struct {
	// the width, height, depth, etc. of each dimension
	Dims []int

	// the number of values encapsulated by a 'set' of each dimension;
	// Sizes[0] = Dims[0] and Sizes[len-1] is the total size. Initialized by
	// the constructor; should not be provided.
	Sizes []int
}

// NewMultiDim creates a MultiDim wrapper over the given dimensions. All
// dimensions are assumed to be >= 1.
func NewMultiDim(dims []int) *MultiDim {
	m := &MultiDim{
		Dims:  dims,
		Sizes: make([]int, len(dims)),
	}

	m.Sizes[0] = m.Dims[0]
	for i := 1; i < len(m.Sizes); i++ {
		m.Sizes[i] = m.Sizes[i-1] * m.Dims[i]
	}

	return m
}

// Index returns the flat index corresponding to the given point. The point
// must have the same number of dimensions as 'm', in the order they were
// originally given.
func (m *MultiDim) Index(point []int) int {
	index := point[0]
	for i := 1; i < len(m.Sizes); i++ {
		index += point[i] * m.Sizes[i-1]
	}

	return index
}

// Point returns the multi-dimensional point leading to the given flat index,
// which is assumed to be in bounds.
func (m *MultiDim) Point(index int) []int {
	p := make([]int, len(m.Dims))
	for i := len(p) - 1; i >= 1; i-- { // doesn't go to 0
		p[i] = index / m.Sizes[i-1]
		index = index % m.Sizes[i-1]
	}

	p[0] = index
	return p
}

// Size returns the total number of values encapsulated.
func (m *MultiDim) Size() int {
	return m.Sizes[len(m.Sizes)-1]
}

// Dim returns the size of the d'th dimension.
func (m *MultiDim) Dim(d int) int {
	return m.Dims[d]
}

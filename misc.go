package foodnet

// ArgMax returns the index of the largest value in vs, or -1 if vs is empty.
// Ties go to the earlier index.
func ArgMax(vs []float64) int {
	if len(vs) == 0 {
		return -1
	}

	best := 0
	for i := 1; i < len(vs); i++ {
		if vs[i] > vs[best] {
			best = i
		}
	}

	return best
}

// CorrectHighest reports whether the largest output lines up with the largest
// target. It is the usual notion of "correct" for one-hot classification, and
// the default for TrainArgs.IsCorrect.
//
// assumes len(outs) == len(targets)
func CorrectHighest(outs, targets []float64) bool {
	return ArgMax(outs) == ArgMax(targets)
}

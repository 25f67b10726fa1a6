package utils

import (
	"runtime"
	"sync"
)

// MultiThread runs an operation over a range of integers, fanning the work
// out over a bounded set of goroutines. It blocks until the whole range is
// done, so callers remain effectively sequential.
//
// The range includes 'start' and excludes 'end'; MultiThread assumes that
// end >= start. 'f' is run once for each value in the range, and must only
// write to locations owned by its index. 'opsPerThread' is the number of
// operations a goroutine claims at a time; 'threadsPerCPU' is the number of
// goroutines created per CPU.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	numThreads := runtime.NumCPU() * threadsPerCPU

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numThreads)

	for t := 0; t < numThreads; t++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					return
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}

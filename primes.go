package smartnum

import "sync"

// primeBound is the sieve limit for the shared prime table. Common factors
// above every table prime are handled by the odd-candidate fallback in
// reduceExact.
const primeBound = 1 << 13

var (
	primeOnce sync.Once
	primeList []int64
)

// primeTable returns the process-wide ascending table of small primes. The
// table is built once, on first use, and is immutable afterward; callers
// must not modify the returned slice.
func primeTable() []int64 {
	primeOnce.Do(func() {
		composite := make([]bool, primeBound)
		for p := 2; p < primeBound; p++ {
			if composite[p] {
				continue
			}
			primeList = append(primeList, int64(p))
			for m := p * p; m < primeBound; m += p {
				composite[m] = true
			}
		}
	})
	return primeList
}

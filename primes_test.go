package smartnum

import (
	"sync"
	"testing"
)

func TestPrimeTable(t *testing.T) {
	ps := primeTable()
	if len(ps) == 0 {
		t.Fatal("empty prime table")
	}
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for i, p := range want {
		if ps[i] != p {
			t.Errorf("primeTable()[%d] = %d, want %d", i, ps[i], p)
		}
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] <= ps[i-1] {
			t.Fatalf("table not ascending at %d: %d after %d", i, ps[i], ps[i-1])
		}
	}
	for _, p := range ps {
		for d := int64(2); d*d <= p; d++ {
			if p%d == 0 {
				t.Fatalf("composite %d in table", p)
			}
		}
	}
	if ps[len(ps)-1] >= primeBound {
		t.Errorf("largest prime %d outside sieve bound %d", ps[len(ps)-1], primeBound)
	}
}

func TestPrimeTableShared(t *testing.T) {
	// One build per process: every caller sees the same backing array.
	var wg sync.WaitGroup
	got := make([][]int64, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = primeTable()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(got); i++ {
		if &got[i][0] != &got[0][0] {
			t.Fatal("primeTable returned distinct tables")
		}
	}
}

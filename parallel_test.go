package dbscan

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelFor_CoversEveryIndexExactlyOnce(t *testing.T) {
	n := 97 // deliberately not a multiple of any worker count below
	for _, workers := range []int{1, 2, 3, 8, 16, 200} {
		var mu sync.Mutex
		seen := make([]int, n)
		parallelFor(n, workers, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, count := range seen {
			if count != 1 {
				t.Errorf("workers=%d: index %d visited %d times, want 1", workers, i, count)
			}
		}
	}
}

func TestParallelFor_BlocksAreDisjoint(t *testing.T) {
	n := 1000
	workers := 8
	var races int32
	var wg sync.WaitGroup
	owner := make([]int32, n)
	for i := range owner {
		owner[i] = -1
	}

	parallelFor(n, workers, func(start, end int) {
		wg.Add(1)
		defer wg.Done()
		for i := start; i < end; i++ {
			if !atomic.CompareAndSwapInt32(&owner[i], -1, 1) {
				atomic.AddInt32(&races, 1)
			}
		}
	})
	wg.Wait()
	if races != 0 {
		t.Errorf("%d indices were claimed by more than one block", races)
	}
}

func TestParallelFor_SingleWorkerRunsInline(t *testing.T) {
	called := false
	parallelFor(10, 1, func(start, end int) {
		called = true
		if start != 0 || end != 10 {
			t.Errorf("fn(%d, %d), want fn(0, 10)", start, end)
		}
	})
	if !called {
		t.Error("fn was never called")
	}
}

func TestParallelFor_EmptyRange(t *testing.T) {
	called := false
	parallelFor(0, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestParallelFor_MoreWorkersThanItems(t *testing.T) {
	n := 3
	var mu sync.Mutex
	seen := make([]int, n)
	parallelFor(n, 16, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			seen[i]++
		}
	})
	for i, count := range seen {
		if count != 1 {
			t.Errorf("index %d visited %d times, want 1", i, count)
		}
	}
}

package catalog

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Goroutines covers the go statement, WaitGroups, mutexes, and atomics. The
// output of the lesson is deliberately ordered by synchronization, not
// scheduler luck.
var Goroutines = lesson.Descriptor{
	Number: 15,
	Slug:   "goroutines",
	Title:  "Goroutines & WaitGroups",
	Runner: lesson.RunnerFunc(runGoroutines),
}

func runGoroutines() {
	heading("go starts, WaitGroup waits")
	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = i * i // disjoint indexes, no race
		}()
	}
	wg.Wait()
	fmt.Println("squares computed concurrently:", results)

	heading("Mutex-guarded shared state")
	var mu sync.Mutex
	var sums sync.WaitGroup
	total := 0
	for i := 1; i <= 100; i++ {
		sums.Add(1)
		go func() {
			defer sums.Done()
			mu.Lock()
			total += i
			mu.Unlock()
		}()
	}
	sums.Wait()
	fmt.Println("sum of 1..100 =", total)

	heading("Atomics for counters")
	var hits atomic.Int64
	var counts sync.WaitGroup
	for i := 0; i < 50; i++ {
		counts.Add(1)
		go func() {
			defer counts.Done()
			hits.Add(1)
		}()
	}
	counts.Wait()
	fmt.Println("atomic hits:", hits.Load())

	heading("sync.Once")
	var once sync.Once
	for i := 0; i < 3; i++ {
		once.Do(func() { fmt.Println("initialized exactly once") })
	}
}

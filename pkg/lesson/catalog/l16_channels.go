package catalog

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Channels covers send/receive, buffering, close + range, select, and a
// small worker pool.
var Channels = lesson.Descriptor{
	Number: 16,
	Slug:   "channels",
	Title:  "Channels & select",
	Runner: lesson.RunnerFunc(runChannels),
}

func runChannels() {
	heading("Unbuffered channels synchronize")
	done := make(chan string)
	go func() { done <- "work finished" }()
	fmt.Println("received:", <-done)

	heading("Buffered channels decouple")
	buf := make(chan int, 3)
	buf <- 1
	buf <- 2
	fmt.Println("queued without a receiver:", len(buf), "items")
	fmt.Println("drained:", <-buf, <-buf)

	heading("close and range")
	nums := make(chan int)
	go func() {
		for i := 1; i <= 4; i++ {
			nums <- i * 10
		}
		close(nums)
	}()
	for v := range nums {
		fmt.Println("ranged over", v)
	}
	// Receiving from a closed channel yields the zero value immediately.
	v, open := <-nums
	fmt.Println("after close: value", v, "open", open)

	heading("select")
	fast := make(chan string, 1)
	slow := make(chan string)
	fast <- "fast lane"
	select {
	case msg := <-fast:
		fmt.Println("select picked the ready case:", msg)
	case msg := <-slow:
		fmt.Println("never:", msg)
	case <-time.After(time.Second):
		fmt.Println("timeout branch")
	}

	heading("A tiny worker pool")
	jobs := make(chan int)
	out := make(chan int)
	for w := 0; w < 3; w++ {
		go func() {
			for j := range jobs {
				out <- j * j
			}
		}()
	}
	go func() {
		for i := 1; i <= 5; i++ {
			jobs <- i
		}
		close(jobs)
	}()
	total := 0
	for i := 0; i < 5; i++ {
		total += <-out
	}
	fmt.Println("sum of squares 1..5 =", total)
}

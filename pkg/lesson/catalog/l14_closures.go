package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Closures covers captured variables, generator-style closures, and the
// loop-variable capture story.
var Closures = lesson.Descriptor{
	Number: 14,
	Slug:   "closures",
	Title:  "Closures & function values",
	Runner: lesson.RunnerFunc(runClosures),
}

func runClosures() {
	heading("Capturing state")
	next := sequence()
	fmt.Println(next(), next(), next())
	other := sequence() // independent state
	fmt.Println("a fresh sequence starts over:", other())

	heading("Closures as configuration")
	shout := decorate(strings.ToUpper, "!")
	fmt.Println(shout("go is fun"))

	heading("Closures in the stdlib")
	people := []string{"grace", "ada", "alan"}
	sort.Slice(people, func(i, j int) bool { return people[i] < people[j] })
	fmt.Println("sorted:", people)

	heading("Loop variables")
	// Since Go 1.22 each iteration gets a fresh variable, so closures
	// capture the value you expect.
	var printers []func()
	for i := 0; i < 3; i++ {
		printers = append(printers, func() { fmt.Print(i, " ") })
	}
	for _, p := range printers {
		p()
	}
	fmt.Println()

	heading("Accumulators")
	tally := accumulator()
	tally(5)
	tally(7)
	fmt.Println("total so far:", tally(0))
}

func sequence() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func decorate(transform func(string) string, suffix string) func(string) string {
	return func(s string) string {
		return transform(s) + suffix
	}
}

func accumulator() func(int) int {
	total := 0
	return func(n int) int {
		total += n
		return total
	}
}

package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// ControlFlow covers if with init statements, Go's single loop keyword, and
// switch in its expression and type-free forms.
var ControlFlow = lesson.Descriptor{
	Number: 5,
	Slug:   "control_flow",
	Title:  "if / for / switch",
	Runner: lesson.RunnerFunc(runControlFlow),
}

func runControlFlow() {
	heading("if with an init statement")
	if v := 9 % 2; v == 1 {
		fmt.Println("9 is odd (v =", v, "is scoped to the if)")
	}

	heading("for, the only loop")
	for i := 0; i < 3; i++ {
		fmt.Println("counted", i)
	}
	n := 1
	for n < 100 { // while-style
		n *= 3
	}
	fmt.Println("first power of 3 over 100:", n)
	for i := 0; ; i++ { // infinite with break
		if i*i > 20 {
			fmt.Println("break at i =", i)
			break
		}
	}

	heading("continue")
	for i := 1; i <= 10; i++ {
		if i%3 != 0 {
			continue
		}
		fmt.Println("multiple of 3:", i)
	}

	heading("switch")
	for _, day := range []int{1, 6, 7} {
		fmt.Printf("day %d is a %s\n", day, dayKind(day))
	}
	// switch with no expression is a cleaner if/else chain
	score := 73
	switch {
	case score >= 90:
		fmt.Println("grade A")
	case score >= 70:
		fmt.Println("grade B")
	default:
		fmt.Println("keep at it")
	}

	heading("labels")
outer:
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i*j == 2 {
				fmt.Println("breaking both loops at", i, j)
				break outer
			}
		}
	}
}

func dayKind(day int) string {
	switch day {
	case 6, 7:
		return "weekend"
	case 1, 2, 3, 4, 5:
		return "weekday"
	default:
		return "mystery"
	}
}

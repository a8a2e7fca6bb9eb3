package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Generics covers type parameters, constraints, and a small generic type.
var Generics = lesson.Descriptor{
	Number: 12,
	Slug:   "generics",
	Title:  "Generics & constraints",
	Runner: lesson.RunnerFunc(runGenerics),
}

// ordered is the subset of types that support < — the ~ permits named types
// whose underlying type matches.
type ordered interface {
	~int | ~int64 | ~float64 | ~string
}

func maxOf[T ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// stack is a generic container; the zero value is ready to use.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) { s.items = append(s.items, v) }

func (s *stack[T]) pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func runGenerics() {
	heading("Generic functions")
	fmt.Println("maxOf(3, 7) =", maxOf(3, 7))
	fmt.Println(`maxOf("ant", "bee") =`, maxOf("ant", "bee"))
	fmt.Println("maxOf(2.5, 1.5) =", maxOf(2.5, 1.5))

	heading("Type inference")
	squares := mapSlice([]int{1, 2, 3}, func(n int) int { return n * n })
	fmt.Println("squares:", squares)
	words := mapSlice([]int{1, 2, 3}, func(n int) string { return fmt.Sprint("#", n) })
	fmt.Println("labels:", words)

	heading("Generic types")
	var s stack[string]
	s.push("first")
	s.push("second")
	for {
		v, ok := s.pop()
		if !ok {
			break
		}
		fmt.Println("popped", v)
	}

	heading("Constraints with ~")
	type score int
	fmt.Println("named types satisfy ~int:", maxOf(score(4), score(9)))
}

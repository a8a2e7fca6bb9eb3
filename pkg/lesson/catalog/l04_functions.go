package catalog

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Functions covers multiple returns, named results, and variadics.
var Functions = lesson.Descriptor{
	Number: 4,
	Slug:   "functions",
	Title:  "Functions & multiple return values",
	Runner: lesson.RunnerFunc(runFunctions),
}

func runFunctions() {
	heading("Multiple return values")
	q, r := divmod(17, 5)
	fmt.Println("17 / 5 =", q, "remainder", r)

	heading("The ok idiom")
	if host, ok := splitHostPort("localhost:8080"); ok {
		fmt.Println("host =", host)
	}
	if _, ok := splitHostPort("no-port-here"); !ok {
		fmt.Println("splitHostPort reports failure with a bool, not a panic")
	}

	heading("Named results")
	area, perimeter := rectangle(3, 4)
	fmt.Println("area, perimeter =", area, perimeter)

	heading("Variadic functions")
	fmt.Println("sum() =", sum())
	fmt.Println("sum(1,2,3) =", sum(1, 2, 3))
	nums := []int{4, 5, 6}
	fmt.Println("sum(nums...) =", sum(nums...))

	heading("Functions are values")
	apply := func(f func(int) int, v int) int { return f(v) }
	double := func(v int) int { return v * 2 }
	fmt.Println("apply(double, 21) =", apply(double, 21))
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func splitHostPort(s string) (string, bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return "", false
	}
	return s[:i], true
}

// rectangle uses named results; the bare return ships both.
func rectangle(w, h int) (area, perimeter int) {
	area = w * h
	perimeter = 2 * (w + h)
	return
}

func sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Variables covers declarations, zero values, constants, and iota.
var Variables = lesson.Descriptor{
	Number: 2,
	Slug:   "variables",
	Title:  "Variables, constants & iota",
	Runner: lesson.RunnerFunc(runVariables),
}

const maxPoints = 100_000

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

func runVariables() {
	heading("Declarations")
	var x int = 5
	y := 6 // short declaration infers the type
	fmt.Println("x =", x, "y =", y)

	var a, b = "multi", true
	fmt.Println("a =", a, "b =", b)

	heading("Zero values")
	var n int
	var s string
	var p *int
	fmt.Printf("int: %d, string: %q, pointer: %v\n", n, s, p)

	heading("Constants")
	fmt.Println("maxPoints =", maxPoints)
	// Untyped constants adapt to context.
	const big = 1 << 20
	var f float64 = big
	fmt.Println("big as float64 =", f)

	heading("iota")
	for _, lv := range []logLevel{levelDebug, levelInfo, levelWarn, levelError} {
		fmt.Printf("level %d  %s\n", lv, lv.name())
	}

	heading("Shadowing")
	count := 1
	if count > 0 {
		count := count * 10 // a new variable, visible only in this block
		fmt.Println("inner count =", count)
	}
	fmt.Println("outer count =", count)
}

func (l logLevel) name() string {
	switch l {
	case levelDebug:
		return "debug"
	case levelInfo:
		return "info"
	case levelWarn:
		return "warn"
	case levelError:
		return "error"
	default:
		return "unknown"
	}
}

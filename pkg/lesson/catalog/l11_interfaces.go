package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Interfaces covers implicit satisfaction, type assertions, and type
// switches.
var Interfaces = lesson.Descriptor{
	Number: 11,
	Slug:   "interfaces",
	Title:  "Interfaces & type assertions",
	Runner: lesson.RunnerFunc(runInterfaces),
}

type shape interface {
	area() float64
}

type square struct{ side float64 }

func (s square) area() float64 { return s.side * s.side }

type rect struct{ w, h float64 }

func (r rect) area() float64 { return r.w * r.h }

// String makes rect satisfy fmt.Stringer — no declaration needed, the
// method set is enough.
func (r rect) String() string { return fmt.Sprintf("%gx%g rectangle", r.w, r.h) }

func runInterfaces() {
	heading("Implicit satisfaction")
	shapes := []shape{square{side: 2}, rect{w: 3, h: 4}}
	for _, s := range shapes {
		fmt.Printf("%v has area %g\n", s, s.area())
	}

	heading("Type assertions")
	var s shape = rect{w: 1, h: 5}
	if r, ok := s.(rect); ok {
		fmt.Println("it is a rect, width", r.w)
	}
	if _, ok := s.(square); !ok {
		fmt.Println("asserting the wrong type with ok just reports false")
	}

	heading("Type switches")
	for _, v := range []any{42, "text", square{side: 3}, nil} {
		fmt.Println(describe(v))
	}

	heading("nil interfaces vs nil values")
	var sp *square
	var boxed shape = sp
	// boxed holds a (*square)(nil): the interface itself is not nil.
	fmt.Println("boxed == nil:", boxed == nil)
}

func describe(v any) string {
	switch x := v.(type) {
	case int:
		return fmt.Sprintf("int %d", x)
	case string:
		return fmt.Sprintf("string %q of length %d", x, len(x))
	case shape:
		return fmt.Sprintf("a shape with area %g", x.area())
	case nil:
		return "a nil interface"
	default:
		return fmt.Sprintf("something else: %T", x)
	}
}

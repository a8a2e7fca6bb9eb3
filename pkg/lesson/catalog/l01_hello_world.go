package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// HelloWorld introduces the entry point, fmt printing verbs, and how a Go
// program is laid out.
var HelloWorld = lesson.Descriptor{
	Number: 1,
	Slug:   "hello_world",
	Title:  "Hello, world & program layout",
	Runner: lesson.RunnerFunc(runHelloWorld),
}

func runHelloWorld() {
	fmt.Println("Hello, Go learner!")
	fmt.Println("1 + 2 =", add(1, 2))

	name := "Go"
	fmt.Printf("Welcome to %s programming!\n", name)

	heading("Printing")
	fmt.Println("Println adds a newline and spaces between operands:", 1, 2.5, true)
	fmt.Printf("Printf uses verbs: %d, %.2f, %q, %v\n", 42, 3.14159, "quoted", []int{1, 2})
	fmt.Printf("%%T shows the type: %T %T %T\n", 42, "hi", add)

	heading("Program layout")
	fmt.Println("A Go program is a set of packages; execution starts in")
	fmt.Println("func main() of package main. Everything this lesson calls")
	fmt.Println("lives in an ordinary library package.")
}

func add(a, b int) int {
	return a + b
}

package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Pointers covers value semantics, &, *, and when a pointer is the right
// tool.
var Pointers = lesson.Descriptor{
	Number: 6,
	Slug:   "pointers",
	Title:  "Pointers & value semantics",
	Runner: lesson.RunnerFunc(runPointers),
}

type counter struct {
	hits int
}

func runPointers() {
	heading("Arguments are copies")
	v := 10
	bumpValue(v)
	fmt.Println("after bumpValue, v is still", v)
	bumpPointer(&v)
	fmt.Println("after bumpPointer, v is", v)

	heading("Address and dereference")
	p := &v
	fmt.Println("p points at", *p)
	*p = 99
	fmt.Println("writing through p changed v to", v)

	heading("Structs copy too")
	c := counter{hits: 1}
	c2 := c // independent copy
	c2.hits = 50
	fmt.Println("c.hits =", c.hits, "c2.hits =", c2.hits)

	heading("new and pointer lifetime")
	fresh := new(counter)
	fresh.hits++ // Go auto-dereferences struct pointers for field access
	fmt.Println("fresh counter after one hit:", fresh.hits)
	fmt.Println("escaping locals are fine:", *makeCounter().tick())

	heading("nil pointers")
	var maybe *counter
	fmt.Println("zero value of a pointer is nil:", maybe == nil)
}

func bumpValue(n int) { n++ }

func bumpPointer(n *int) { *n++ }

func makeCounter() *counter {
	// Returning the address of a local is safe; it escapes to the heap.
	c := counter{}
	return &c
}

func (c *counter) tick() *int {
	c.hits++
	return &c.hits
}

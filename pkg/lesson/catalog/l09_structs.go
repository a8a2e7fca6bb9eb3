package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Structs covers literals, comparison, embedding, and anonymous structs.
var Structs = lesson.Descriptor{
	Number: 9,
	Slug:   "structs",
	Title:  "Structs & embedding",
	Runner: lesson.RunnerFunc(runStructs),
}

type point struct {
	X, Y int
}

type circle struct {
	point  // embedded: circle gets X and Y promoted
	Radius int
}

func runStructs() {
	heading("Literals")
	p1 := point{X: 1, Y: 2}
	p2 := point{3, 4} // positional, fine for tiny structs
	fmt.Println("p1 =", p1, "p2 =", p2)

	heading("Structs are comparable")
	fmt.Println("p1 == point{1, 2}:", p1 == point{1, 2})

	heading("Update via copy")
	moved := p1
	moved.X += 10
	fmt.Println("p1 =", p1, "moved =", moved)

	heading("Embedding promotes fields")
	c := circle{point: point{X: 5, Y: 5}, Radius: 3}
	fmt.Println("c.X =", c.X, "same as c.point.X =", c.point.X)

	heading("Anonymous structs")
	entry := struct {
		Name string
		Hits int
	}{Name: "index", Hits: 7}
	fmt.Printf("%+v\n", entry)

	heading("Zero value is usable")
	var origin point
	fmt.Println("zero point:", origin, "distance from p2:", manhattan(origin, p2))
}

func manhattan(a, b point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

package catalog

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Slices covers arrays, slice headers, append growth, and the shared-backing
// gotcha.
var Slices = lesson.Descriptor{
	Number: 7,
	Slug:   "slices",
	Title:  "Arrays & slices",
	Runner: lesson.RunnerFunc(runSlices),
}

func runSlices() {
	heading("Arrays have fixed length")
	arr := [4]int{1, 2, 3, 4}
	arrCopy := arr // whole-array copy
	arrCopy[0] = 99
	fmt.Println("arr =", arr, "copy =", arrCopy)

	heading("Slices are views")
	s := arr[1:3]
	fmt.Println("s =", s, "len =", len(s), "cap =", cap(s))
	s[0] = 42 // writes through to the array
	fmt.Println("after s[0] = 42, arr =", arr)

	heading("append and growth")
	var grow []int
	for i := 0; i < 5; i++ {
		grow = append(grow, i)
		fmt.Printf("len=%d cap=%d %v\n", len(grow), cap(grow), grow)
	}

	heading("Shared backing arrays")
	base := []int{0, 1, 2, 3, 4}
	head := base[:2]
	head = append(head, 99) // overwrites base[2]: same backing array
	fmt.Println("base =", base, "head =", head)
	safe := append([]int(nil), base[:2]...) // copy first to detach
	safe = append(safe, 77)
	fmt.Println("base =", base, "safe =", safe)

	heading("copy and delete-by-slicing")
	dst := make([]int, 3)
	n := copy(dst, base)
	fmt.Println("copied", n, "elements:", dst)
	fmt.Println("without index 1:", removeAt([]int{10, 20, 30}, 1))

	heading("The slices package")
	vals := []int{3, 1, 2}
	slices.Sort(vals)
	fmt.Println("sorted:", vals, "contains 2:", slices.Contains(vals, 2))
}

func removeAt(s []int, i int) []int {
	return append(s[:i:i], s[i+1:]...)
}

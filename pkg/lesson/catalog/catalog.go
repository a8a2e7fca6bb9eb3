package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// heading prints a section banner inside a lesson body.
func heading(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

// All returns every built-in lesson in curriculum order. The slice is built
// fresh on each call; callers own it.
func All() []lesson.Descriptor {
	return []lesson.Descriptor{
		HelloWorld,
		Variables,
		Types,
		Functions,
		ControlFlow,
		Pointers,
		Slices,
		Maps,
		Structs,
		Methods,
		Interfaces,
		Generics,
		Errors,
		Closures,
		Goroutines,
		Channels,
		DeferPanic,
		StringsRunes,
		Packages,
	}
}

// NewRegistry builds the registry of built-in lessons.
func NewRegistry() (*lesson.Registry, error) {
	return lesson.NewRegistry(All()...)
}

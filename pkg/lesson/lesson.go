// Package lesson defines the lesson descriptor model and the registry used
// to list and resolve lessons by number or slug.
package lesson

import "fmt"

// Runner is the capability a lesson exposes: a zero-argument invocation that
// writes to stdout and returns nothing. Lessons are trusted code; a panic
// inside Run is not caught here.
type Runner interface {
	Run()
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func()

// Run invokes the function.
func (f RunnerFunc) Run() { f() }

// Descriptor identifies one runnable lesson.
type Descriptor struct {
	// Number is the positive numeric identifier, unique across a registry.
	Number int
	// Slug is the stable textual identifier, unique and case-sensitive.
	Slug string
	// Title is the human-readable description shown by the lister.
	Title string
	// Runner executes the lesson body.
	Runner Runner
}

// NotFoundError reports a selector that matched neither a lesson number nor
// a lesson slug.
type NotFoundError struct {
	Selector string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Lesson '%s' not found", e.Selector)
}

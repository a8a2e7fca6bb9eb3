package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// DeferPanic covers defer ordering, argument evaluation, and recover.
var DeferPanic = lesson.Descriptor{
	Number: 17,
	Slug:   "defer_panic",
	Title:  "defer, panic & recover",
	Runner: lesson.RunnerFunc(runDeferPanic),
}

func runDeferPanic() {
	heading("defer runs last, LIFO")
	func() {
		defer fmt.Println("deferred first, prints third")
		defer fmt.Println("deferred second, prints second")
		fmt.Println("body prints first")
	}()

	heading("Arguments evaluate at defer time")
	func() {
		n := 1
		defer fmt.Println("captured n =", n)
		n = 99
		fmt.Println("n is now", n)
	}()

	heading("defer can adjust named results")
	fmt.Println("audited(6) returned", audited(6))

	heading("recover turns a panic into an error")
	if err := safely(func() { panic("boom") }); err != nil {
		fmt.Println("recovered:", err)
	}
	if err := safely(func() { fmt.Println("no panic here") }); err == nil {
		fmt.Println("nil error when nothing panicked")
	}

	heading("Panics unwind through defers")
	func() {
		defer fmt.Println("this defer still runs during unwinding")
		if err := safely(divide); err != nil {
			fmt.Println("runtime panics recover too:", err)
		}
	}()
}

// audited doubles its input; the deferred closure sees and edits the named
// result after the return statement assigns it.
func audited(n int) (result int) {
	defer func() {
		if result > 10 {
			result = 10
		}
	}()
	return n * 2
}

func safely(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()
	f()
	return nil
}

func divide() {
	zero := 0
	_ = 1 / zero
}

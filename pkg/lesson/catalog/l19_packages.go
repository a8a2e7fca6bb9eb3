package catalog

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Packages explains exporting, import paths, and initialization order. Much
// of this lesson is prose: package structure cannot be demonstrated inside
// one function, so it narrates the rules and points at this repository as
// the worked example.
var Packages = lesson.Descriptor{
	Number: 19,
	Slug:   "packages",
	Title:  "Packages, exports & init",
	Runner: lesson.RunnerFunc(runPackages),
}

func runPackages() {
	heading("Exported vs unexported")
	fmt.Println("An identifier is exported when it starts with an upper-case")
	fmt.Println("letter: lesson.Descriptor crosses package boundaries, while")
	fmt.Println("this file's helpers stay private to the catalog package.")

	heading("Import paths")
	fmt.Println("A package is imported by module path + directory:")
	fmt.Println(`  import "github.com/leapstack-labs/leaplearn/pkg/lesson"`)
	fmt.Println("The last path element is the package name you reference.")

	heading("internal/")
	fmt.Println("Packages under internal/ are importable only by this module;")
	fmt.Println("the CLI wiring lives there so it is not public API.")

	heading("Initialization order")
	fmt.Println("Package-level values initialize before main, in dependency")
	fmt.Println("order; the catalog's descriptor variables exist before the")
	fmt.Println("registry is built. sideEffect below ran at startup:", sideEffect)

	heading("One package, many files")
	fmt.Println("Every lesson file here declares 'package catalog'; the")
	fmt.Println("compiler treats them as one unit, so files share helpers")
	fmt.Println("without imports.")
}

// sideEffect exists to show package-level initialization ordering.
var sideEffect = fmt.Sprintf("computed at startup, 2^10 = %d", 1<<10)

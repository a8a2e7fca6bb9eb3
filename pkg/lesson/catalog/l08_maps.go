package catalog

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Maps covers construction, the comma-ok lookup, deletion, and the
// unordered-iteration rule.
var Maps = lesson.Descriptor{
	Number: 8,
	Slug:   "maps",
	Title:  "Maps",
	Runner: lesson.RunnerFunc(runMaps),
}

func runMaps() {
	heading("Construction")
	ages := map[string]int{"ada": 36, "grace": 45}
	ages["alan"] = 41
	fmt.Println("len(ages) =", len(ages))

	heading("Lookup and the comma-ok idiom")
	fmt.Println("missing key yields the zero value:", ages["nobody"])
	if _, ok := ages["nobody"]; !ok {
		fmt.Println("comma-ok distinguishes absent from zero")
	}

	heading("Delete")
	delete(ages, "alan")
	_, ok := ages["alan"]
	fmt.Println("alan present after delete:", ok)

	heading("Iteration order is unspecified")
	// Collect and sort keys when output must be deterministic.
	keys := make([]string, 0, len(ages))
	for k := range ages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s is %d\n", k, ages[k])
	}

	heading("Maps as sets")
	seen := map[rune]struct{}{}
	for _, r := range "bookkeeper" {
		seen[r] = struct{}{}
	}
	fmt.Println("distinct letters in 'bookkeeper':", len(seen))

	heading("Counting")
	fmt.Println("word counts:", wordCount("the quick the lazy the"))

	heading("nil maps")
	var nilMap map[string]int
	fmt.Println("reading a nil map is fine:", nilMap["x"], "— writing panics")
}

func wordCount(s string) map[string]int {
	counts := map[string]int{}
	word := ""
	for _, r := range s + " " {
		if r == ' ' {
			if word != "" {
				counts[word]++
			}
			word = ""
			continue
		}
		word += string(r)
	}
	return counts
}

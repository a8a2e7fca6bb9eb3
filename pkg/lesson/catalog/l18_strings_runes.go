package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// StringsRunes covers bytes vs runes, UTF-8 iteration, and the strings
// package.
var StringsRunes = lesson.Descriptor{
	Number: 18,
	Slug:   "strings_runes",
	Title:  "Strings, bytes & runes",
	Runner: lesson.RunnerFunc(runStringsRunes),
}

func runStringsRunes() {
	heading("Strings are bytes")
	s := "héllo"
	fmt.Println("len counts bytes:", len(s))
	fmt.Println("rune count:", utf8.RuneCountInString(s))
	fmt.Printf("s[1] is a byte: %d (0x%x)\n", s[1], s[1])

	heading("range decodes runes")
	for i, r := range "héllo" {
		fmt.Printf("byte offset %d: %q\n", i, r)
	}

	heading("Conversions")
	b := []byte("data")
	r := []rune("héllo")
	fmt.Println("as bytes:", b, "as runes:", r)
	fmt.Println("reversed:", reverseRunes("héllo"))

	heading("Strings are immutable; build with a Builder")
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, "part%d;", i)
	}
	fmt.Println("built:", sb.String())

	heading("The strings package")
	fmt.Println(strings.ToUpper("shout"),
		strings.Repeat("ab", 3),
		strings.Split("a,b,c", ","),
		strings.TrimSpace("  padded  "))
	fmt.Println("Contains:", strings.Contains("gopher", "pher"),
		"Index:", strings.Index("gopher", "ph"))
}

func reverseRunes(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

package catalog

import (
	"fmt"
	"math"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Types tours the basic types and explicit conversions.
var Types = lesson.Descriptor{
	Number: 3,
	Slug:   "types",
	Title:  "Basic types & conversions",
	Runner: lesson.RunnerFunc(runTypes),
}

// celsius and fahrenheit are distinct types even though both are float64;
// mixing them requires an explicit conversion.
type celsius float64

type fahrenheit float64

func runTypes() {
	heading("Integers")
	var i8 int8 = 127
	var u8 uint8 = 255
	fmt.Println("int8 max:", i8, "uint8 max:", u8)
	fmt.Println("int8 overflow wraps:", i8+1)

	heading("Floats")
	fmt.Println("float64 holds", math.Pi)
	fmt.Printf("float32 narrows it to %v\n", float32(math.Pi))
	fmt.Println("0.1 + 0.2 ==", 0.1+0.2)

	heading("Explicit conversions")
	x := 65
	fmt.Printf("int %d -> float64 %v -> string %q\n", x, float64(x), string(rune(x)))
	f := 3.99
	fmt.Println("float64 to int truncates:", int(f))

	heading("Named types")
	boiling := celsius(100)
	fmt.Printf("%v degC = %v degF\n", float64(boiling), float64(toFahrenheit(boiling)))

	heading("Booleans and complex")
	fmt.Println("1 < 2 && 2 < 3 =", 1 < 2 && 2 < 3)
	c := complex(1, 2)
	fmt.Println("complex:", c, "real:", real(c), "imag:", imag(c))
}

func toFahrenheit(c celsius) fahrenheit {
	return fahrenheit(c*9/5 + 32)
}

// Package main provides the LeapLearn tutorial CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/leaplearn/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

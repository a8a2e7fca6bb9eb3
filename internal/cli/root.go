// Package cli provides the command-line interface for LeapLearn.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/leaplearn/internal/cli/commands"
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/leapstack-labs/leaplearn/pkg/lesson/catalog"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates the root command. The registry is threaded through to
// every subcommand; nothing reads a package-global table.
func NewRootCmd(reg *lesson.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leaplearn [lesson]",
		Short: "LeapLearn - Go lessons, one feature at a time",
		Long: `LeapLearn is a tutorial suite: every lesson demonstrates one Go language
feature in isolation and prints a worked demonstration to stdout.

Run a lesson by its number or its slug, or list the whole curriculum.`,
		Example: `  # List all lessons
  leaplearn list

  # Run a lesson by slug
  leaplearn slices

  # Run a lesson by number
  leaplearn 7

  # Browse lessons interactively
  leaplearn browse`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Bare invocation shows usage on stderr and succeeds;
				// asking for nothing is not an error.
				return cmd.Usage()
			}
			return commands.RunLesson(reg, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Go lessons, one feature at a time
`)

	rootCmd.AddCommand(commands.NewListCommand(reg))
	rootCmd.AddCommand(commands.NewRunCommand(reg))
	rootCmd.AddCommand(commands.NewBrowseCommand(reg))
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute builds the registry, runs the root command, and returns the
// process exit code. An unresolved selector prints the error followed by
// usage, both on stderr.
func Execute() int {
	reg, err := catalog.NewRegistry()
	if err != nil {
		// A duplicate number or slug in the catalog is an authoring bug;
		// fail loudly before dispatching anything.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rootCmd := NewRootCmd(reg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var nf *lesson.NotFoundError
		if errors.As(err, &nf) {
			_ = rootCmd.Usage()
		}
		return 1
	}
	return 0
}

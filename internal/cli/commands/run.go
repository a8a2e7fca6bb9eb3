package commands

import (
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/spf13/cobra"
)

// RunLesson resolves a selector against the registry and invokes the
// matching lesson. The lesson body owns stdout while it runs; a panic
// inside it is deliberately not caught.
func RunLesson(reg *lesson.Registry, selector string) error {
	d, err := reg.Resolve(selector)
	if err != nil {
		return err
	}
	d.Runner.Run()
	return nil
}

// NewRunCommand creates the run command, the explicit form of the bare
// `leaplearn <lesson>` dispatch.
func NewRunCommand(reg *lesson.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "run <lesson>",
		Short: "Run one lesson by number or slug",
		Long: `Run a single lesson. The selector is interpreted as a lesson number
first; only when it is not a number (or no lesson has that number) is it
matched against lesson slugs, exactly and case-sensitively.`,
		Example: `  # Run by number
  leaplearn run 7

  # Run by slug
  leaplearn run slices`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return RunLesson(reg, args[0])
		},
	}
}

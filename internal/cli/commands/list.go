package commands

import (
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(reg *lesson.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all lessons",
		Long: `Print every lesson in curriculum order, one per line: the zero-padded
number, the slug, and the title. The output is stable across runs and safe
to parse in scripts.`,
		Example: `  # List all lessons
  leaplearn list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg.List(cmd.OutOrStdout())
			return nil
		},
	}
}

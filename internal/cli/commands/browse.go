package commands

import (
	"fmt"

	"github.com/leapstack-labs/leaplearn/internal/tui"
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/spf13/cobra"
)

// NewBrowseCommand creates the browse command, an interactive picker over
// the lesson registry.
func NewBrowseCommand(reg *lesson.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse lessons interactively",
		Long: `Open a terminal browser over the curriculum. Navigate with the arrow
keys, filter by typing /, and press Enter to run the highlighted lesson.
The lesson runs after the browser closes so its output lands on a normal
terminal, exactly as 'leaplearn run' would print it.`,
		Example: `  # Pick a lesson interactively
  leaplearn browse`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			choice, err := tui.Browse(reg)
			if err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			if choice == nil {
				return nil
			}
			choice.Runner.Run()
			return nil
		},
	}
}

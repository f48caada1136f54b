package plan

import (
	"github.com/spf13/cobra"
)

// NewPlanCommand initializes the command group for computing and inspecting
// the production plan.
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute and inspect the finite-capacity production plan",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}
	cmd.AddCommand(
		NewScheduleCommand(),
		NewValidateCommand(),
	)
	return cmd
}

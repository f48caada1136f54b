package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/foundry/client/cmd/plan"
	"github.com/goto/foundry/client/cmd/version"
)

// New constructs the root command for the foundry cli.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foundry <command> <subcommand> [flags]",
		Short:         "Finite-capacity production scheduler",
		Long:          "Foundry computes shift-aware, finite-capacity production schedules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ foundry plan schedule --spec-path plan.yaml
			$ foundry plan validate --spec-path plan.yaml
		`),
		Annotations: map[string]string{
			"help:feedback": heredoc.Doc(`
				Open an issue on the repository to give feedback.
			`),
		},
	}

	cmd.AddCommand(
		plan.NewPlanCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}

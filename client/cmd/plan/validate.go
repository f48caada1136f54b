package plan

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goto/foundry/client/cmd/internal/logger"
	"github.com/goto/foundry/client/local"
	"github.com/goto/foundry/config"
)

type validateCommand struct {
	logger log.Logger

	configFilePath string
	specFilePath   string
}

// NewValidateCommand initializes the command that checks a plan spec without
// scheduling it.
func NewValidateCommand() *cobra.Command {
	validate := &validateCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a plan spec without computing the schedule",
		Long: heredoc.Doc(`
			Parses the plan spec and reports structural problems: missing names,
			empty shift sets, non positive durations and mismatched operation
			arrays.
		`),
		Example: "foundry plan validate --spec-path plan.yaml",
		RunE:    validate.RunE,
		PreRunE: validate.PreRunE,
	}

	cmd.Flags().StringVarP(&validate.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&validate.specFilePath, "spec-path", "s", "", "File path of the plan spec to validate")
	return cmd
}

func (v *validateCommand) PreRunE(_ *cobra.Command, _ []string) error {
	conf, err := config.LoadOptionalConfig(v.configFilePath)
	if err != nil {
		return err
	}
	if v.specFilePath == "" {
		if conf != nil {
			v.specFilePath = conf.Plan.SpecPath
		} else {
			v.specFilePath = "plan.yaml"
		}
	}
	return nil
}

func (v *validateCommand) RunE(_ *cobra.Command, _ []string) error {
	specReader := local.NewPlanSpecReader(afero.NewOsFs())
	spec, err := specReader.ReadByPath(v.specFilePath)
	if err != nil {
		return err
	}
	v.logger.Info("plan spec is valid: %d machines, %d work centers, %d projects",
		len(spec.Machines), len(spec.WorkCenters), len(spec.Projects))
	return nil
}

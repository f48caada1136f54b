package plan

import (
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goto/foundry/client/cmd/internal/logger"
	"github.com/goto/foundry/client/local"
	"github.com/goto/foundry/config"
	"github.com/goto/foundry/core/plan/service"
	"github.com/goto/foundry/internal/errors"
	"github.com/goto/foundry/internal/lib/calendar"
)

const entityScheduleCmd = "schedule_command"

type scheduleCommand struct {
	logger log.Logger

	configFilePath string
	specFilePath   string
	timezone       string
}

// NewScheduleCommand initializes the command that computes the schedule for
// a plan spec and prints the project, resource and idle reports.
func NewScheduleCommand() *cobra.Command {
	schedule := &scheduleCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the finite-capacity schedule for a plan spec",
		Long: heredoc.Doc(`
			Places every project operation at the earliest feasible window on its
			target resource, honoring shift boundaries, overnight wraparound and
			the excluded day, then prints the project schedule, the per-resource
			timelines and the idle hours per resource.
		`),
		Example: "foundry plan schedule --spec-path plan.yaml",
		RunE:    schedule.RunE,
		PreRunE: schedule.PreRunE,
	}

	schedule.injectFlags(cmd)
	return cmd
}

func (s *scheduleCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&s.specFilePath, "spec-path", "s", "", "File path of the plan spec to schedule")
	cmd.Flags().StringVar(&s.timezone, "timezone", "", "Location for interpreting start timestamps")
}

func (s *scheduleCommand) PreRunE(_ *cobra.Command, _ []string) error {
	conf, err := config.LoadOptionalConfig(s.configFilePath)
	if err != nil {
		return err
	}
	if conf == nil {
		if s.specFilePath == "" {
			s.specFilePath = "plan.yaml"
		}
		if s.timezone == "" {
			s.timezone = "UTC"
		}
		return nil
	}

	if s.specFilePath == "" {
		s.specFilePath = conf.Plan.SpecPath
	}
	if s.timezone == "" {
		s.timezone = conf.Plan.Timezone
	}
	if conf.Log.Level != "" {
		s.logger = logger.NewClientLoggerWithLevel(conf.Log.Level)
	}
	return nil
}

func (s *scheduleCommand) RunE(cmd *cobra.Command, _ []string) error {
	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return errors.InvalidArgument(entityScheduleCmd, "unknown timezone "+s.timezone)
	}

	specReader := local.NewPlanSpecReader(afero.NewOsFs())
	spec, err := specReader.ReadByPath(s.specFilePath)
	if err != nil {
		return err
	}

	cal := calendar.Default()
	resources, err := spec.ToResources(cal)
	if err != nil {
		return err
	}
	projects, err := spec.ToProjects(loc)
	if err != nil {
		return err
	}

	scheduler, err := service.NewScheduler(s.logger, cal, resources, projects)
	if err != nil {
		return err
	}
	s.logger.Info("scheduling %d projects on %d resources", len(projects), len(resources))
	if err := scheduler.Run(cmd.Context()); err != nil {
		return err
	}

	idleReport := service.NewIdleService(s.logger, cal).Report(resources)

	s.logger.Info(stringifyProjectSchedule(scheduler))
	s.logger.Info(stringifyResourceSchedules(resources, scheduler.Projects()))
	s.logger.Info(stringifyIdleReport(idleReport))
	return nil
}

package version

import (
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/foundry/client/cmd/internal/logger"
)

// BuildVersion is overridden through ldflags at release time.
var BuildVersion = "dev"

type versionCommand struct {
	logger log.Logger
}

// NewVersionCommand initializes the command to print the client version.
func NewVersionCommand() *cobra.Command {
	version := &versionCommand{
		logger: logger.NewClientLogger(),
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version information",
		RunE:  version.RunE,
	}
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info("client: %s", BuildVersion)
	return nil
}

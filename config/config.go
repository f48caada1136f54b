package config

const (
	// DefaultFilename is looked up in the working directory when no config
	// flag is given.
	DefaultFilename = "foundry.yaml"

	// EmptyPath marks the config flag as unset.
	EmptyPath = ""
)

type ClientConfig struct {
	Version int        `mapstructure:"version"`
	Log     LogConfig  `mapstructure:"log"`
	Plan    PlanConfig `mapstructure:"plan"`
}

type LogConfig struct {
	Level  string `default:"INFO" mapstructure:"level"` // log level: DEBUG, INFO, WARNING, ERROR, FATAL
	Format string `mapstructure:"format"`               // format strategy: plain, json
}

type PlanConfig struct {
	SpecPath string `default:"plan.yaml" mapstructure:"spec_path"` // plan spec to schedule
	Timezone string `default:"UTC"       mapstructure:"timezone"`  // location for start timestamps
}

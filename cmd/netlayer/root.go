package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/netlayer/config"
	"github.com/kbukum/netlayer/endpoint"
	"github.com/kbukum/netlayer/httpclient"
	"github.com/kbukum/netlayer/logger"
	"github.com/kbukum/netlayer/observability"
	"github.com/kbukum/netlayer/validation"
)

const (
	serviceName  = "netlayer"
	cliComponent = "cli"
)

// Config is the netlayer configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	HTTP                 httpclient.Config    `yaml:"http" mapstructure:"http"`
	Endpoint             endpoint.Config      `yaml:"endpoint" mapstructure:"endpoint"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
	Output               string               `yaml:"output" mapstructure:"output"`
}

// ApplyDefaults fills in defaults for every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Output == "" {
		c.Output = outputJSON
	}
}

// Validate checks every section except the endpoint, which is validated
// when it is turned into a descriptor.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}
	if err := validation.New().OneOf("output", c.Output, []string{outputJSON, outputYAML}).Validate(); err != nil {
		return err
	}
	return nil
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Fire one HTTP request described by flags or a config file",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&gf.configFile, "config", "c", "", "config file (default: netlayer.yml in the working or user config directory)")
	flags.StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&gf.logFormat, "log-format", "", "log format: console, json, pretty")

	root.AddCommand(callSubcommand(&gf))
	root.AddCommand(versionSubcommand())
	return root
}

// loadConfig reads the config file and environment, then applies the
// global flag overrides.
func loadConfig(gf *globalFlags) (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption
	if gf.configFile != "" {
		opts = append(opts, config.WithConfigFile(gf.configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	if gf.logLevel != "" {
		cfg.Logging.Level = gf.logLevel
	}
	if gf.logFormat != "" {
		cfg.Logging.Format = gf.logFormat
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Init(&cfg.Logging)
	logger.Register(cliComponent, logger.GetGlobalLogger().WithComponent(cliComponent))
	return &cfg, nil
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/netlayer/endpoint"
	"github.com/kbukum/netlayer/httpclient"
	"github.com/kbukum/netlayer/logger"
	"github.com/kbukum/netlayer/observability"
	"github.com/kbukum/netlayer/validation"
)

// callFlags override the endpoint and http sections of the config file.
type callFlags struct {
	scheme       string
	host         string
	path         string
	method       string
	query        []string
	timeout      time.Duration
	maxBodyBytes int64
	strictStatus bool
	output       string
	otel         bool
}

func callSubcommand(gf *globalFlags) *cobra.Command {
	var cf callFlags

	cmd := &cobra.Command{
		Use:   "call [URL]",
		Short: "Send one GET or DELETE request and print the JSON response",
		Example: `  netlayer call https://api.example.com/v1/users?page=2
  netlayer call --method DELETE --host api.example.com --path /v1/users/7
  netlayer call -c endpoints.yml --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(gf)
			if err != nil {
				return err
			}
			if err := cf.apply(cmd, cfg, args); err != nil {
				return err
			}
			return runCall(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cf.scheme, "scheme", "", "URL scheme: http or https")
	flags.StringVar(&cf.host, "host", "", "host, optionally with :port")
	flags.StringVar(&cf.path, "path", "", "absolute path, e.g. /v1/users")
	flags.StringVarP(&cf.method, "method", "X", "", "HTTP method: GET or DELETE")
	flags.StringArrayVarP(&cf.query, "query", "q", nil, "query parameter as name=value; repeatable, order is kept")
	flags.DurationVar(&cf.timeout, "timeout", 0, "request timeout")
	flags.Int64Var(&cf.maxBodyBytes, "max-body-bytes", 0, "maximum response body size")
	flags.BoolVar(&cf.strictStatus, "strict-status", false, "fail on non-2xx responses instead of decoding them")
	flags.StringVarP(&cf.output, "output", "o", "", "output format: json or yaml")
	flags.BoolVar(&cf.otel, "otel", false, "export traces and metrics over OTLP/HTTP")
	return cmd
}

// apply merges the positional URL and explicitly set flags into cfg.
func (cf *callFlags) apply(cmd *cobra.Command, cfg *Config, args []string) error {
	if len(args) == 1 {
		ec, err := endpointFromURL(args[0])
		if err != nil {
			return err
		}
		ec.Method = cfg.Endpoint.Method
		cfg.Endpoint = ec
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		cfg.Endpoint.Scheme = cf.scheme
	}
	if flags.Changed("host") {
		cfg.Endpoint.Host = cf.host
	}
	if flags.Changed("path") {
		cfg.Endpoint.Path = cf.path
	}
	if flags.Changed("method") {
		cfg.Endpoint.Method = cf.method
	}
	if flags.Changed("query") {
		params, err := parseQueryFlags(cf.query)
		if err != nil {
			return err
		}
		cfg.Endpoint.Query = append(cfg.Endpoint.Query, params...)
	}
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = cf.timeout
	}
	if flags.Changed("max-body-bytes") {
		cfg.HTTP.MaxBodyBytes = cf.maxBodyBytes
	}
	if flags.Changed("strict-status") {
		cfg.HTTP.StrictStatus = cf.strictStatus
	}
	if flags.Changed("output") {
		cfg.Output = cf.output
	}
	if flags.Changed("otel") {
		cfg.Observability.Enabled = cf.otel
	}
	return cfg.Validate()
}

// parseQueryFlags turns name=value flags into ordered query parameters.
// A flag without "=" is a parameter with an empty value.
func parseQueryFlags(raw []string) ([]endpoint.QueryParam, error) {
	v := validation.New()
	params := make([]endpoint.QueryParam, 0, len(raw))
	for i, item := range raw {
		name, value, _ := strings.Cut(item, "=")
		v.Required(fmt.Sprintf("query[%d].name", i), name)
		params = append(params, endpoint.Param(name, value))
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// endpointFromURL splits an absolute URL into endpoint settings.
func endpointFromURL(raw string) (endpoint.Config, error) {
	u, err := parseAbsoluteURL(raw)
	if err != nil {
		return endpoint.Config{}, err
	}
	query, err := endpoint.DecodeQuery(u.RawQuery)
	if err != nil {
		return endpoint.Config{}, validation.New().Custom(false, "url", "query does not decode: "+err.Error()).Validate()
	}
	return endpoint.Config{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   u.Path,
		Query:  query,
	}, nil
}

func runCall(cmd *cobra.Command, cfg *Config) error {
	ctx := cmd.Context()
	log := logger.Get(cliComponent)

	ep, err := cfg.Endpoint.Endpoint()
	if err != nil {
		return err
	}

	shutdown, err := observability.Setup(ctx, cfg.Name, cfg.Observability)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	opts := []httpclient.Option{httpclient.WithLogger(logger.GetGlobalLogger())}
	if cfg.Observability.Enabled {
		metrics, err := observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			return err
		}
		opts = append(opts, httpclient.WithMetrics(metrics))
	}

	exec, err := httpclient.New(cfg.HTTP, opts...)
	if err != nil {
		return err
	}

	log.Debug("calling endpoint", logger.Fields(logger.FieldMethod, string(ep.Method()), logger.FieldHost, ep.Host()))
	body, err := httpclient.Await[any](ctx, exec, ep)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), cfg.Output, body)
}

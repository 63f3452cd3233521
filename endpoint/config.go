package endpoint

import (
	"github.com/kbukum/netlayer/validation"
)

// Config describes an endpoint in a configuration file.
//
//	endpoint:
//	  scheme: https
//	  host: api.example.com
//	  path: /v1/users
//	  method: GET
//	  query:
//	    - name: page
//	      value: "2"
type Config struct {
	Scheme string       `yaml:"scheme" mapstructure:"scheme" validate:"required,oneof=http https"`
	Host   string       `yaml:"host" mapstructure:"host" validate:"required,excludesall=/?# "`
	Path   string       `yaml:"path" mapstructure:"path" validate:"omitempty,startswith=/"`
	Method string       `yaml:"method" mapstructure:"method" validate:"required,oneof=GET DELETE"`
	Query  []QueryParam `yaml:"query" mapstructure:"query" validate:"dive"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Scheme == "" {
		c.Scheme = string(HTTPS)
	}
	if c.Method == "" {
		c.Method = string(GET)
	} else if m, ok := ParseMethod(c.Method); ok {
		c.Method = string(m)
	}
	if s, ok := ParseScheme(c.Scheme); ok {
		c.Scheme = string(s)
	}
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// Endpoint validates the configuration and converts it into an Endpoint.
func (c Config) Endpoint() (Endpoint, error) {
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return Endpoint{}, err
	}
	return New(Method(c.Method), Scheme(c.Scheme), c.Host, c.Path, c.Query...), nil
}

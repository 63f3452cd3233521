// Package config loads program configuration from a YAML file, an optional
// .env file and prefixed environment variables using Viper.
//
//	var cfg Config
//	if err := config.LoadConfig("netlayer", &cfg, config.WithConfigFile(path)); err != nil {
//	    return err
//	}
//
// Environment variables override file values: NETLAYER_HTTP_TIMEOUT=5s sets
// http.timeout.
package config

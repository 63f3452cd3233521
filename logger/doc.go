// Package logger provides structured logging for netlayer using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The request executor
// uses it as its diagnostic side channel.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("httpclient")
//	log.Error("transport failed", logger.ErrorFields("request", err))
package logger

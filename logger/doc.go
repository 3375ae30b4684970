// Package logger provides structured logging for accountkit using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("account")
//	log.Debug("fetching permissions", logger.Fields("token", "..."))
package logger

// Package logger provides structured logging for uakit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Provider code obtains
// its logger through the named registry:
//
//	log := logger.Get(logger.ComponentProvider)
//	log.Warn("candidate pool below limit", logger.Fields("pool_size", 37))
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
package logger

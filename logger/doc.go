// Package logger provides structured logging for vmcore using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. The iteration primitives never log; the random
// engine logs reseeds at debug level and entropy failures at error level.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("vmcore").WithComponent("random")
//	log.Debug("engine reseeded", logger.Fields("algorithm", "mt19937"))
package logger

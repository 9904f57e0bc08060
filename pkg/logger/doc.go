// Package logger builds configured log/slog loggers for gate diagnostics.
//
// The factory wires format, level, output destination, and static attributes
// through functional options, with production-safe defaults (JSON, info
// level). Gate and wait loop diagnostics are emitted at debug level, so the
// development preset is the one that makes them visible:
//
//	log := logger.New(logger.WithDevelopment("worker"))
//	logger.SetAsDefault(log)
//
//	g := gate.MustNew("cache warm", cond, gate.WithLogger(log))
//
// The attr helpers keep record keys consistent across packages: Gate, GateID,
// Attempts, Timeout, Error and friends all map to the keys used by pkg/gate
// and pkg/waitloop themselves.
package logger

// Package logging provides a structured logging system for boltyard with
// unified log handling and level filtering.
//
// This package implements a logging system built on Go's standard slog
// package, providing consistent logging behavior with structured output.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// Every log entry carries a timestamp, a level, a subsystem identifier and
// the message, plus optional error information.
//
// # Usage
//
//	import "boltyard/pkg/logging"
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Cluster", "Starting %d machines", n)
//	logging.Debug("Docker", "running %s %v", bin, args)
//	logging.Error("Cluster", err, "Failed to start machine %s", name)
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering:
//
//   - **Cluster**: service lifecycle and topology changes
//   - **Docker**: container runtime invocations
//   - **Routing**: routing table fetches
//   - **Console**: console session events
//
// The logging system is safe for concurrent use from multiple goroutines.
package logging

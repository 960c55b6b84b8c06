// Package logging provides structured logging configuration for the devtools
// commands.
//
// This package wraps log/slog so that both commands configure levels and
// output formats the same way.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("dialing", "url", "ws://localhost:8081/")
//	logger.Error("write failed", "error", err)
//
// # Integration
//
// Components accept a *slog.Logger through their options. When none is given
// they use Nop(). Log records go to stderr so that they never interleave with
// the report lines a command prints to stdout.
package logging

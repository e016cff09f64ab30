// Package logger provides the structured logging setup used across
// wordkit, built on Go's slog package. A single factory, New, creates a
// *slog.Logger configured by functional options: output format (text or
// json), minimum level, destination writer, and static attributes
// applied to every record.
//
// The selector pipeline accepts the resulting logger through its Config
// and uses it to surface diagnostics a pure return value cannot carry,
// most notably which unsupported linguistic options triggered the
// all-exclude filter policy.
//
// # Usage
//
//	import "github.com/wordkit/wordkit/pkg/logger"
//
//	log := logger.New(
//		logger.WithTextFormat(),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	res, _ := selector.Select(words, 4, &selector.Config{
//		Languages: []string{"en"}, // unsupported; logged, then all-exclude
//		Logger:    log,
//	})
//
// Helper constructors in attr.go (Error, Stage, Options, WordCount)
// keep attribute naming consistent across the kit.
package logger

// Package logger builds *slog.Logger instances for the fluid tools.
//
// New applies functional options over a JSON, info-level, stderr default.
// WithEnvironment switches to the per-environment defaults (text and debug in
// development, JSON and info elsewhere) and tags every record with the
// service name and environment.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "fluid"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "dictionary built",
//		logger.Path("pkg/fluid/dict.bin"),
//		logger.Combinations(d.UniqueCombinations()),
//	)
//
// The attribute helpers (Error, Category, Count, Path, Combinations and
// friends) keep key names consistent across commands and the HTTP API.
package logger

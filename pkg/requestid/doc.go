// Package requestid tags each HTTP request with a correlation ID.
//
// The fluid API generates IDs with the same four-word generator it serves,
// so a log line reads "request_id=brown-fox-boldly-jumps" instead of a hex
// UUID:
//
//	r.Use(requestid.Middleware(fluid.Generate))
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// A client-supplied X-Request-ID is kept when it is at most 128 characters of
// [a-zA-Z0-9_-]; anything else is replaced.
package requestid

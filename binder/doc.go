// Package binder decodes request parameters into tagged structs for
// handler.Wrap.
//
// BindQuery reads `query` tags from the URL query string. Path reads `path`
// tags through a router-specific extractor such as chi.URLParam. Supported
// field types are strings, integers, booleans, pointers and slices of
// those, and anything whose pointer implements encoding.TextUnmarshaler.
// A value that does not parse yields an error wrapping ErrInvalidQuery or
// ErrInvalidPath, so an error handler can map it to a 400.
package binder

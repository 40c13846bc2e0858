package errors

import (
	"maps"
	"slices"
)

// ErrorCategory says which part of a run failed. It selects the exit code.
type ErrorCategory string

const (
	// CategoryConfig: the configuration file is missing, malformed or invalid.
	CategoryConfig ErrorCategory = "config"
	// CategoryValidation: command line flags are invalid.
	CategoryValidation ErrorCategory = "validation"
	// CategoryIndex: the symbol index cannot be read or decoded.
	CategoryIndex ErrorCategory = "index"
	// CategoryRender: the site could not be produced.
	CategoryRender ErrorCategory = "render"
	// CategoryFileSystem: an output file or directory could not be written.
	CategoryFileSystem ErrorCategory = "filesystem"
	// CategoryInternal: a bug.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // the run stops
	SeverityError   ErrorSeverity = "error"   // the current operation fails
	SeverityWarning ErrorSeverity = "warning" // output is degraded
)

// ErrorContext is structured detail attached to an error, such as the path
// that could not be read.
type ErrorContext map[string]any

// Set adds or updates a value, allocating the map when needed.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// GetString returns a string value.
func (c ErrorContext) GetString(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Keys returns the keys in lexical order.
func (c ErrorContext) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// clone copies c so errors never share a mutable map.
func (c ErrorContext) clone() ErrorContext {
	if len(c) == 0 {
		return nil
	}
	return maps.Clone(c)
}

// Package errors provides structured, actionable error messages for classbind.
//
// Each error has a stable code (e.g., "E301") that maps to a short message,
// a detailed explanation, and a documentation URL. Errors are organized into
// categories:
//   - runtime: execution errors (operating on a torn-down binding)
//   - protocol: wire protocol errors (malformed or oversized patch frames)
//   - validation: bad inputs (unsupported class spec shapes)
//   - config: configuration errors (missing or invalid classbind.json)
//
// Usage:
//
//	err := errors.New(errors.CodeUnsupportedShape).
//	    WithSuggestion("Supply a string, []string, set, or map[string]bool")
//
//	fmt.Println(err.Format())
package errors

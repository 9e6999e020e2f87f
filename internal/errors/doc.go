// Package errors provides structured, coded errors for the builds API.
//
// Every error carries a Code so callers can branch on classification
// without string matching, and repositories and orchestrators agree on a
// shared taxonomy: InvalidArgument for bad input, NotFound for missing
// records, Internal for storage failures. The ValidationBuilder collects
// field-level problems into a single InvalidArgument error.
package errors

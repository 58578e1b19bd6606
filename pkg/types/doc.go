// Package types defines the shared vocabulary of propkit: logical lines,
// key/value pairs, parse and dump options, and typed errors.
//
// Design goals:
//   - Lines are a tagged variant (entry, comment, blank) rather than a
//     record of nullable fields.
//   - Source text travels with each parsed line so untouched lines can be
//     written back byte for byte.
//   - Typed errors with stable categories (format/not-found/type/...).
//
// This package has no dependencies beyond the standard library.
package types

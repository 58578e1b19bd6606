// Package properties reads, edits and writes Java .properties documents
// without disturbing the parts of the document that were not edited.
//
// # Core Types
//
// File is the round-trip-preserving store. Loading a document keeps every
// line, including comments, blank lines and shadowed duplicate keys,
// together with its exact source text. Dumping an unmodified File
// reproduces the input byte for byte.
//
// # Editing
//
// Set replaces the live definition of a key in place, or appends a new
// line for an unknown key. Only the lines touched by Set are re-rendered;
// everything else keeps its original spacing, separators, escapes and
// continuation lines. Delete removes a key together with all of its
// earlier definitions.
//
// # Usage Example
//
//	f, err := properties.LoadFile("app.properties", types.ParseOptions{})
//	if err != nil {
//		return err
//	}
//	if err := f.Set("server.port", "8081"); err != nil {
//		return err
//	}
//	return f.Dump(os.Stdout, types.DumpOptions{})
//
// The package also exposes the format primitives (Parse, Dump, Escape,
// Unescape, JoinKeyValue) for callers that only need to stream pairs.
package properties

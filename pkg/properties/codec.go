package properties

import (
	"io"
	"time"

	"github.com/joshuapare/propkit/internal/proptext"
	"github.com/joshuapare/propkit/pkg/types"
)

// Header is the optional comment block written by Dump before any pairs.
type Header = proptext.Header

// Parse returns every logical line of r in document order.
func Parse(r io.Reader, opts types.ParseOptions) ([]types.Line, error) {
	return proptext.Parse(r, opts)
}

// Dump writes pairs in the given order, preceded by header. Every pair is
// rendered as a single escaped line.
func Dump(w io.Writer, pairs []types.Pair, header Header, opts types.DumpOptions) error {
	return proptext.Dump(w, pairs, header, opts)
}

// Escape escapes s for use as a key or value, writing every character
// outside printable ASCII as \uXXXX.
func Escape(s string) string {
	return proptext.Escape(s)
}

// Unescape decodes the backslash escapes in s.
func Unescape(s string) (string, error) {
	return proptext.Unescape(s)
}

// JoinKeyValue renders one key/value line (without newline) using sep, or
// "=" when sep is empty.
func JoinKeyValue(key, value, sep string) string {
	return proptext.JoinKeyValue(key, value, sep)
}

// Comment renders text as comment lines.
func Comment(text string) string {
	return proptext.Comment(text)
}

// TimestampComment renders the "#<date>" line java.util.Properties writes.
func TimestampComment(t time.Time) string {
	return proptext.TimestampComment(t)
}

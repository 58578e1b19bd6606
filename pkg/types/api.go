package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed input text (bad \u escape, dangling continuation)
	ErrKindNotFound                   // missing key
	ErrKindType                       // key, value or separator rejected
	ErrKindUnsupported                // input shape or encoding we don't handle
	ErrKindCorrupt                    // internal bookkeeping inconsistency
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindType:
		return "type"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// IsKind reports whether err carries an *Error of kind k. Use errors.Is to
// match one specific sentinel.
func IsKind(err error, k ErrKind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// Sentinels commonly returned by implementations. Context is attached with
// fmt.Errorf("%w"), so match them with errors.Is, which compares identity.
// IsKind matches a whole category.
var (
	// ErrMalformedEscape indicates an invalid \uXXXX escape or a line
	// continuation with no following line.
	ErrMalformedEscape = &Error{Kind: ErrKindFormat, Msg: "malformed escape"}
	// ErrKeyNotFound indicates a lookup or delete of an absent key.
	ErrKeyNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrInvalidKey indicates a key that cannot be stored (not valid UTF-8).
	ErrInvalidKey = &Error{Kind: ErrKindType, Msg: "invalid key"}
	// ErrInvalidValue indicates a value that cannot be stored (not valid UTF-8).
	ErrInvalidValue = &Error{Kind: ErrKindType, Msg: "invalid value"}
	// ErrUnsupportedShape indicates a non-scalar value in converted input.
	ErrUnsupportedShape = &Error{Kind: ErrKindUnsupported, Msg: "unsupported value shape"}
	// ErrNotObject indicates a JSON document whose root is not an object.
	ErrNotObject = &Error{Kind: ErrKindUnsupported, Msg: "only objects can be converted to properties"}
	// ErrUnsupportedEncoding indicates an unknown input or output encoding name.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindUnsupported, Msg: "unsupported encoding"}
	// ErrInvalidSeparator indicates a key/value separator that would not
	// parse back as one.
	ErrInvalidSeparator = &Error{Kind: ErrKindType, Msg: "invalid separator"}
	// ErrInconsistent indicates a violated store invariant.
	ErrInconsistent = &Error{Kind: ErrKindCorrupt, Msg: "inconsistent property store"}
)

// -----------------------------------------------------------------------------
// Lines & Pairs
// -----------------------------------------------------------------------------

// LineKind tags a logical line.
type LineKind uint8

const (
	LineBlank LineKind = iota
	LineComment
	LineEntry
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineEntry:
		return "entry"
	default:
		return fmt.Sprintf("LineKind(%d)", uint8(k))
	}
}

// Line is one logical line of a .properties document: a key/value entry,
// a comment, or a blank line, after continuation lines have been joined.
type Line struct {
	Kind  LineKind
	Key   string // decoded key; entries only
	Value string // decoded value; entries only, may be empty

	// Source is the exact original text of the line, including line
	// terminators and continuation backslashes. Empty means the line was
	// synthesized and must be rendered from Key and Value.
	Source string
}

// IsEntry reports whether the line carries a key/value pair.
func (l Line) IsEntry() bool { return l.Kind == LineEntry }

// Verbatim reports whether the line is reproduced from its source text.
func (l Line) Verbatim() bool { return l.Source != "" }

// Entry returns a synthesized key/value line with no source text.
func Entry(key, value string) Line {
	return Line{Kind: LineEntry, Key: key, Value: value}
}

// Pair is a key/value pair in caller-defined order.
type Pair struct {
	Key   string
	Value string
}

// -----------------------------------------------------------------------------
// Parse & Dump Options
// -----------------------------------------------------------------------------

// Encoding names understood by ParseOptions and DumpOptions. Matching is
// case-insensitive.
const (
	EncodingUTF8   = "UTF-8"
	EncodingLatin1 = "ISO-8859-1"
)

// DefaultSeparator joins keys and values on re-rendered lines.
const DefaultSeparator = "="

// ParseOptions controls how .properties input is decoded.
type ParseOptions struct {
	// InputEncoding declares the text encoding ("ISO-8859-1" or "UTF-8").
	// Empty selects ISO-8859-1. A UTF-8 byte order mark is kept out of the
	// text and written back by File.Dump.
	InputEncoding string
}

// DumpOptions controls how lines without source text are rendered and how
// the document is encoded.
type DumpOptions struct {
	// Separator placed between key and value. Empty selects "=". Otherwise
	// it must be "=", ":" or whitespace, optionally padded with whitespace.
	Separator string

	// OutputEncoding for the emitted bytes ("ISO-8859-1" or "UTF-8").
	// Empty selects the encoding a File was loaded with, else ISO-8859-1.
	OutputEncoding string

	// KeepLatin1 writes printable U+00A0..U+00FF characters raw instead of
	// as \uXXXX escapes.
	KeepLatin1 bool
}

// Sep returns the effective separator.
func (o DumpOptions) Sep() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

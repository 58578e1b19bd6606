package proptext

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/joshuapare/propkit/pkg/types"
)

// Unescape decodes the backslash escapes of a key or value.
//
//   - \t \n \r \f become the matching control characters
//   - \uXXXX becomes the code point; a high/low surrogate pair of escapes
//     becomes one code point and a lone surrogate becomes U+FFFD
//   - a backslash before any other character yields that character
//   - a trailing lone backslash is kept
//
// A \u escape without exactly four hex digits fails with
// types.ErrMalformedEscape.
func Unescape(s string) (string, error) {
	// Fast path: no backslashes means no escapes (zero allocation)
	if strings.IndexByte(s, Backslash) == -1 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != Backslash {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			b.WriteByte(Backslash)
			break
		}
		switch esc := s[i+1]; esc {
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case UnicodeEscapePrefix:
			unit, err := decodeUnit(s[i:])
			if err != nil {
				return "", err
			}
			i += 2 + UnicodeEscapeDigits
			r := rune(unit)
			if utf16.IsSurrogate(r) && r < 0xDC00 {
				// High surrogate: pair it with an immediately following low one.
				if low, err := decodeUnit(s[i:]); err == nil {
					if pair := utf16.DecodeRune(r, rune(low)); pair != utf8.RuneError {
						r = pair
						i += 2 + UnicodeEscapeDigits
					}
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
		default:
			_, size := utf8.DecodeRuneInString(s[i+1:])
			b.WriteString(s[i+1 : i+1+size])
			i += 1 + size
		}
	}
	return b.String(), nil
}

// decodeUnit parses a \uXXXX escape at the start of s and returns the
// UTF-16 code unit.
func decodeUnit(s string) (uint16, error) {
	if len(s) < 2 || s[0] != Backslash || s[1] != UnicodeEscapePrefix {
		return 0, fmt.Errorf("%w: not a unicode escape", types.ErrMalformedEscape)
	}
	end := 2 + UnicodeEscapeDigits
	if end > len(s) {
		return 0, fmt.Errorf("%w: %q", types.ErrMalformedEscape, s)
	}
	var unit uint16
	for _, c := range []byte(s[2:end]) {
		nibble := hexCharToNibble(c)
		if nibble == 0xFF {
			return 0, fmt.Errorf("%w: %q", types.ErrMalformedEscape, s[:end])
		}
		unit = unit<<4 | uint16(nibble)
	}
	return unit, nil
}

// hexCharToNibble converts a hex character to its 4-bit value
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

// Encoder renders keys and values in canonical escaped form.
type Encoder struct {
	Separator  string
	KeepLatin1 bool
}

// NewEncoder returns an encoder configured from opts.
func NewEncoder(opts types.DumpOptions) Encoder {
	return Encoder{Separator: opts.Sep(), KeepLatin1: opts.KeepLatin1}
}

// CheckSeparator reports whether sep parses back as a key/value separator:
// empty, "=", ":" or whitespace, with optional whitespace padding around
// "=" and ":".
func CheckSeparator(sep string) error {
	core := strings.TrimFunc(sep, func(r rune) bool { return r < 0x80 && isWhitespace(byte(r)) })
	switch core {
	case "", string(SeparatorEquals), string(SeparatorColon):
		return nil
	default:
		return fmt.Errorf("%w: %q", types.ErrInvalidSeparator, sep)
	}
}

// Escape escapes backslashes, control characters, the characters = : # !
// and everything outside printable ASCII (or printable Latin-1 with
// KeepLatin1). Spaces are left alone.
func (e Encoder) Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		e.writeRune(&b, r)
	}
	return b.String()
}

// EscapeKey is Escape plus escaping of every space, which would otherwise
// end the key.
func (e Encoder) EscapeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' {
			b.WriteString(`\ `)
			continue
		}
		e.writeRune(&b, r)
	}
	return b.String()
}

// EscapeValue is Escape plus escaping of leading spaces, which the parser
// would otherwise skip.
func (e Encoder) EscapeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	leading := true
	for _, r := range s {
		if leading && r == ' ' {
			b.WriteString(`\ `)
			continue
		}
		leading = false
		e.writeRune(&b, r)
	}
	return b.String()
}

// JoinKeyValue renders key and value as one logical line without the
// trailing newline.
func (e Encoder) JoinKeyValue(key, value string) string {
	sep := e.Separator
	if sep == "" {
		sep = types.DefaultSeparator
	}
	return e.EscapeKey(key) + sep + e.EscapeValue(value)
}

func (e Encoder) writeRune(b *strings.Builder, r rune) {
	switch r {
	case Backslash:
		b.WriteString(`\\`)
	case '\t':
		b.WriteString(`\t`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\f':
		b.WriteString(`\f`)
	case SeparatorEquals, SeparatorColon, CommentHash, CommentBang:
		b.WriteByte(Backslash)
		b.WriteRune(r)
	default:
		switch {
		case r >= printableLow && r <= printableHigh:
			b.WriteRune(r)
		case e.KeepLatin1 && r >= latin1Low && r <= latin1High:
			b.WriteRune(r)
		default:
			writeUnicodeEscape(b, r)
		}
	}
}

// writeUnicodeEscape writes r as one \uXXXX escape, or two for a rune
// outside the Basic Multilingual Plane.
func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		fmt.Fprintf(b, UnicodeEscapeFormat, r1)
		fmt.Fprintf(b, UnicodeEscapeFormat, r2)
		return
	}
	fmt.Fprintf(b, UnicodeEscapeFormat, r)
}

// Escape escapes s with the default (ASCII-only) policy.
func Escape(s string) string {
	return Encoder{}.Escape(s)
}

// JoinKeyValue renders key and value joined by sep with the default
// escaping policy. An empty sep selects "=".
func JoinKeyValue(key, value, sep string) string {
	return Encoder{Separator: sep}.JoinKeyValue(key, value)
}

package proptext

const (
	// ============================================================================
	// Comment Markers
	// ============================================================================

	// CommentHash starts a comment line
	CommentHash = '#'

	// CommentBang is the alternative comment marker
	CommentBang = '!'

	// ============================================================================
	// Separators and Escapes
	// ============================================================================

	// SeparatorEquals separates a key from its value
	SeparatorEquals = '='

	// SeparatorColon is the alternative key/value separator
	SeparatorColon = ':'

	// Backslash introduces an escape sequence or a line continuation
	Backslash = '\\'

	// UnicodeEscapePrefix introduces a \uXXXX escape (after the backslash)
	UnicodeEscapePrefix = 'u'

	// UnicodeEscapeDigits is the number of hex digits in a \uXXXX escape
	UnicodeEscapeDigits = 4

	// UnicodeEscapeFormat renders one UTF-16 code unit as an escape
	UnicodeEscapeFormat = `\u%04x`

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF is the line feed character and the terminator of emitted lines
	LF = '\n'

	// CR is the carriage return character
	CR = '\r'

	// ============================================================================
	// Timestamp Header
	// ============================================================================

	// TimestampLayout matches java.util.Date#toString
	TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

	// ============================================================================
	// Character Ranges
	// ============================================================================

	// printableLow and printableHigh bound the ASCII range written unescaped
	printableLow  = 0x20
	printableHigh = 0x7E

	// latin1Low and latin1High bound the printable Latin-1 supplement
	latin1Low  = 0xA0
	latin1High = 0xFF

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// ReaderBufferSize is the buffer size for the physical line reader
	ReaderBufferSize = 64 * 1024 // 64KB
)

// isWhitespace reports whether c is whitespace in the .properties grammar.
// Only space, tab and form feed count; line terminators are handled by the
// line reader.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// isSeparator reports whether c ends a key when unescaped.
func isSeparator(c byte) bool {
	return c == SeparatorEquals || c == SeparatorColon
}

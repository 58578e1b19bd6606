package proptext

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/joshuapare/propkit/pkg/types"
)

// Lexer turns decoded .properties text into logical lines, one at a time.
// Physical lines end at "\n", "\r\n" or "\r"; the last one may be
// unterminated.
type Lexer struct {
	text   string
	pos    int
	lineNo int // physical lines consumed so far
}

// NewLexer returns a lexer over text.
func NewLexer(text string) *Lexer {
	return &Lexer{text: text}
}

// nextPhysical returns the next physical line with its terminator (raw) and
// without it (content). ok is false at end of input.
func (lx *Lexer) nextPhysical() (raw, content string, ok bool) {
	if lx.pos >= len(lx.text) {
		return "", "", false
	}
	start := lx.pos
	rest := lx.text[start:]
	end := strings.IndexAny(rest, "\r\n")
	if end < 0 {
		lx.pos = len(lx.text)
		lx.lineNo++
		return rest, rest, true
	}
	term := 1
	if rest[end] == CR && end+1 < len(rest) && rest[end+1] == LF {
		term = 2
	}
	lx.pos = start + end + term
	lx.lineNo++
	return rest[:end+term], rest[:end], true
}

// Next returns the next logical line, or io.EOF when the input is
// exhausted. Errors wrap types.ErrMalformedEscape and name the physical
// line where the logical line started.
func (lx *Lexer) Next() (types.Line, error) {
	raw, content, ok := lx.nextPhysical()
	if !ok {
		return types.Line{}, io.EOF
	}
	startLine := lx.lineNo

	logical := trimLeadingSpace(content)
	if logical == "" {
		return types.Line{Kind: types.LineBlank, Source: raw}, nil
	}
	if logical[0] == CommentHash || logical[0] == CommentBang {
		return types.Line{Kind: types.LineComment, Source: raw}, nil
	}

	source := raw
	for endsWithContinuation(logical) {
		logical = logical[:len(logical)-1]
		nextRaw, nextContent, ok := lx.nextPhysical()
		if !ok {
			return types.Line{}, fmt.Errorf("line %d: %w: line continuation at end of input",
				startLine, types.ErrMalformedEscape)
		}
		source += nextRaw
		logical += trimLeadingSpace(nextContent)
	}
	if logical == "" {
		// Only whitespace and continuations.
		return types.Line{Kind: types.LineBlank, Source: source}, nil
	}

	rawKey, rawValue := splitKeyValue(logical)
	key, err := Unescape(rawKey)
	if err != nil {
		return types.Line{}, fmt.Errorf("line %d: %w", startLine, err)
	}
	value, err := Unescape(rawValue)
	if err != nil {
		return types.Line{}, fmt.Errorf("line %d: %w", startLine, err)
	}
	return types.Line{Kind: types.LineEntry, Key: key, Value: value, Source: source}, nil
}

// Lines yields the logical lines of text lazily. Iteration stops after the
// first error.
func Lines(text string) iter.Seq2[types.Line, error] {
	return func(yield func(types.Line, error) bool) {
		lx := NewLexer(text)
		for {
			line, err := lx.Next()
			if err == io.EOF {
				return
			}
			if !yield(line, err) || err != nil {
				return
			}
		}
	}
}

// endsWithContinuation reports whether s ends in an odd number of
// backslashes.
func endsWithContinuation(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == Backslash; i-- {
		n++
	}
	return n%2 == 1
}

// splitKeyValue splits a logical line (leading whitespace already removed)
// into its raw, still-escaped key and value. The key ends at the first
// unescaped '=', ':' or whitespace; whitespace around a single separator is
// dropped.
func splitKeyValue(s string) (string, string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == Backslash {
			i += 2
			continue
		}
		if isSeparator(c) || isWhitespace(c) {
			break
		}
		i++
	}
	if i > len(s) {
		i = len(s)
	}
	key := s[:i]

	j := i
	for j < len(s) && isWhitespace(s[j]) {
		j++
	}
	if j < len(s) && isSeparator(s[j]) {
		j++
		for j < len(s) && isWhitespace(s[j]) {
			j++
		}
	}
	return key, s[j:]
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && isWhitespace(s[i]) {
		i++
	}
	return s[i:]
}

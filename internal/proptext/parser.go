package proptext

import (
	"bufio"
	"io"

	"github.com/joshuapare/propkit/pkg/types"
)

// Parse decodes r per opts and returns every logical line in document
// order. On error no lines are returned.
func Parse(r io.Reader, opts types.ParseOptions) ([]types.Line, error) {
	doc, err := ParseDocument(r, opts)
	if err != nil {
		return nil, err
	}
	return doc.Lines, nil
}

// Document is a parsed input together with what is needed to write it back
// byte for byte.
type Document struct {
	Lines    []types.Line
	Encoding string // canonical input encoding
	BOM      bool   // input started with a UTF-8 byte order mark
}

// ParseDocument decodes r per opts and returns its lines along with the
// canonical input encoding and whether a byte order mark was dropped.
func ParseDocument(r io.Reader, opts types.ParseOptions) (Document, error) {
	enc, err := CanonicalEncoding(opts.InputEncoding)
	if err != nil {
		return Document{}, err
	}
	text, bom, err := ReadInput(bufio.NewReaderSize(r, ReaderBufferSize), enc)
	if err != nil {
		return Document{}, err
	}
	lines, err := ParseString(text)
	if err != nil {
		return Document{}, err
	}
	return Document{Lines: lines, Encoding: enc, BOM: bom}, nil
}

// ParseString returns every logical line of already decoded text.
func ParseString(text string) ([]types.Line, error) {
	var lines []types.Line
	for line, err := range Lines(text) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Entries returns the key/value pairs of text in document order, duplicates
// included.
func Entries(text string) ([]types.Pair, error) {
	lines, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	pairs := make([]types.Pair, 0, len(lines))
	for _, l := range lines {
		if l.IsEntry() {
			pairs = append(pairs, types.Pair{Key: l.Key, Value: l.Value})
		}
	}
	return pairs, nil
}

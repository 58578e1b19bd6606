package proptext

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/propkit/pkg/types"
)

// UTF8BOM is the byte order mark some editors put in front of UTF-8 files.
const UTF8BOM = "\xef\xbb\xbf"

// CanonicalEncoding returns the canonical name of enc, types.EncodingUTF8
// or types.EncodingLatin1. Empty enc selects ISO-8859-1, the encoding
// java.util.Properties reads and writes.
func CanonicalEncoding(enc string) (string, error) {
	switch strings.ToUpper(enc) {
	case "", types.EncodingLatin1, "ISO8859-1", "LATIN1", "LATIN-1":
		return types.EncodingLatin1, nil
	case types.EncodingUTF8, "UTF8":
		return types.EncodingUTF8, nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedEncoding, enc)
	}
}

// lookupEncoding maps an encoding name to its x/text implementation.
func lookupEncoding(name string) (encoding.Encoding, error) {
	canon, err := CanonicalEncoding(name)
	if err != nil {
		return nil, err
	}
	if canon == types.EncodingUTF8 {
		// Strips a leading BOM on decode, never writes one.
		return unicode.UTF8BOM, nil
	}
	return charmap.ISO8859_1, nil
}

// NewReader wraps r with a decoder for enc, producing UTF-8. Empty enc
// selects ISO-8859-1.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}

// DecodeInput reads all of r and returns it as UTF-8 text. A leading UTF-8
// byte order mark is dropped.
func DecodeInput(r io.Reader, enc string) (string, error) {
	text, _, err := ReadInput(r, enc)
	return text, err
}

// ReadInput reads all of r and returns it as UTF-8 text, reporting whether
// a UTF-8 input started with a byte order mark. The mark is not part of
// the returned text.
func ReadInput(r io.Reader, enc string) (text string, bom bool, err error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return "", false, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", false, fmt.Errorf("proptext: read input: %w", err)
	}
	if e == unicode.UTF8BOM {
		bom = bytes.HasPrefix(raw, []byte(UTF8BOM))
	}
	data, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false, fmt.Errorf("proptext: decode input: %w", err)
	}
	return string(data), bom, nil
}

// EncodeOutput converts UTF-8 text to enc. Empty enc selects ISO-8859-1.
func EncodeOutput(text string, enc string) ([]byte, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	if e == unicode.UTF8BOM {
		return []byte(text), nil
	}
	out, err := e.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("proptext: encode output as %s: %w", types.EncodingLatin1, err)
	}
	return []byte(out), nil
}

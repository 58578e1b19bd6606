package proptext

import (
	"io"
	"strings"
	"time"

	"github.com/joshuapare/propkit/pkg/types"
)

// Header is the optional comment block written before dumped pairs.
type Header struct {
	// Comments is written first, one comment line per line of text.
	Comments string
	// Timestamp, when non-zero, is written as a "#<date>" comment line.
	Timestamp time.Time
}

// Comment renders text as comment lines. The first line always gets a
// leading '#'; following lines get one unless they already start with '#'
// or '!'. Characters outside Latin-1 are written as \uXXXX escapes.
func Comment(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.WriteByte(CommentHash)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte(LF)
			if line == "" || (line[0] != CommentHash && line[0] != CommentBang) {
				b.WriteByte(CommentHash)
			}
		}
		for _, r := range line {
			if r > latin1High {
				writeUnicodeEscape(&b, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(LF)
	return b.String()
}

// TimestampComment renders t the way java.util.Properties#store does.
func TimestampComment(t time.Time) string {
	return string(CommentHash) + t.Format(TimestampLayout) + string(LF)
}

// Render returns the text form of pairs, in the given order, preceded by
// the header.
func Render(pairs []types.Pair, header Header, opts types.DumpOptions) string {
	enc := NewEncoder(opts)
	var b strings.Builder
	if header.Comments != "" {
		b.WriteString(Comment(header.Comments))
	}
	if !header.Timestamp.IsZero() {
		b.WriteString(TimestampComment(header.Timestamp))
	}
	for _, p := range pairs {
		b.WriteString(enc.JoinKeyValue(p.Key, p.Value))
		b.WriteByte(LF)
	}
	return b.String()
}

// Dump writes pairs to w in opts.OutputEncoding. Nothing is written if the
// separator is invalid or the text cannot be encoded.
func Dump(w io.Writer, pairs []types.Pair, header Header, opts types.DumpOptions) error {
	if err := CheckSeparator(opts.Separator); err != nil {
		return err
	}
	out, err := EncodeOutput(Render(pairs, header, opts), opts.OutputEncoding)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

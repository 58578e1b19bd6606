package properties

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/propkit/internal/proptext"
	"github.com/joshuapare/propkit/pkg/types"
)

// File is an ordered .properties document that remembers the exact text of
// every line it was loaded from.
//
// Lines live in an arena keyed by a strictly increasing line index. A
// second map records, for every key, the indices of all lines defining it;
// the last index is the live definition and earlier ones are shadowed
// duplicates kept only so they can be written back.
//
// A File is not safe for concurrent use.
type File struct {
	lines   map[int]types.Line
	order   []int            // line indices in document order, ascending
	indices map[string][]int // key -> ascending line indices; last one is live

	encoding string // canonical encoding the document was read in; "" for ISO-8859-1
	bom      bool   // the input started with a UTF-8 byte order mark
}

// New returns an empty File.
func New() *File {
	return &File{
		lines:   make(map[int]types.Line),
		indices: make(map[string][]int),
	}
}

// FromPairs returns a File holding pairs in the given order. Each pair is
// applied with Set, so a repeated key keeps its first position and its last
// value.
func FromPairs(pairs []types.Pair) (*File, error) {
	f := New()
	for _, p := range pairs {
		if err := f.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromMap returns a File holding m with keys in sorted order.
func FromMap(m map[string]string) (*File, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]types.Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, types.Pair{Key: k, Value: m[k]})
	}
	return FromPairs(pairs)
}

// Load parses r and returns a File that reproduces it exactly when dumped
// unmodified. The File remembers opts.InputEncoding and any UTF-8 byte
// order mark; Dump writes both back unless told otherwise.
func Load(r io.Reader, opts types.ParseOptions) (*File, error) {
	doc, err := proptext.ParseDocument(r, opts)
	if err != nil {
		return nil, err
	}
	f := fromLines(doc.Lines)
	f.encoding = doc.Encoding
	f.bom = doc.BOM
	return f, nil
}

// LoadString parses already decoded text.
func LoadString(s string) (*File, error) {
	lines, err := proptext.ParseString(s)
	if err != nil {
		return nil, err
	}
	return fromLines(lines), nil
}

// LoadFile opens and parses the file at path.
func LoadFile(path string, opts types.ParseOptions) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Load(fh, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func fromLines(lines []types.Line) *File {
	f := New()
	f.order = make([]int, 0, len(lines))
	for i, line := range lines {
		if line.IsEntry() {
			f.indices[line.Key] = append(f.indices[line.Key], i)
		}
		f.lines[i] = line
		f.order = append(f.order, i)
	}
	return f
}

// Get returns the live value of key, or an error wrapping
// types.ErrKeyNotFound.
func (f *File) Get(key string) (string, error) {
	v, ok := f.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrKeyNotFound, key)
	}
	return v, nil
}

// Lookup returns the live value of key and whether it exists.
func (f *File) Lookup(key string) (string, bool) {
	ix, ok := f.indices[key]
	if !ok {
		return "", false
	}
	return f.lines[ix[len(ix)-1]].Value, true
}

// Has reports whether key is defined.
func (f *File) Has(key string) bool {
	_, ok := f.indices[key]
	return ok
}

// Set assigns value to key.
//
// For an existing key the shadowed duplicate lines are removed and the live
// line is replaced in place; its source text is dropped, so it is
// re-rendered on output even when value is unchanged. A new key is
// appended after every current line.
//
// Keys and values must be valid UTF-8; otherwise Set fails with
// types.ErrInvalidKey or types.ErrInvalidValue and changes nothing.
func (f *File) Set(key, value string) error {
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w for key %q", types.ErrInvalidValue, key)
	}

	slot, exists := f.liveIndex(key)
	if exists {
		ix := f.indices[key]
		for _, i := range ix[:len(ix)-1] {
			f.removeLine(i)
		}
	} else {
		slot = f.nextIndex()
		f.order = append(f.order, slot)
	}
	f.indices[key] = []int{slot}
	f.lines[slot] = types.Entry(key, value)
	return nil
}

// SetIfChanged is Set, except that it leaves the document untouched and
// returns false when key already holds value.
func (f *File) SetIfChanged(key, value string) (bool, error) {
	if cur, ok := f.Lookup(key); ok && cur == value {
		return false, nil
	}
	if err := f.Set(key, value); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes key and every line that ever defined it. It fails with
// types.ErrKeyNotFound if key is absent.
func (f *File) Delete(key string) error {
	ix, ok := f.indices[key]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrKeyNotFound, key)
	}
	for _, i := range ix {
		f.removeLine(i)
	}
	delete(f.indices, key)
	return nil
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.indices)
}

// Keys returns every key once, in document order of its live line.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.indices))
	for k := range f.All() {
		keys = append(keys, k)
	}
	return keys
}

// All yields each key and its live value in document order of the live
// line.
func (f *File) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, i := range f.order {
			line := f.lines[i]
			if !line.IsEntry() {
				continue
			}
			ix := f.indices[line.Key]
			if ix[len(ix)-1] != i {
				continue
			}
			if !yield(line.Key, line.Value) {
				return
			}
		}
	}
}

// Pairs returns the live key/value pairs in document order.
func (f *File) Pairs() []types.Pair {
	pairs := make([]types.Pair, 0, len(f.indices))
	for k, v := range f.All() {
		pairs = append(pairs, types.Pair{Key: k, Value: v})
	}
	return pairs
}

// Lines yields every retained line (comments, blanks, live and shadowed
// entries) in document order.
func (f *File) Lines() iter.Seq[types.Line] {
	return func(yield func(types.Line) bool) {
		for _, i := range f.order {
			if !yield(f.lines[i]) {
				return
			}
		}
	}
}

// Render returns the document as UTF-8 text. Lines with source text are
// reproduced verbatim; the rest are rendered with opts.Separator and the
// escaping policy of opts.
func (f *File) Render(opts types.DumpOptions) string {
	enc := proptext.NewEncoder(opts)
	var b strings.Builder
	for _, i := range f.order {
		// An unterminated last source line must not swallow what follows.
		if n := b.Len(); n > 0 {
			if s := b.String(); s[n-1] != '\n' && s[n-1] != '\r' {
				b.WriteByte('\n')
			}
		}
		line := f.lines[i]
		if line.Verbatim() {
			b.WriteString(line.Source)
			continue
		}
		b.WriteString(enc.JoinKeyValue(line.Key, line.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes the document to w in opts.OutputEncoding, or in the encoding
// it was loaded with when that is empty. A byte order mark read from the
// input is written back in front of UTF-8 output. Nothing is written if
// the separator is invalid or the text cannot be encoded.
func (f *File) Dump(w io.Writer, opts types.DumpOptions) error {
	if err := proptext.CheckSeparator(opts.Separator); err != nil {
		return err
	}
	enc := opts.OutputEncoding
	if enc == "" {
		enc = f.encoding
	}
	canon, err := proptext.CanonicalEncoding(enc)
	if err != nil {
		return err
	}
	out, err := proptext.EncodeOutput(f.Render(opts), canon)
	if err != nil {
		return err
	}
	if f.bom && canon == types.EncodingUTF8 {
		out = append([]byte(proptext.UTF8BOM), out...)
	}
	_, err = w.Write(out)
	return err
}

// Encoding returns the canonical encoding the document was loaded with.
// Files not read through Load report ISO-8859-1.
func (f *File) Encoding() string {
	if f.encoding == "" {
		return types.EncodingLatin1
	}
	return f.encoding
}

// String returns the document rendered with default options.
func (f *File) String() string {
	return f.Render(types.DumpOptions{})
}

func (f *File) liveIndex(key string) (int, bool) {
	ix, ok := f.indices[key]
	if !ok {
		return 0, false
	}
	return ix[len(ix)-1], true
}

func (f *File) nextIndex() int {
	if len(f.order) == 0 {
		return 0
	}
	return f.order[len(f.order)-1] + 1
}

// removeLine drops line i from the arena and the document order. The key
// index is the caller's responsibility.
func (f *File) removeLine(i int) {
	delete(f.lines, i)
	if pos, found := slices.BinarySearch(f.order, i); found {
		f.order = slices.Delete(f.order, pos, pos+1)
	}
}

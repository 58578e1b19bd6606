// Package convert moves data between flat JSON objects and .properties
// documents.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/tidwall/pretty"

	"github.com/joshuapare/propkit/pkg/properties"
	"github.com/joshuapare/propkit/pkg/types"
)

// Options configures both conversion directions.
type Options struct {
	// Separator between keys and values in properties output. Empty selects "=".
	Separator string
	// OutputEncoding of properties output. Empty selects ISO-8859-1.
	OutputEncoding string
	// KeepLatin1 writes printable Latin-1 characters unescaped.
	KeepLatin1 bool
	// OmitTimestamp suppresses the leading "#<date>" comment.
	OmitTimestamp bool
	// Now supplies the timestamp. Nil selects time.Now.
	Now func() time.Time

	// Compact writes JSON on a single line instead of indenting it.
	Compact bool
	// SortKeys orders JSON output by key instead of document order.
	SortKeys bool
}

func (o Options) dumpOptions() types.DumpOptions {
	return types.DumpOptions{
		Separator:      o.Separator,
		OutputEncoding: o.OutputEncoding,
		KeepLatin1:     o.KeepLatin1,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// FromJSON reads one JSON object from r and writes it to w as a
// .properties document sorted by key. Values must be scalars; numbers keep
// their exact decimal text. Anything but whitespace after the object is an
// error. Nothing is written on error.
func FromJSON(r io.Reader, w io.Writer, opts Options) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return fmt.Errorf("convert: decode JSON: %w", err)
	}
	switch err := dec.Decode(new(json.RawMessage)); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return fmt.Errorf("convert: decode JSON: %w", err)
	default:
		return errors.New("convert: decode JSON: unexpected data after top-level value")
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return types.ErrNotObject
	}
	strs, err := StringifyValues(obj)
	if err != nil {
		return err
	}

	var header properties.Header
	if !opts.OmitTimestamp {
		header.Timestamp = opts.now()
	}
	return properties.Dump(w, SortedPairs(strs), header, opts.dumpOptions())
}

// StringifyValues converts the scalar values of a decoded JSON object to
// strings: strings unchanged, numbers as written, booleans and null as
// "true", "false" and "null". Objects and arrays fail with
// types.ErrUnsupportedShape.
func StringifyValues(obj map[string]any) (map[string]string, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(obj))
	for _, k := range keys {
		s, err := stringify(obj[k])
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", types.ErrUnsupportedShape, k, err)
		}
		out[k] = s
	}
	return out, nil
}

func stringify(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "null", nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case map[string]any:
		return "", errors.New("object value")
	case []any:
		return "", errors.New("array value")
	default:
		return "", fmt.Errorf("%T value", v)
	}
}

// SortedPairs returns m as pairs ordered by key code point.
func SortedPairs(m map[string]string) []types.Pair {
	pairs := make([]types.Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, types.Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// ToJSON writes the live keys of f to w as a flat JSON object in document
// order, indented unless opts.Compact is set.
func ToJSON(f *properties.File, w io.Writer, opts Options) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encoder.Encode appends a newline after every string; pretty/ugly
	// below normalizes the whitespace.
	buf.WriteByte('{')
	first := true
	for k, v := range f.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := enc.Encode(k); err != nil {
			return fmt.Errorf("convert: encode key %q: %w", k, err)
		}
		buf.WriteByte(':')
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("convert: encode value of %q: %w", k, err)
		}
	}
	buf.WriteByte('}')

	var out []byte
	if opts.Compact {
		out = pretty.Ugly(buf.Bytes())
		if opts.SortKeys {
			out = pretty.PrettyOptions(out, &pretty.Options{SortKeys: true})
			out = pretty.Ugly(out)
		}
		out = append(out, '\n')
	} else {
		popts := *pretty.DefaultOptions
		popts.SortKeys = opts.SortKeys
		out = pretty.PrettyOptions(buf.Bytes(), &popts)
	}
	_, err := w.Write(out)
	return err
}

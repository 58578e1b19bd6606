package proptext

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/propkit/pkg/types"
)

func TestComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "hello", "#hello\n"},
		{"multiple lines", "hello\nworld", "#hello\n#world\n"},
		{"existing markers on later lines", "a\n# b\n!c", "#a\n# b\n!c\n"},
		{"first line always marked", "#x", "##x\n"},
		{"crlf and cr normalized", "a\r\nb\rc", "#a\n#b\n#c\n"},
		{"trailing newline", "a\n", "#a\n#\n"},
		{"latin-1 kept", "café", "#café\n"},
		{"above latin-1 escaped", "snow ☃", "#snow \\u2603\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Comment(tt.in))
		})
	}
}

func TestTimestampComment(t *testing.T) {
	ts := time.Date(2017, time.March, 16, 17, 6, 52, 0, time.FixedZone("EDT", -4*60*60))
	assert.Equal(t, "#Thu Mar 16 17:06:52 EDT 2017\n", TimestampComment(ts))
}

func TestRender(t *testing.T) {
	pairs := []types.Pair{
		{Key: "no", Value: "false"},
		{Key: "nothing", Value: "null"},
		{Key: "yes", Value: "true"},
	}
	ts := time.Date(2016, time.September, 26, 18, 57, 44, 0, time.UTC)

	tests := []struct {
		name   string
		header Header
		opts   types.DumpOptions
		want   string
	}{
		{
			name: "no header",
			want: "no=false\nnothing=null\nyes=true\n",
		},
		{
			name:   "timestamp",
			header: Header{Timestamp: ts},
			want:   "#Mon Sep 26 18:57:44 UTC 2016\nno=false\nnothing=null\nyes=true\n",
		},
		{
			name:   "comments before timestamp",
			header: Header{Comments: "generated", Timestamp: ts},
			opts:   types.DumpOptions{Separator: ": "},
			want:   "#generated\n#Mon Sep 26 18:57:44 UTC 2016\nno: false\nnothing: null\nyes: true\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(pairs, tt.header, tt.opts))
		})
	}
}

func TestDump_Latin1(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, []types.Pair{{Key: "name", Value: "José"}}, Header{}, types.DumpOptions{KeepLatin1: true})
	require.NoError(t, err)
	assert.Equal(t, []byte("name=Jos\xe9\n"), buf.Bytes())
}

func TestDump_EscapedByDefault(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, []types.Pair{{Key: "name", Value: "José"}}, Header{}, types.DumpOptions{})
	require.NoError(t, err)
	assert.Equal(t, "name=Jos\\u00e9\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDump_WriterError(t *testing.T) {
	err := Dump(failingWriter{}, []types.Pair{{Key: "k", Value: "v"}}, Header{}, types.DumpOptions{})
	require.EqualError(t, err, "disk full")
}

func TestDump_UnsupportedEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, []types.Pair{{Key: "k", Value: "v"}}, Header{}, types.DumpOptions{OutputEncoding: "EBCDIC"})
	require.ErrorIs(t, err, types.ErrUnsupportedEncoding)
	assert.Zero(t, buf.Len())
}

func TestDump_InvalidSeparator(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, []types.Pair{{Key: "a", Value: "b"}}, Header{}, types.DumpOptions{Separator: "x"})
	require.ErrorIs(t, err, types.ErrInvalidSeparator)
	assert.Zero(t, buf.Len())
}

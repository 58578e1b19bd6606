package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/propkit/pkg/types"
)

func TestConvertCommand(t *testing.T) {
	resetFlags(t)
	convertNoTimestamp = true
	in := writeTemp(t, "in.json", `{"b": 2, "a": "é", "on": true, "off": null}`)
	out := filepath.Join(t.TempDir(), "out.properties")

	_, err := captureOutput(t, func() error { return runConvert([]string{in, out}) })
	require.NoError(t, err)
	assert.Equal(t, "a=\\u00e9\nb=2\noff=null\non=true\n", readFile(t, out))
}

func TestConvertCommand_Stdout(t *testing.T) {
	resetFlags(t)
	cfg.Separator = ": "
	in := writeTemp(t, "in.json", `{"k": "v"}`)

	output, err := captureOutput(t, func() error { return runConvert([]string{in}) })
	require.NoError(t, err)
	assert.Regexp(t, `^#\w{3} \w{3} \d{2} \d{2}:\d{2}:\d{2} \S+ \d{4}\nk: v\n$`, output)
}

func TestConvertCommand_TimestampDisabledByConfig(t *testing.T) {
	resetFlags(t)
	cfg.Timestamp = false
	in := writeTemp(t, "in.json", `{"k": "v"}`)

	output, err := captureOutput(t, func() error { return runConvert([]string{in, "-"}) })
	require.NoError(t, err)
	assert.Equal(t, "k=v\n", output)
}

func TestConvertCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"not an object", `[1, 2]`, types.ErrNotObject},
		{"nested value", `{"a": {"b": 1}}`, types.ErrUnsupportedShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			in := writeTemp(t, "in.json", tt.input)
			out := filepath.Join(t.TempDir(), "out.properties")

			_, err := captureOutput(t, func() error { return runConvert([]string{in, out}) })
			require.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestToJSONCommand(t *testing.T) {
	resetFlags(t)
	tojsonCompact = true
	tojsonSortKeys = true
	path := writeTemp(t, "app.properties", sample)

	output, err := captureOutput(t, func() error { return runToJSON([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t,
		`{"db.user":"root","greeting":"café","server.host":"localhost","server.port":"8080"}`+"\n",
		output)
}

func TestToJSONCommand_ToFile(t *testing.T) {
	resetFlags(t)
	path := writeTemp(t, "app.properties", sample)
	out := filepath.Join(t.TempDir(), "app.json")

	_, err := captureOutput(t, func() error { return runToJSON([]string{path, out}) })
	require.NoError(t, err)
	assertJSON(t, readFile(t, out))
	assertContains(t, readFile(t, out), []string{`"server.port": "8080"`})
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/propkit/pkg/types"
)

func TestSetCommand_ReplacesInPlace(t *testing.T) {
	resetFlags(t)
	path := writeTemp(t, "app.properties", sample)

	output, err := captureOutput(t, func() error {
		return runSet([]string{path, "server.port", "9090"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Set server.port"})

	want := strings.Replace(sample, "server.port = 8080\n", "server.port=9090\n", 1)
	assert.Equal(t, want, readFile(t, path))
}

func TestSetCommand_CollapsesDuplicates(t *testing.T) {
	resetFlags(t)
	path := writeTemp(t, "app.properties", sample)

	_, err := captureOutput(t, func() error {
		return runSet([]string{path, "db.user", "sa"})
	})
	require.NoError(t, err)

	want := strings.Replace(sample, "db.user=admin\ndb.user=root\n", "db.user=sa\n", 1)
	assert.Equal(t, want, readFile(t, path))
}

func TestSetCommand_AppendsWithEncoding(t *testing.T) {
	tests := []struct {
		name       string
		keepLatin1 bool
		want       string
	}{
		{name: "escaped", want: sample + "motto=h\\u00e9llo\\u65e5\n"},
		{name: "latin1 kept", keepLatin1: true, want: sample + "motto=h\xe9llo\\u65e5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			cfg.KeepLatin1 = tt.keepLatin1
			path := writeTemp(t, "app.properties", sample)

			_, err := captureOutput(t, func() error {
				return runSet([]string{path, "motto", "héllo日"})
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, readFile(t, path))
		})
	}
}

func TestSetCommand_Separator(t *testing.T) {
	resetFlags(t)
	cfg.Separator = ": "
	path := writeTemp(t, "app.properties", "a = 1\n")

	_, err := captureOutput(t, func() error {
		return runSet([]string{path, "b", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a = 1\nb: 2\n", readFile(t, path))
}

func TestSetCommand_IfChanged(t *testing.T) {
	resetFlags(t)
	setIfChanged = true
	jsonOut = true
	path := writeTemp(t, "app.properties", sample)

	output, err := captureOutput(t, func() error {
		return runSet([]string{path, "server.port", "8080"})
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"changed": false`})
	assert.Equal(t, sample, readFile(t, path), "unchanged value must not rewrite the file")
}

func TestSetCommand_DryRunDiff(t *testing.T) {
	resetFlags(t)
	setFlags.dryRun = true
	path := writeTemp(t, "app.properties", sample)

	output, err := captureOutput(t, func() error {
		return runSet([]string{path, "server.port", "9090"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"-server.port = 8080", "+server.port=9090", "@@"})
	assert.Equal(t, sample, readFile(t, path))
}

func TestSetCommand_Backup(t *testing.T) {
	resetFlags(t)
	setFlags.backup = true
	path := writeTemp(t, "app.properties", sample)

	_, err := captureOutput(t, func() error {
		return runSet([]string{path, "server.port", "9090"})
	})
	require.NoError(t, err)
	assert.Equal(t, sample, readFile(t, path+".bak"))
	assert.Contains(t, readFile(t, path), "server.port=9090\n")
}

func TestSetCommand_InvalidValue(t *testing.T) {
	resetFlags(t)
	path := writeTemp(t, "app.properties", sample)

	_, err := captureOutput(t, func() error {
		return runSet([]string{path, "k", "bad\xff"})
	})
	require.ErrorIs(t, err, types.ErrInvalidValue)
	assert.Equal(t, sample, readFile(t, path))
}

func TestRootCommand_RejectsSeparator(t *testing.T) {
	resetFlags(t)
	path := writeTemp(t, "app.properties", sample)
	t.Cleanup(func() {
		separator = "="
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"set", "-s", "x", path, "k", "v"})
	_, err := captureOutput(t, rootCmd.Execute)
	require.ErrorIs(t, err, types.ErrInvalidSeparator)
	assert.Equal(t, sample, readFile(t, path))
}

func TestSetCommand_KeepsUTF8AndByteOrderMark(t *testing.T) {
	resetFlags(t)
	cfg.InputEncoding = types.EncodingUTF8
	doc := "\xef\xbb\xbf# 設定\ngreeting=héllo\n"
	path := writeTemp(t, "app.properties", doc)

	_, err := captureOutput(t, func() error {
		return runSet([]string{path, "port", "8080"})
	})
	require.NoError(t, err)
	assert.Equal(t, doc+"port=8080\n", readFile(t, path))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/propkit/pkg/types"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		def         *string
		wantJSON    bool
		wantErr     error
		wantContain []string
	}{
		{name: "spaced separator", key: "server.port", wantContain: []string{"8080\n"}},
		{name: "colon separator", key: "server.host", wantContain: []string{"localhost\n"}},
		{name: "last definition wins", key: "db.user", wantContain: []string{"root\n"}},
		{name: "unescaped", key: "greeting", wantContain: []string{"café\n"}},
		{name: "json", key: "server.port", wantJSON: true, wantContain: []string{`"value": "8080"`, `"found": true`}},
		{name: "missing key", key: "nope", wantErr: types.ErrKeyNotFound},
		{name: "missing key with default", key: "nope", def: ptr("fallback"), wantContain: []string{"fallback\n"}},
	}

	path := writeTemp(t, "app.properties", sample)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			if tt.def != nil {
				getDefault = *tt.def
			}

			output, err := captureOutput(t, func() error {
				return runGet(tt.def != nil, []string{path, tt.key})
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestGetCommand_MissingFile(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runGet(false, []string{"does-not-exist.properties", "k"})
	})
	require.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

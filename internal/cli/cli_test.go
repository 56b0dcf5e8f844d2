package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "no arguments starts the repl",
			args: nil,
			want: &app.Config{Mode: app.ModeREPL, LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "repl with manifests",
			args: []string{"repl", "-f", "a.hcl", "--manifest", "dir"},
			want: &app.Config{Mode: app.ModeREPL, Manifests: []string{"a.hcl", "dir"}, LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "serve with flags",
			args: []string{"serve", "--addr", ":9000", "--log-level", "DEBUG", "--log-format", "json"},
			want: &app.Config{Mode: app.ModeServe, LogLevel: "debug", LogFormat: "json", Addr: ":9000"},
		},
		{
			name: "serve default address",
			args: []string{"serve"},
			want: &app.Config{Mode: app.ModeServe, LogLevel: "info", LogFormat: "text", Addr: ":8080"},
		},
		{
			name: "check merges flag and positional manifests",
			args: []string{"check", "-f", "base.yaml", "caps.hcl"},
			want: &app.Config{Mode: app.ModeCheck, Manifests: []string{"base.yaml", "caps.hcl"}, LogLevel: "info", LogFormat: "text"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, exit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, exit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EnvDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvAddr, "127.0.0.1:7000")

	got, _, err := Parse([]string{"serve"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, "127.0.0.1:7000", got.Addr)

	got, _, err = Parse([]string{"serve", "--log-level", "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", got.LogLevel, "flags override the environment")
}

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"help"}, {"serve", "-h"}} {
		var out bytes.Buffer
		got, exit, err := Parse(args, &out)
		require.NoError(t, err, "args %v", args)
		assert.True(t, exit)
		assert.Nil(t, got)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
		{"unknown command", []string{"run"}, "unknown command"},
		{"invalid log level", []string{"--log-level", "trace"}, "invalid log-level"},
		{"invalid log format", []string{"--log-format", "xml"}, "invalid log-format"},
		{"check without manifests", []string{"check"}, "at least one manifest"},
		{"repl with positional args", []string{"repl", "x"}, "unknown command"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

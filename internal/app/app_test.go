package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/manifest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults to repl", Config{LogLevel: "INFO", LogFormat: "text"}, ""},
		{"serve", Config{Mode: ModeServe, LogLevel: "debug", LogFormat: "json", Addr: ":8080"}, ""},
		{"check", Config{Mode: ModeCheck, LogLevel: "warn", LogFormat: "text", Manifests: []string{"a.hcl"}}, ""},
		{"bad mode", Config{Mode: "daemon", LogLevel: "info", LogFormat: "text"}, `invalid mode "daemon"`},
		{"bad level", Config{LogLevel: "verbose", LogFormat: "text"}, "invalid log-level"},
		{"bad format", Config{LogLevel: "info", LogFormat: "xml"}, "invalid log-format"},
		{"serve without addr", Config{Mode: ModeServe, LogLevel: "info", LogFormat: "text"}, "listen address"},
		{"check without manifests", Config{Mode: ModeCheck, LogLevel: "info", LogFormat: "text"}, "at least one manifest"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.Mode)
			assert.Equal(t, strings.ToLower(tc.cfg.LogLevel), got.LogLevel)
		})
	}
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "caps.hcl", `
program "hello" { language = "Java" }
program "script" { language = "Lua" }
translator {
  base   = "C"
  source = "Java"
  target = "C"
}
interpreter {
  base     = LOCAL
  language = "C"
}
`)

	a, out, _ := SetupAppTest(t, Config{Mode: ModeCheck, Manifests: []string{path}}, manifest.NewLoader())
	err := a.Run(context.Background(), nil)

	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out.String(), "ok       hello [Java] Java -> C -> LOCAL")
	assert.Contains(t, out.String(), "FAIL     script [Lua] cannot reach LOCAL")
}

func TestRun_CheckPasses(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "caps.yaml", `
declarations:
  - interpreter: {base: LOCAL, language: Python}
  - program: {name: hello, language: Python}
`)

	a, out, _ := SetupAppTest(t, Config{Mode: ModeCheck, Manifests: []string{path}}, manifest.NewLoader())
	require.NoError(t, a.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "ok       hello [Python] Python -> LOCAL")
}

func TestRun_CheckReportsRejections(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "caps.yaml", `
declarations:
  - interpreter: {base: LOCAL, language: Python}
  - program: {name: hello, language: Python}
  - program: {name: hello, language: Ruby}
`)

	a, out, logs := SetupAppTest(t, Config{Mode: ModeCheck, Manifests: []string{path}}, manifest.NewLoader())
	require.ErrorIs(t, a.Run(context.Background(), nil), ErrCheckFailed)
	assert.Contains(t, out.String(), "rejected: ")
	assert.Contains(t, logs.String(), "Declaration rejected.")
}

func TestRun_REPLWithManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "caps.hcl", `interpreter {
  base     = LOCAL
  language = "C"
}
`)

	a, out, _ := SetupAppTest(t, Config{Mode: ModeREPL, Manifests: []string{path}}, manifest.NewLoader())
	in := strings.NewReader("DEFINE PROGRAM hello C\nEXECUTABLE hello\nEXIT\n")
	require.NoError(t, a.Run(context.Background(), in))
	assert.Contains(t, out.String(), "Yes, it is possible to execute the program hello")
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	a, _, logs := SetupAppTest(t, Config{Mode: ModeServe, Addr: "127.0.0.1:0"}, manifest.NewLoader())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, nil) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
	assert.Contains(t, logs.String(), "HTTP server starting.")
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, ...string) (*config.Model, error) {
	return nil, errors.New("boom")
}

func TestNewApp_LoadFailure(t *testing.T) {
	cfg, err := NewConfig(Config{LogLevel: "info", LogFormat: "text", Manifests: []string{"x.hcl"}})
	require.NoError(t, err)

	_, err = NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, failingLoader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifests: boom")
}

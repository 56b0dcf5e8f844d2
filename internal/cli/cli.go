package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vk/tombstone/internal/app"
)

// Environment variables that provide flag defaults. cmd/cli loads a .env
// file into the environment before Parse runs.
const (
	EnvLogLevel  = "TOMBSTONE_LOG_LEVEL"
	EnvLogFormat = "TOMBSTONE_LOG_FORMAT"
	EnvAddr      = "TOMBSTONE_ADDR"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	logLevel  string
	logFormat string
	manifests []string
	addr      string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		opts options
		cfg  *app.Config
	)
	build := func(mode app.Mode, extra []string) error {
		c, err := app.NewConfig(app.Config{
			Mode:      mode,
			Manifests: append(opts.manifests, extra...),
			LogLevel:  opts.logLevel,
			LogFormat: opts.logFormat,
			Addr:      opts.addr,
		})
		if err != nil {
			return err
		}
		cfg = c
		return nil
	}

	root := &cobra.Command{
		Use:   "tombstone",
		Short: "Simulate which programs can run through chains of interpreters and translators.",
		Long: `tombstone keeps a capability graph of interpreters and translators and
answers whether a program can ultimately be executed by the local machine
(the LOCAL language). Declarations may come from manifests (.hcl, .yaml)
and from the interactive prompt or HTTP API.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.ModeREPL, nil)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	pf.StringArrayVarP(&opts.manifests, "manifest", "f", nil, "Manifest file or directory to load before starting (repeatable).")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt (default).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.ModeREPL, nil)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the session over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.ModeServe, nil)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", envOr(EnvAddr, ":8080"), "Address the HTTP server listens on.")

	checkCmd := &cobra.Command{
		Use:   "check [MANIFEST_PATH...]",
		Short: "Load manifests and report whether every program is executable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.ModeCheck, args)
		},
	}

	root.AddCommand(replCmd, serveCmd, checkCmd)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		// --help or the help command ran.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Package commands provides the cobra command surface of the chuck CLI.
// It wires the global flags, builds the jokes API client from flags and
// configuration, and maps every outcome to a process exit code.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chuck/internal/client"
	"chuck/internal/config"
	"chuck/internal/logging"
	"chuck/internal/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

// Flag names for persistent global flags.
const (
	flagVerbose = "verbose"
	flagJSON    = "json"
	flagAPIURL  = "api-url"
	flagTimeout = "timeout"
)

// Flag names for subcommand flags.
const (
	flagCategory = "category"
	flagLimit    = "limit"
)

// Sentinels mapped to exit codes by Run. errHandled marks failures already
// reported on stderr; errUsage marks an invocation that never reached a
// handler.
var (
	errHandled = errors.New("handled failure")
	errUsage   = errors.New("no subcommand given")
)

// NewRootCmd creates and returns the root command for the chuck CLI.
// The root command establishes persistent flags inherited by all
// subcommands and silences cobra's own usage and error printing so Run
// stays the single place deciding what reaches stderr.
//
// Subcommands:
//   - random: Fetch one random joke, optionally from a category
//   - categories: List the available joke categories
//   - search: Free-text search with a client-side result limit
//
// Global Flags:
//   - --verbose/-v: Include joke metadata in text output
//   - --json: Print the raw API payload as indented JSON
//   - --api-url: Jokes API base URL (default from configuration)
//   - --timeout: Request timeout (default from configuration)
func NewRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chuck",
		Short:         "Chuck Norris jokes from the command line",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errUsage
		},
	}

	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Include joke metadata in text output")
	cmd.PersistentFlags().Bool(flagJSON, false, "Print the raw API payload as indented JSON")
	cmd.PersistentFlags().String(flagAPIURL, cfg.API.BaseURL, "Jokes API base URL")
	cmd.PersistentFlags().Duration(flagTimeout, cfg.API.Timeout(), "Request timeout")

	cmd.AddCommand(NewRandomCmd(logger))
	cmd.AddCommand(NewCategoriesCmd(logger))
	cmd.AddCommand(NewSearchCmd(logger))

	return cmd
}

// Run executes the CLI with explicit arguments and output streams and
// returns the process exit code: 0 on success, 2 for handled failures
// (including configuration errors), 1 when no subcommand ran.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	logger := logging.New(stderr, cfg.Log.Level, cfg.Log.Format).
		With(slog.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(cfg, logger)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return exitOK
	case errors.Is(err, errHandled):
		return exitFailure
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		// cobra parse failures: unknown commands, bad flags, surplus args.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return exitUsage
	}
}

// Execute runs the CLI against the real process streams and arguments.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// newClientFromFlags builds a jokes API client from the persistent flags and
// returns it together with the per-request timeout.
func newClientFromFlags(cmd *cobra.Command, logger *slog.Logger) (*client.Client, time.Duration, error) {
	baseURL, _ := cmd.Flags().GetString(flagAPIURL)
	timeout, _ := cmd.Flags().GetDuration(flagTimeout)

	cfg := &client.Config{BaseURL: baseURL, Timeout: timeout}
	c, err := client.NewClient(cfg, client.WithLogger(logger))
	if err != nil {
		return nil, 0, err
	}
	return c, timeout, nil
}

// fail reports a handled failure on stderr in the CLI's standard format and
// returns the sentinel Run maps to exit code 2.
func fail(cmd *cobra.Command, msg string, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s - %v\n", msg, err)
	return errHandled
}

// Package cli wires the command line onto the lookup and owns exit codes.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/aayushdutt/zuluquery/internal/app"
	"github.com/aayushdutt/zuluquery/internal/config"
	"github.com/aayushdutt/zuluquery/internal/ui"
	"github.com/aayushdutt/zuluquery/internal/zulu"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

const usageText = `Usage: zuluquery <jdk-version> <os> <arch> <javafx-bundled>
   Defaults are: jdk-version-is-required linux-glibc x64 false
   os     = linux-glibc | macos
   arch   = x64 | aarch64
   javafx = false | true
`

// rootOptions represents root command options.
type rootOptions struct {
	Verbose     bool
	Interactive bool
	APIURL      string
}

// Execute runs the command line with the process arguments and the standard streams, returning the exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cmd := newRootCommand(logger, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	var statusErr *zulu.StatusError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, zulu.ErrUsage):
		fmt.Fprint(stdout, usageText)
		return ExitFailure
	case errors.As(err, &statusErr):
		fmt.Fprintf(stdout, "HTTP error: %d\n", statusErr.Code)
		return ExitFailure
	case errors.Is(err, context.Canceled):
		logger.Warn("lookup canceled")
		return ExitFailure
	default:
		logger.Errorf("error running command: %s", err)
		return ExitFailure
	}
}

// newRootCommand returns a new instance of the root command.
func newRootCommand(logger *log.Logger, stdout, stderr io.Writer) *cobra.Command {
	options := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "zuluquery [jdk-version] [os] [arch] [javafx-bundled]",
		Short: "Look up the latest Azul Zulu JDK package and its checksum",
		Long: `Queries the Azul metadata API for the latest JDK tar.gz matching the given version,
OS, architecture and JavaFX flag, then prints each package with its sha256 checksum.`,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := zulu.ParseArgs(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if options.Verbose {
				cfg.Verbose = true
			}
			if options.APIURL != "" {
				cfg.APIURL = options.APIURL
			}
			cfg.Interactive = options.Interactive

			if cfg.Verbose {
				logger.SetLevel(log.DebugLevel)
			}

			client := zulu.NewClient(append(cfg.ClientOptions(), zulu.WithLogger(logger))...)
			return lookup(cmd.Context(), cfg, client, req, logger, stdout, stderr)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Print the query URL and the raw package JSON")
	flags.BoolVarP(&options.Interactive, "interactive", "i", false, "Show a progress spinner while querying")
	flags.StringVar(&options.APIURL, "api-url", "", "Override the packages endpoint (default "+zulu.DefaultBaseURL+")")

	return cmd
}

func lookup(ctx context.Context, cfg *config.Config, client app.MetadataClient, req zulu.Request, logger *log.Logger, stdout, stderr io.Writer) error {
	if !cfg.Interactive {
		return app.New(cfg, client, stdout, logger).Run(ctx, req)
	}

	label := fmt.Sprintf("Querying Zulu %s (%s/%s)...", req.JavaVersion, req.OS, req.Arch)
	return withBufferedLogs(logger, stderr, func() error {
		return ui.Run(ctx, label, func(ctx context.Context, w io.Writer) error {
			return app.New(cfg, client, w, logger).Run(ctx, req)
		}, stdout, stderr)
	})
}

// withBufferedLogs holds log output back while fn draws on stderr and
// writes it out once fn returns.
func withBufferedLogs(logger *log.Logger, stderr io.Writer, fn func() error) error {
	var held bytes.Buffer
	logger.SetOutput(&held)

	err := fn()

	// SetOutput takes the logger lock, so later writes go straight to stderr
	logger.SetOutput(stderr)
	stderr.Write(held.Bytes())
	return err
}

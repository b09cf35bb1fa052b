package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/volcanolab/wws/client"
	"github.com/volcanolab/wws/cmd/gen"
	"github.com/volcanolab/wws/internal/env"
	"github.com/volcanolab/wws/protocol"
)

var (
	// The Winston server to query
	server string

	// The Winston server port
	port int

	// Connect and idle timeout
	timeout time.Duration

	// Enable debug logging
	verbose bool

	// Channel and time span flags shared by the data subcommands
	scnlFlag  string
	startFlag string
	endFlag   string
)

var ErrServerRequired = errors.New("A server is required; pass --server or set WWS_SERVER")

var rootCmd = &cobra.Command{
	Use:   "wws",
	Short: "Query seismic data from a Winston wave server",
	Long: `Query seismic data from a Winston wave server

wws speaks the Winston wire protocol to pull raw waveforms, helicorder
min/max summaries, RSAM envelopes and the channel menu from a remote
server.

Usage
	wws --server winston.example.org menu
	wws -s winston.example.org wave --scnl AUGL.EHZ.AV --start -10m --end now

`,
	SilenceUsage: true,
}

func Execute() {
	ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer signalStop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&server, "server", "s", "", "The Winston server to query")
	flags.IntVarP(&port, "port", "p", 0, "The Winston server port")
	flags.DurationVar(&timeout, "timeout", 0, "Connect and idle timeout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd, menuCmd, waveCmd, heliCmd, rsamCmd, sendCmd, gen.RootCmd)
}

// newClient resolves flags against the environment config and builds a
// client plus the logger shared by the command.
func newClient(ctx context.Context) (*client.Client, *zap.Logger, error) {
	conf, err := env.LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	log, err := env.MakeLogger(verbose || conf.Trace)
	if err != nil {
		return nil, nil, err
	}

	if server == "" {
		server = conf.Server
	}
	if server == "" {
		return nil, nil, ErrServerRequired
	}
	if port == 0 {
		port = conf.Port
	}
	if timeout == 0 {
		timeout = conf.IdleTimeout
	}

	cli := client.New(client.Options{
		Server:      server,
		Port:        port,
		IdleTimeout: timeout,
		Log:         log.Named("wws"),
	})

	return cli, log, nil
}

func addSpanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&scnlFlag, "scnl", "", "Channel to request as STA.CHA.NET[.LOC]")
	flags.StringVar(&startFlag, "start", "", "Span start: RFC3339, or a negative duration relative to now")
	flags.StringVar(&endFlag, "end", "now", "Span end: RFC3339, \"now\", or a negative duration relative to now")
	_ = cmd.MarkFlagRequired("scnl")
	_ = cmd.MarkFlagRequired("start")
}

func parseSpanFlags() (protocol.Scnl, protocol.TimeSpan, error) {
	scnl, err := protocol.ParseScnl(scnlFlag)
	if err != nil {
		return protocol.Scnl{}, protocol.TimeSpan{}, err
	}

	start, err := parseInstant(startFlag)
	if err != nil {
		return protocol.Scnl{}, protocol.TimeSpan{}, err
	}

	end, err := parseInstant(endFlag)
	if err != nil {
		return protocol.Scnl{}, protocol.TimeSpan{}, err
	}

	return scnl, protocol.NewTimeSpan(start, end), nil
}

// parseInstant accepts "now", a negative duration relative to now
// ("-10m"), or an RFC3339 timestamp.
func parseInstant(s string) (time.Time, error) {
	if s == "now" {
		return time.Now(), nil
	}

	if strings.HasPrefix(s, "-") {
		ago, err := time.ParseDuration(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse %q as a relative duration: %w", s, err)
		}
		return time.Now().Add(ago), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as RFC3339: %w", s, err)
	}
	return t, nil
}

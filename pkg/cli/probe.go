package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mazeserver/devtools/internal/cliconfig"
	"github.com/mazeserver/devtools/pkg/cli/internal/flags"
	"github.com/mazeserver/devtools/pkg/cli/internal/parse"
	"github.com/mazeserver/devtools/pkg/logging"
	"github.com/mazeserver/devtools/pkg/probe"
	"github.com/spf13/cobra"
)

type probeFlags struct {
	configFile string
	url        string
	playerID   string
	playerName string
	token      string
	headers    flags.StringSlice
	trace      bool
	json       bool
	logLevel   string
	logFormat  string
}

// NewProbeCommand returns the wsprobe root command.
func NewProbeCommand() *cobra.Command {
	var f probeFlags

	cmd := &cobra.Command{
		Use:   "wsprobe",
		Short: "Connect to the game server, authenticate and print every event",
		Long: `wsprobe opens a single WebSocket connection, sends one auth message as soon
as the handshake completes, and prints every event until the connection
closes or the process is interrupted. It never reconnects.

Configuration can be provided via flags, environment variables (WSPROBE_*),
or a config file. By default wsprobe looks for .wsproberc.yaml in the
current directory and ~/.config/wsprobe/config.yaml.`,
		Example: `  # Probe the local game server as the built-in test player
  wsprobe

  # Probe another server as a different player, one JSON object per event
  wsprobe --url ws://maze.example.com:8081/ --player-id bot_7 --json`,
		Args:    cobra.NoArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "Config file (default: .wsproberc.yaml, then ~/.config/wsprobe/config.yaml)")
	fl.StringVarP(&f.url, "url", "u", probe.DefaultURL, "WebSocket URL")
	fl.StringVar(&f.playerID, "player-id", probe.DefaultPlayerID, "Player id sent in the auth message")
	fl.StringVar(&f.playerName, "player-name", probe.DefaultPlayerName, "Player name sent in the auth message")
	fl.StringVar(&f.token, "token", "", "Token sent in the auth message")
	fl.VarP(&f.headers, "header", "H", "Custom handshake header (key:value), repeatable")
	fl.BoolVar(&f.trace, "trace", false, "Log handshake and frame details to stderr")
	fl.BoolVar(&f.json, "json", false, "Print one JSON object per event")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newVersionCommand("wsprobe"))
	return newRoot(cmd)
}

func runProbe(cmd *cobra.Command, f *probeFlags) error {
	cfg, err := cliconfig.LoadAll(f.configFile)
	if err != nil {
		return err
	}
	applyProbeFlags(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}

	header, err := parse.HTTPHeader(f.headers)
	if err != nil {
		return err
	}

	logger := logging.ForCommand(cmd.ErrOrStderr(), cfg.Trace, f.logLevel, f.logFormat)
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := probe.NewClient(probe.Config{
		URL:    cfg.URL,
		Auth:   probe.NewAuthMessage(cfg.PlayerID, cfg.PlayerName, cfg.Token),
		Header: header,
		Logger: logger,
	}, probe.NewConsoleHandler(out, cfg.JSON, logger))

	logger.Debug("starting probe", "session", client.SessionID(), "player", cfg.PlayerID, "urlSource", cfg.Source("url"))
	if !cfg.JSON {
		fmt.Fprintf(out, "connecting to %s...\n", cfg.URL)
	}

	// Connection failures were already reported through the handler and do
	// not change the exit status.
	if err := client.Run(ctx); err != nil {
		logger.Debug("probe ended with error", "error", err)
	}
	return nil
}

// applyProbeFlags copies explicitly set flags over the loaded config.
func applyProbeFlags(cmd *cobra.Command, cfg *cliconfig.ProbeConfig, f *probeFlags) {
	set := func(name, key string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
			cfg.Sources[key] = cliconfig.SourceFlag
		}
	}
	set("url", "url", func() { cfg.URL = f.url })
	set("player-id", "playerId", func() { cfg.PlayerID = f.playerID })
	set("player-name", "playerName", func() { cfg.PlayerName = f.playerName })
	set("token", "token", func() { cfg.Token = f.token })
	set("trace", "trace", func() { cfg.Trace = f.trace })
	set("json", "json", func() { cfg.JSON = f.json })
}

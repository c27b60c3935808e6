package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/logging"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const Version = "1.0.0"

type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "connect4",
		Short: "Two-player Connect Four in the terminal",
		Long: `Plays Connect Four for two players sharing one terminal.

Players take turns entering a column number from 1 to 7. The first to line
up four pieces horizontally, vertically or diagonally wins. When the game
ends you can start another one.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), opts, in, out)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "connect4.yaml", "path to the YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored pieces")

	cmd.AddCommand(newVersionCmd(out))
	return cmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "connect4 v%s\n", Version)
		},
	}
}

func runGame(ctx context.Context, opts *rootOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.noColor {
		cfg.Color = false
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("version", Version), zap.String("config", opts.configPath))

	session := game.NewGameSession(cfg.Players.Player1.Name, cfg.Players.Player2.Name, logger)
	renderer := console.NewRenderer(out, cfg.Players, cfg.Color)

	return console.NewShell(session, renderer, in, out, logger).Run(ctx)
}

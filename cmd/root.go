package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/l2quiz/internal/app"
	"github.com/abhisek/l2quiz/internal/config"
	"github.com/abhisek/l2quiz/internal/lib/slogcustom"
	"github.com/abhisek/l2quiz/internal/quiz"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "l2quiz",
		Short: "Find the Layer-2 network that fits you",
		Long: "l2quiz asks five questions about fees, tooling, decentralization, use case and risk,\n" +
			"then recommends Optimism, Arbitrum, Polygon, zkSync or Base.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to YAML config (overrides "+config.EnvPath+" env var)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-file", "", `Log file path ("-" discards)`)

	cmd.AddCommand(newPlainCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig reads the config from --config, then L2QUIZ_CONFIG, then the
// default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	return config.Load(path)
}

// setupLogger builds the logger for a command. The TUI owns the terminal,
// so it logs to a file; line-oriented commands log to stderr unless a file
// is configured. The returned func closes any opened file.
func setupLogger(cmd *cobra.Command, cfg config.Config, tui bool) (*slog.Logger, func(), error) {
	noop := func() {}

	levelStr := cfg.Log.Level
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		levelStr = v
	}
	level, err := slogcustom.ParseLevel(levelStr)
	if err != nil {
		return nil, noop, err
	}

	path := cfg.Log.File
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		path = v
	}

	var out io.Writer
	colored := false
	closer := noop
	switch {
	case path == "-":
		return slog.New(slog.DiscardHandler), noop, nil
	case path == "" && !tui:
		out = cmd.ErrOrStderr()
		colored = !color.NoColor
	default:
		if path == "" {
			if path, err = config.DefaultLogPath(); err != nil {
				return nil, noop, fmt.Errorf("resolve log path: %w", err)
			}
		} else if err := config.EnsureDir(path); err != nil {
			return nil, noop, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	return slog.New(slogcustom.NewHandler(out, level, colored)), closer, nil
}

// prepare loads config, builds the logger and checks the quiz data.
func prepare(cmd *cobra.Command, tui bool) (config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, func() {}, err
	}
	log, closeLog, err := setupLogger(cmd, cfg, tui)
	if err != nil {
		return cfg, nil, func() {}, err
	}
	if err := quiz.ValidateFixtures(); err != nil {
		closeLog()
		return cfg, nil, func() {}, err
	}
	return cfg, log, closeLog, nil
}

// runApp launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, closeLog, err := prepare(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting l2quiz", "version", version)
	return app.Run(app.Options{
		Logger:    log,
		AltScreen: cfg.UI.AltScreen,
		Splash:    cfg.UI.Splash,
	})
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pstuifzand/tui-reconcile/internal/app"
	"github.com/pstuifzand/tui-reconcile/internal/config"
)

var (
	debug      bool
	nightMode  bool
	strict     bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tuir [catalog]",
	Short: "Terminal chat theme picker",
	Long: `tuir shows the chat themes of a catalog file as an animated list.

The catalog is a YAML or JSON file with emoticon themes, gift themes and
their owners. Changes to the file are picked up while the picker runs.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPicker,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and key event display")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/tui-reconcile/config.toml)")
	rootCmd.Flags().BoolVar(&nightMode, "night", false, "Start in night mode")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail on duplicate theme ids or unordered rows")

	rootCmd.AddCommand(diffCmd, sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

// newLogger writes JSON logs to path; the terminal belongs to the picker
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		path = "tuir.log"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Set("catalog", args[0])
	}
	if cmd.Flags().Changed("night") {
		cfg.Set("night_mode", fmt.Sprint(nightMode))
	}
	if cmd.Flags().Changed("strict") {
		cfg.Set("strict", fmt.Sprint(strict))
	}
	if cfg.CatalogPath() == "" {
		return fmt.Errorf("no catalog file given and none configured")
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	application, err := app.NewApp(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	if debug {
		application.SetDebugMode(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("runtime error", zap.Error(err))
		return fmt.Errorf("runtime error: %w", err)
	}
	return nil
}

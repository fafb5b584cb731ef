package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/daymark/internal/calendar"
	"github.com/username/daymark/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daymark",
		Short: "Calendar day state and marking planner",
		Long:  "Resolve the state of a calendar day and prepare its marking (dot, multi-dot, period, multi-period, custom) for drawing",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file and level
			var logCfg config.LogConfig
			if cfg, err := config.Load(configPath); err == nil {
				logCfg = cfg.Log
			}

			var err error
			logger, err = newLogger(logCfg)
			if err != nil {
				// Fallback to console at info
				logger, _ = newLogger(config.LogConfig{})
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.daymark, /etc/daymark)")

	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config. Without --config a missing file falls back
// to defaults and DAYMARK_ environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildSource wires the configured marked-dates sources. It returns nil
// when none are configured.
func buildSource(cfg *config.Config) (calendar.Source, error) {
	var primary calendar.Source
	if cfg.Markings.File != "" {
		fileSource := calendar.NewFileSource(cfg.Markings.File, logger)
		if err := fileSource.Load(); err != nil {
			return nil, err
		}
		primary = fileSource
	}

	var holidays calendar.Source
	switch cfg.Markings.Holidays.GetType() {
	case "isdayoff":
		logger.Info("Using isdayoff.ru holiday calendar")
		holidays = calendar.NewIsDayOffSource(
			cfg.Markings.Holidays.APIURL,
			cfg.Markings.Holidays.GetCacheTTL(),
			logger,
		)
	case "none":
	default:
		return nil, fmt.Errorf("unknown holiday source type: %s", cfg.Markings.Holidays.Type)
	}

	switch {
	case primary != nil && holidays != nil:
		return calendar.NewCompositeSource(primary, holidays, logger), nil
	case primary != nil:
		return primary, nil
	default:
		return holidays, nil
	}
}

// newLogger builds the application logger at cfg.Level. Logs go to the
// console, or as JSON to a rotating file when cfg.File is set.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.File == "" {
		consoleConfig := zap.NewProductionConfig()
		consoleConfig.Level = zap.NewAtomicLevelAt(level)
		consoleConfig.EncoderConfig = encoderConfig
		return consoleConfig.Build()
	}

	rotation := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotation), level)
	return zap.New(core), nil
}

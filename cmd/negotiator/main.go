// Package main is the entry point for the negotiation service.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

// serviceName is attached to every log entry.
const serviceName = "avanegotiate"

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// cliFlags holds command line flags.
type cliFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	showVersion bool
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if flags.showVersion {
		printVersion(os.Stdout)
		return
	}

	bootstrap := initLogger(flags, config.DefaultLoggingConfig())

	cfg, err := loadAndValidateConfig(flags.configPath, bootstrap)
	if err != nil {
		bootstrap.Fatal("invalid configuration", observability.Error(err))
	}
	_ = bootstrap.Sync()

	logger := initLogger(flags, cfg.Logging)
	defer func() { _ = logger.Sync() }()

	app, err := initApplication(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", observability.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, app, logger); err != nil {
		logger.Fatal("negotiator stopped with error", observability.Error(err))
	}
}

// parseFlags parses command line flags. Defaults come from the environment.
func parseFlags(args []string) (cliFlags, error) {
	fs := flag.NewFlagSet("negotiator", flag.ContinueOnError)

	var flags cliFlags
	fs.StringVar(&flags.configPath, "config", getEnvOrDefault(EnvConfigPath, ""),
		"Path to configuration file (defaults are used when empty)")
	fs.StringVar(&flags.logLevel, "log-level", getEnvOrDefault(EnvLogLevel, ""),
		"Log level (debug, info, warn, error), overrides the configuration file")
	fs.StringVar(&flags.logFormat, "log-format", getEnvOrDefault(EnvLogFormat, ""),
		"Log format (json, console), overrides the configuration file")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	return flags, nil
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "avanegotiate version %s\n", version)
	_, _ = fmt.Fprintf(w, "  Build time: %s\n", buildTime)
	_, _ = fmt.Fprintf(w, "  Git commit: %s\n", gitCommit)
}

// logConfig merges the logging section with command line overrides.
func logConfig(flags cliFlags, lc config.LoggingConfig) observability.LogConfig {
	cfg := observability.LogConfig{
		Level:   lc.Level,
		Format:  lc.Format,
		Output:  lc.Output,
		Service: serviceName,
	}
	if flags.logLevel != "" {
		cfg.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Format = flags.logFormat
	}
	return cfg
}

// initLogger initializes the logger and installs it globally.
func initLogger(flags cliFlags, lc config.LoggingConfig) observability.Logger {
	logger, err := observability.NewLogger(logConfig(flags, lc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	observability.SetGlobalLogger(logger)
	return logger
}

// loadAndValidateConfig loads the configuration, applies environment
// overrides and validates the result.
func loadAndValidateConfig(configPath string, logger observability.Logger) (*config.Config, error) {
	logger.Info("starting avanegotiate",
		observability.String("version", version),
		observability.String("config", configPath),
	)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	logger.Info("configuration loaded",
		observability.String("address", cfg.Server.Addr()),
		observability.String("default_format", cfg.Formats.Default),
		observability.Strings("formats", cfg.Formats.EnabledFormats()),
		observability.String("json_engine", cfg.Formats.JSON.JSONEngine()),
	)

	return cfg, nil
}

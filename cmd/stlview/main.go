// Package main is the entry point for the stlview mesh viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stlkit/internal/config"
	"github.com/Faultbox/stlkit/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := initLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stlview [options] <file.stl>")
		os.Exit(1)
	}

	v, err := newViewer(cfg, flag.Arg(0))
	if err != nil {
		logger.Error("failed to open model", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func initLogger(cfg *config.Config) error {
	if cfg.Logging.LogFile == "" {
		return logger.Init(cfg.Logging.Level, "")
	}
	return logger.InitWithFileConfig(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, true)
}

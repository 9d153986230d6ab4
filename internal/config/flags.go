package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagDetector  = flag.String("detector", "", "Format detector: structure or scan")
	flagTolerance = flag.Float64("tolerance", 0, "Zero-length normal threshold")
	flagWidth     = flag.Int("w", 0, "Window width")
	flagHeight    = flag.Int("h", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Decode.Verbose = true
	}
	if *flagDetector != "" {
		cfg.Decode.Detector = *flagDetector
	}
	if *flagTolerance > 0 {
		cfg.Decode.Tolerance = float32(*flagTolerance)
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}

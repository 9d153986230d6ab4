// Package config handles stlkit configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// DecodeConfig holds STL decoding settings.
type DecodeConfig struct {
	// Detector selects the format classifier: "structure" or "scan".
	Detector string `yaml:"detector"`

	// Tolerance is the zero-length normal threshold; 0 rejects only
	// exactly-zero normals.
	Tolerance float32 `yaml:"tolerance"`

	// Verbose makes batch commands print per-facet status lines.
	Verbose bool `yaml:"verbose"`
}

// ViewerConfig holds display settings for stlview.
type ViewerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	VSync  bool    `yaml:"vsync"`
	FOV    float32 `yaml:"fov"`
}

// LoggingConfig holds logging and rotation settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			Detector:  "structure",
			Tolerance: 0,
			Verbose:   false,
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    45,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

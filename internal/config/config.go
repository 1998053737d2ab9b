// Package config handles urdftool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParseConfig holds robot-description parsing settings.
type ParseConfig struct {
	// Scale converts document units to engine units. It multiplies
	// every length-valued quantity in a description.
	Scale float64 `yaml:"scale"`
}

// AssetsConfig holds mesh asset lookup settings.
type AssetsConfig struct {
	// MeshDirs are extra directories searched for mesh files, after
	// the description's own directory.
	MeshDirs []string `yaml:"mesh_dirs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Scale: 1.0,
		},
		Assets: AssetsConfig{
			MeshDirs: nil,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

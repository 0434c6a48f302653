package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kyavuz/uakit/logger"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
	EnvPrefix  string // Environment variable prefix (default: UAKIT)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load reads settings for a service from a YAML config file, a .env file
// and process environment variables, in increasing order of precedence.
// Missing files are not an error; the result may be an empty Settings.
func Load(serviceName string, opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.EnvPrefix == "" {
		lc.EnvPrefix = "UAKIT"
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findConfigFile(serviceName, lc.FileSystem)
	}
	if lc.EnvFile == "" && lc.FileSystem.Exists(".env") {
		lc.EnvFile = ".env"
	}

	v := viper.New()

	// 1. YAML config first (base configuration).
	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", lc.ConfigFile, err)
		}
	}

	// 2. .env file, so env lookups below pick up its variables.
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			logger.Get(logger.ComponentConfig).Warn("failed to load .env file",
				logger.Fields("path", lc.EnvFile, "error", err.Error()))
		}
	}

	// 3. Environment variables override file values.
	v.SetEnvPrefix(lc.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}

	return NewSettings(v.AllSettings()), nil
}

// findConfigFile searches for a service config file in standard locations.
func findConfigFile(serviceName string, fs FileSystem) string {
	searchPaths := []string{
		fmt.Sprintf("./%s.yml", serviceName),
		fmt.Sprintf("./%s.yaml", serviceName),
		"./config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

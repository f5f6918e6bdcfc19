package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nodejs-spain/atlas.js/errors"
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

// Load reads the application configuration for one environment rooted at
// root. It layers, lowest precedence first: the shared config file, the
// per-environment config file, then environment variables (optionally seeded
// from a .env file). Missing files are fine; an unparsable one is not.
func Load(env, root string, opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	v := viper.New()
	v.SetConfigType("yaml")

	for _, path := range configSearchPaths(env, root, lc) {
		if !lc.FileSystem.Exists(path) {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Config("failed to read config file %s", path).WithCause(err)
		}
	}

	if envFile := envFilePath(env, root, lc); envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return nil, errors.Config("failed to load env file %s", envFile).WithCause(err)
		}
	}

	v.SetEnvPrefix("ATLAS")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to unmarshal config for env %s", env).WithCause(err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configSearchPaths lists config files lowest precedence first so viper's
// merge lets the per-environment file override the shared one.
func configSearchPaths(env, root string, lc LoaderConfig) []string {
	if lc.ConfigFile != "" {
		return []string{lc.ConfigFile}
	}
	return []string{
		filepath.Join(root, "config.yml"),
		filepath.Join(root, "config", "config.yml"),
		filepath.Join(root, "config", fmt.Sprintf("%s.yml", env)),
	}
}

func envFilePath(env, root string, lc LoaderConfig) string {
	if lc.EnvFile != "" {
		return lc.EnvFile
	}
	candidates := []string{
		filepath.Join(root, fmt.Sprintf(".env.%s", env)),
		filepath.Join(root, ".env"),
	}
	for _, path := range candidates {
		if lc.FileSystem != nil && lc.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

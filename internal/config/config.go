package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Suite file extensions read when walking a directory
	Extensions []string

	// Patterns of paths to ignore when walking a directory
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Suite string
}

// File is the layout of the optional YAML config file
type File struct {
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{}
	cfg.Extensions = make([]string, len(DefaultExtensions))
	copy(cfg.Extensions, DefaultExtensions)
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the .env file, the YAML config file and the environment
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if err := godotenv.Load(DefaultEnvFile); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	path, explicit := os.LookupEnv(ConfigFileEnv)
	if !explicit {
		path = DefaultConfigFile
	}
	if err := cfg.ApplyFile(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if explicit {
			color.New(color.FgYellow).Fprintf(os.Stderr, "Config file %s not found, using defaults\n", path)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyFile merges the YAML config file at path into the config
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(file.Extensions) > 0 {
		c.Extensions = normalizeExtensions(file.Extensions)
	}
	if len(file.Ignore) > 0 {
		c.PathsToIgnore = file.Ignore
	}
	return nil
}

// ApplyEnv applies the extension and ignore overrides from the environment
func (c *Config) ApplyEnv() {
	if v := splitList(os.Getenv(ExtensionsEnv)); len(v) > 0 {
		c.Extensions = normalizeExtensions(v)
	}
	if v := splitList(os.Getenv(IgnoreEnv)); len(v) > 0 {
		c.PathsToIgnore = v
	}
}

// GetSuitePath returns the cleaned suite path from the flags
func (c *Config) GetSuitePath() string {
	if c.Flags.Suite == "" {
		return ""
	}
	return filepath.Clean(c.Flags.Suite)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

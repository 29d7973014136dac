package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all promptpack configuration
type Config struct {
	Whitelist       []string     `toml:"whitelist"`
	Blacklist       []string     `toml:"blacklist"`
	SnippetMarker   string       `toml:"snippet_marker"`
	CopyToClipboard bool         `toml:"copy_to_clipboard"`
	MarkdownStyle   string       `toml:"markdown_style"`
	HistoryDir      string       `toml:"history_dir"`
	LockTimeout     string       `toml:"lock_timeout"`
	Source          SourceConfig `toml:"source"`
}

// SourceConfig holds the default content transforms applied to files.
// Each flag keeps the corresponding content when true.
type SourceConfig struct {
	Comments       bool `toml:"comments"`
	Imports        bool `toml:"imports"`
	Docstrings     bool `toml:"docstrings"`
	NotebookOutput bool `toml:"notebook_output"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Whitelist:       []string{"*"},
		Blacklist:       []string{"__pycache__"},
		SnippetMarker:   "```",
		CopyToClipboard: true,
		MarkdownStyle:   "dark",
		HistoryDir:      filepath.Join(homeDir, ".promptpack", "history"),
		LockTimeout:     "10s",
		Source: SourceConfig{
			Comments:       true,
			Imports:        true,
			Docstrings:     true,
			NotebookOutput: false,
		},
	}
}

// LockTimeoutDuration returns the lock timeout as a duration
func (c *Config) LockTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.LockTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Load reads configuration from path, or from the default config file when
// path is empty. A missing default file yields the defaults; a missing
// explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err != nil && path == "" {
		return cfg, nil
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(homeDir, ".promptpack", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand ~ in HistoryDir
	if len(cfg.HistoryDir) > 0 && cfg.HistoryDir[0] == '~' {
		cfg.HistoryDir = filepath.Join(homeDir, cfg.HistoryDir[1:])
	}

	return cfg, nil
}

// Save writes configuration to the config file
func (c *Config) Save() error {
	configDir := ConfigDir()
	if configDir == "" {
		return fmt.Errorf("failed to resolve home directory")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.toml")
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ConfigDir returns the promptpack config directory path
func ConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".promptpack")
}

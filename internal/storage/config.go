package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// SelectorBuiltin selects the in-process picker instead of an fzf binary.
const SelectorBuiltin = "builtin"

// Environment overrides applied on top of the config file.
const (
	SelectorEnvVar = "BZFM_SELECTOR"
	LocaleEnvVar   = "BZFM_LANG"
)

// Config holds application configuration.
type Config struct {
	Selector string `json:"selector"` // fzf binary name or path, or "builtin"
	Editor   string `json:"editor"`   // empty falls back to $EDITOR
	Locale   string `json:"locale"`   // empty detects from the environment
	Alias    string `json:"alias"`    // default shorthand for `init`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Selector: "fzf",
		Alias:    "bz",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: defaults still apply when the file can't be written
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Selector == "" {
		config.Selector = defaults.Selector
	}
	if config.Alias == "" {
		config.Alias = defaults.Alias
	}

	return &config, nil
}

// ApplyEnv overlays BZFM_SELECTOR and BZFM_LANG onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(SelectorEnvVar); v != "" {
		c.Selector = v
	}
	if v := os.Getenv(LocaleEnvVar); v != "" {
		c.Locale = v
	}
}

// EditorCommand returns the editor to launch: the configured one, then
// $EDITOR, then vim.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vim"
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/bzfm/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "bzfm", "config.json"), nil
}

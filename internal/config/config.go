// Package config manages the CLI's own settings: the ~/.mediakit dot
// directory, its config.yaml, and discovery of the XML configuration
// document the toolkit should load.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mediakit-labs/mediakit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// documentName is the default XML configuration document looked
	// for inside the dot directory.
	documentName = "config.xml"

	// DocumentKey is the settings/env key naming the XML document,
	// i.e. "config" → MEDIAKIT_CONFIG.
	DocumentKey = "config"
)

// Dir returns the path to the mediakit dot directory (~/.mediakit).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the CLI settings file
// (~/.mediakit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the dot directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes viper to read the settings file and the MEDIAKIT_*
// environment. Missing files are fine; defaults apply.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a settings value by key, or "" if unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a settings key-value pair and saves the settings file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// DocumentPath resolves the XML configuration document to load: the
// explicit override first, then the settings/env value, then
// ~/.mediakit/config.xml if present. An empty result means "use the
// built-in defaults".
func DocumentPath(override string) string {
	if override != "" {
		return override
	}
	if path := Get(DocumentKey); path != "" {
		return path
	}
	candidate := filepath.Join(Dir(), documentName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mediakit-labs/mediakit/internal/branding"
	"github.com/mediakit-labs/mediakit/service"
)

// Environment names the inputs the default-configuration lookup is
// allowed to consult. Callers pass it explicitly instead of the
// library reading ambient process state on its own.
type Environment struct {
	// ConfigPath, when set, is used directly and nothing else is
	// consulted.
	ConfigPath string

	// Resolver supplies service lookups. Defaults to the built-in
	// resolver.
	Resolver *service.Resolver
}

// Default builds the default configuration. The document is located
// by, in order: the explicit ConfigPath, the MEDIAKIT_CONFIG
// environment variable, and the config.xml in the mediakit dot
// directory; with no document found, the all-defaults configuration
// is returned. The result is rebuilt on every call rather than
// cached, so configuration edits take effect on the next call.
func Default(env Environment) (*Config, error) {
	path := env.ConfigPath
	if path == "" {
		v := viper.New()
		v.SetEnvPrefix(branding.EnvPrefix())
		v.AutomaticEnv()
		path = v.GetString("config")
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, branding.HomeDir(), "config.xml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path == "" {
		return NewDefault(env.Resolver)
	}
	return LoadFile(path, &Options{Resolver: env.Resolver})
}

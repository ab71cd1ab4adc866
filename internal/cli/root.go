// Package cli defines the Cobra command tree for the mediakit CLI.
// Each file in this package registers one top-level command (detect,
// inspect, validate, version) with the root command. Command
// implementations delegate to the library packages and only handle
// flag parsing and output formatting.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mediakit-labs/mediakit/config"
	"github.com/mediakit-labs/mediakit/internal/branding"
	internalconfig "github.com/mediakit-labs/mediakit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	// configPath is the --config override for the XML document.
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` assembles a content type detection, parsing, and translation
pipeline from an XML configuration document. Without a document it runs the
built-in defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internalconfig.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the XML configuration document (defaults to $"+branding.EnvVar(internalconfig.DocumentKey)+" or "+branding.HomeDir()+"/config.xml)")
}

// loadConfig builds the configuration the command should run with,
// honoring the --config flag, the environment, and the dot directory.
func loadConfig() (*config.Config, error) {
	return config.Default(config.Environment{
		ConfigPath: internalconfig.DocumentPath(configPath),
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediakit-labs/mediakit/config"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <config.xml>",
	Short: "Validate an XML configuration document by loading it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile(args[0], nil)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		fmt.Printf("%s: OK\n", args[0])
		fmt.Println(cfg)
		return nil
	},
}

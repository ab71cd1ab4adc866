package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// detectSample bounds how much of each file is read for detection.
const detectSample = 64 << 10

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <file>...",
	Short: "Detect the media type of one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			prefix, err := io.ReadAll(io.LimitReader(f, detectSample))
			f.Close()
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			mt := cfg.Detector().Detect(prefix, path, cfg.Registry())
			fmt.Printf("%s: %s\n", path, mt)
		}
		return nil
	},
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/parse"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the resolved configuration composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("media types: %d registered\n", len(cfg.Registry().Types()))

		fmt.Println("detector:")
		printDetector(cfg.Detector(), "  ")

		fmt.Println("parser dispatch:")
		if mp, ok := cfg.Parser().(parse.MultiParser); ok {
			table := mp.Parsers()
			types := make([]string, 0, len(table))
			for mt := range table {
				types = append(types, mt.String())
			}
			sort.Strings(types)
			for _, mt := range types {
				fmt.Printf("  %s\n", mt)
			}
		} else {
			fmt.Printf("  %T\n", cfg.Parser())
		}

		fmt.Printf("translator: %T (available: %v)\n",
			cfg.Translator(), cfg.Translator().Available())
		return nil
	},
}

// printDetector renders a detector tree, one node per line.
func printDetector(d detect.Detector, indent string) {
	fmt.Printf("%s%T\n", indent, d)
	if md, ok := d.(detect.MultiDetector); ok {
		for _, child := range md.Detectors() {
			printDetector(child, indent+"  ")
		}
	}
}

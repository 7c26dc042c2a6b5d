package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wardle/nhsnumber/nhsnumber"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format <nhs-number>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Format NHS numbers in a 3-3-4 grouping",
	Long: `Format one or more NHS numbers for display e.g.

nhsnumber format 9077844449
907 784 4449
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, value := range args {
			n := nhsnumber.New(value)
			if err := n.Validate(); err != nil {
				return fmt.Errorf("unable to format '%s': %w", value, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

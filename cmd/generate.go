package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wardle/nhsnumber/nhsnumber"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Args:  cobra.NoArgs,
	Short: "Generate random valid NHS numbers for testing",
	Long: `Generate random valid NHS numbers, suitable for test fixtures and demonstrations.

Generated numbers pass validation but may belong to real patients.
Use --seed for a reproducible sequence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("count")
		if count < 1 {
			return fmt.Errorf("invalid count: %d", count)
		}
		var g *nhsnumber.Generator
		if seed := viper.GetUint64("seed"); seed != 0 {
			g = nhsnumber.NewGenerator(rand.New(rand.NewPCG(seed, seed)))
		} else {
			g = nhsnumber.NewGenerator(nil)
		}
		numbers := g.Many(count, viper.GetBool("unique"))
		if viper.GetBool("format") {
			for i, nnn := range numbers {
				numbers[i] = nhsnumber.Format(nnn)
			}
		}
		out := cmd.OutOrStdout()
		if viper.GetBool("json") {
			list := make([]interface{}, len(numbers))
			for i, nnn := range numbers {
				list[i] = nnn
			}
			return writeJSON(out, map[string]interface{}{"numbers": list})
		}
		for _, nnn := range numbers {
			fmt.Fprintln(out, nnn)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("count", 1, "Number of NHS numbers to generate")
	viper.BindPFlag("count", generateCmd.Flags().Lookup("count"))
	generateCmd.Flags().Bool("unique", true, "Do not generate the same NHS number twice")
	viper.BindPFlag("unique", generateCmd.Flags().Lookup("unique"))
	generateCmd.Flags().Uint64("seed", 0, "Seed for a reproducible sequence, 0=random")
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	generateCmd.Flags().Bool("format", false, "Format generated numbers in a 3-3-4 grouping")
	viper.BindPFlag("format", generateCmd.Flags().Lookup("format"))
}

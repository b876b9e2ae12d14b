package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorvisor/sample"
)

var top int

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match COLOR...",
	Short: "Names colors",
	Long: `Prints the catalog colors nearest to each COLOR, given as "#rrggbb" or
"r,g,b".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := newMatcher()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, arg := range args {
			c, err := sample.ParseColor(arg)
			if err != nil {
				return err
			}

			results, err := m.Ranked(sample.FromRGB(c), top)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\t%s\t%.4f\n", c.Hex(), r.Entry.Name(), r.Entry.Hex(), r.Distance)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVarP(&top, "top", "n", 1, "number of matches per color (0 for all)")
}

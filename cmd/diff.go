package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorvisor/distance"
	"github.com/mmuldo/colorvisor/sample"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff COLOR COLOR",
	Short: "Prints the perceptual difference between two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := metric()
		if err != nil {
			return err
		}

		var s [2]sample.Sample
		for i, a := range args {
			c, err := sample.ParseColor(a)
			if err != nil {
				return err
			}
			s[i] = sample.FromRGB(c)
		}

		d := m(s[0].Lab(), s[1].Lab())
		if d == distance.Undefined {
			return distance.ErrUndefined
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

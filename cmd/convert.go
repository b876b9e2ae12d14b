package cmd

import (
	"fmt"
	"strconv"

	"github.com/jkl1337/go-chromath"
	"github.com/spf13/cobra"

	"github.com/mmuldo/colorvisor/sample"
)

var fromLab bool

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert COLOR | --lab L A B",
	Short: "Prints a color in RGB, XYZ and Lab",
	Long: `Prints COLOR ("#rrggbb" or "r,g,b") in RGB, XYZ and Lab. With --lab the
color is read as three Lab components; put "--" before them when a
component is negative.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if fromLab {
			return cobra.ExactArgs(3)(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var s sample.Sample
		if fromLab {
			var lab chromath.Lab
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid Lab component %q: %w", a, err)
				}
				lab[i] = v
			}
			s = sample.FromLab(lab)
		} else {
			c, err := sample.ParseColor(args[0])
			if err != nil {
				return err
			}
			s = sample.FromRGB(c)
		}

		xyz, lab := s.XYZ(), s.Lab()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hex %s\n", s.Hex())
		fmt.Fprintf(out, "rgb %s\n", s.RGB())
		fmt.Fprintf(out, "xyz %.4f %.4f %.4f\n", xyz[0], xyz[1], xyz[2])
		fmt.Fprintf(out, "lab %.4f %.4f %.4f\n", lab[0], lab[1], lab[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&fromLab, "lab", false, "read the color as L* a* b*")
}

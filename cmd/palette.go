package cmd

import (
	"github.com/spf13/cobra"

	img "github.com/mmuldo/colorvisor/image"
	"github.com/mmuldo/colorvisor/render"
	"github.com/mmuldo/colorvisor/sample"
)

var (
	numColors    int
	sampleStep   int
	templateFile string
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette IMAGE",
	Short: "Names the dominant colors of an image",
	Long: `Quantizes IMAGE to --colors colors and prints each with its nearest catalog
name, most common first.

The output can be shaped with a pongo2 --template; it receives "matches",
each with hex, rgb, r, g, b, lab_l, lab_a, lab_b, name, distance, count and
entry (the catalog color).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := newMatcher()
		if err != nil {
			return err
		}

		tpl, err := reportTemplate()
		if err != nil {
			return err
		}

		i, err := img.Load(args[0])
		if err != nil {
			return err
		}
		ccs, err := img.Dominant(i, numColors, sampleStep)
		if err != nil {
			return err
		}
		logger.Debug("quantized", "image", args[0], "colors", len(ccs))

		matches := make([]render.Match, 0, len(ccs))
		for _, cc := range ccs {
			q := sample.FromRGB(cc.Color)
			r, err := m.Nearest(q)
			if err != nil {
				return err
			}
			matches = append(matches, render.Match{Query: q, Result: r, Count: cc.Count})
		}

		return tpl.Report(cmd.OutOrStdout(), matches)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntVarP(&numColors, "colors", "c", 8, "number of colors to extract")
	paletteCmd.Flags().IntVar(&sampleStep, "sample-step", 5, "count every n'th pixel in each direction")
	paletteCmd.Flags().StringVarP(&templateFile, "template", "t", "", "pongo2 template file for the report")
}

func reportTemplate() (*render.Template, error) {
	if templateFile == "" {
		return render.FromString(render.DefaultReport)
	}
	return render.FromFile(templateFile)
}

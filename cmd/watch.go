package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	img "github.com/mmuldo/colorvisor/image"
	"github.com/mmuldo/colorvisor/display"
	"github.com/mmuldo/colorvisor/render"
	"github.com/mmuldo/colorvisor/source"
	"github.com/mmuldo/colorvisor/visor"
)

var (
	imagePath string
	step      int
	once      bool
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously names the color under a moving pointer",
	Long: `Samples a color every interval, names it against the catalog and prints it
on its own background.

With --image the pointer walks over the picture --step pixels per tick.
Otherwise colors are read from stdin, one per line ("r g b", "r,g,b" or
"#rrggbb"), and watch stops at end of input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, metric, err := newMatcher()
		if err != nil {
			return err
		}

		label, err := visor.ParseLabelMode(viper.GetString("label"))
		if err != nil {
			return err
		}

		tpl, err := render.FromString(viper.GetString("format"))
		if err != nil {
			return err
		}
		sink, err := display.NewTerminal(os.Stdout, tpl)
		if err != nil {
			return err
		}
		defer sink.Close()

		var src visor.Source
		if imagePath != "" {
			i, err := img.Load(imagePath)
			if err != nil {
				return err
			}
			src = source.NewImage(i, step, once)
		} else {
			src = source.NewLines(os.Stdin)
		}

		loop := visor.NewLoop(src, m, sink)
		loop.Metric = metric
		loop.Label = label
		loop.Threshold = viper.GetFloat64("threshold")
		loop.Logger = logger

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interval := viper.GetDuration("interval")
		logger.Debug("watching", "interval", interval, "image", imagePath)
		return loop.Run(ctx, interval)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&imagePath, "image", "i", "", "image to walk the pointer over")
	watchCmd.Flags().IntVar(&step, "step", 1, "pixels the pointer moves per tick")
	watchCmd.Flags().BoolVar(&once, "once", false, "stop after one pass over the image")
	watchCmd.Flags().Duration("interval", visor.DefaultInterval, "sampling interval")
	watchCmd.Flags().String("label", "name", "label to show: name or rgb")
	watchCmd.Flags().StringP("format", "f", render.DefaultLine, "pongo2 template for each line")
	watchCmd.Flags().Float64("threshold", visor.DefaultThreshold, "distance from black under which text turns white")

	viper.BindPFlag("interval", watchCmd.Flags().Lookup("interval"))
	viper.BindPFlag("label", watchCmd.Flags().Lookup("label"))
	viper.BindPFlag("format", watchCmd.Flags().Lookup("format"))
	viper.BindPFlag("threshold", watchCmd.Flags().Lookup("threshold"))
}

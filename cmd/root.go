/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorvisor/match"
	"github.com/mmuldo/colorvisor/palette"
)

var (
	cfgFile string
	logger  = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorvisor",
	Short: "Names colors by their nearest perceptual match",
	Long: `colorvisor names colors by finding the closest entry of a reference
catalog under the CIEDE2000 color difference.

It can follow a moving pointer over an image or a stream of colors (watch),
name single colors (match), name the dominant colors of an image (palette),
and convert or compare colors (convert, diff).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorvisor.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "color catalog file, one name,#rrggbb per line (default is the built-in catalog)")
	rootCmd.PersistentFlags().String("metric", "ciede2000", "distance metric: ciede2000 or chromath")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".colorvisor" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorvisor")
	}

	viper.SetEnvPrefix("colorvisor")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadPalette returns the configured catalog, falling back to the built-in one.
func loadPalette() (*palette.Palette, error) {
	path := viper.GetString("catalog")
	if path == "" {
		p := palette.Default()
		logger.Debug("loaded built-in catalog", "colors", p.Len())
		return p, nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	p, err := palette.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded catalog", "path", path, "colors", p.Len())
	return p, nil
}

func metric() (match.Metric, error) {
	return match.MetricByName(viper.GetString("metric"))
}

// newMatcher builds a matcher from the configured catalog and metric.
func newMatcher() (*match.Matcher, match.Metric, error) {
	m, err := metric()
	if err != nil {
		return nil, nil, err
	}
	p, err := loadPalette()
	if err != nil {
		return nil, nil, err
	}
	return match.New(p, m), m, nil
}

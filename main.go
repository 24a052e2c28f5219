package main

import (
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/mockframe/config"
	"github.com/allape/mockframe/pipeline"
	"github.com/spf13/cobra"
	"os"
)

var l = gogger.New("mockframe")

func main() {
	err := NewRootCommand().Execute()
	if err != nil {
		l.Error().Println(err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var configFile string

	load := func() (config.Config, error) {
		return config.GetConfig(configFile)
	}

	compose := func(cmd *cobra.Command, args []string) error {
		conf, err := load()
		if err != nil {
			return err
		}
		return pipeline.Compose(conf)
	}

	root := &cobra.Command{
		Use:           "mockframe",
		Short:         "Stretch a frame template around an artwork",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          compose,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file, .toml or .yaml (default $MOCKFRAME_CONFIG or "+config.DefaultConfigPath+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "compose",
			Short: "Build the frame for the artwork and write it to output.path",
			Args:  cobra.NoArgs,
			RunE:  compose,
		},
		&cobra.Command{
			Use:   "guide",
			Short: "Outline the slice regions of the frame template into guide.path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conf, err := load()
				if err != nil {
					return err
				}
				return pipeline.Guide(conf)
			},
		},
		&cobra.Command{
			Use:   "inspect",
			Short: "Print asset sizes and the tiles the current edge width produces",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conf, err := load()
				if err != nil {
					return err
				}
				report, err := pipeline.Inspect(conf)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, entry := range append(report.Assets, report.Tiles...) {
					_, _ = fmt.Fprintf(out, "%s: %s\n", entry.Name, entry.Description)
				}
				_, err = fmt.Fprintf(out, "canvas: %dx%d\n", report.Canvas.X, report.Canvas.Y)
				return err
			},
		},
	)

	return root
}

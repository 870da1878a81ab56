// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphisual/config"
	"github.com/katalvlaran/graphisual/ctxlog"
)

var version = "0.1.0"

var (
	brand  = color.New(color.FgCyan, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:     "graphisual",
		Short:   "graphisual — draw graphs and watch algorithms walk them",
		Long:    brand.Sprint("graphisual") + " — interactive graph editing with step-by-step BFS, DFS and Dijkstra playback",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, _ := ctxlog.ParseLevel(cfg.Log.Level)
			logger := ctxlog.New(cmd.ErrOrStderr(), level)
			ctx := ctxlog.WithLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("graphisual {{ .Version }}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "graphisual.toml", "Path to a TOML config file")

	root.AddCommand(
		demoCmd(),
		algorithmsCmd(),
	)

	return root
}

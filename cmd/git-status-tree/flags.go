package main

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags for the application.
// Note: --version is provided automatically by urfave/cli.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "color",
			Usage: "When to color output: auto, always or never",
		},
		&urfavecli.BoolFlag{
			Name:    "icons",
			Aliases: []string{"i"},
			Usage:   "Render Nerd Font icons next to entries",
		},
		&urfavecli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Repaint the tree whenever the repository changes",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}

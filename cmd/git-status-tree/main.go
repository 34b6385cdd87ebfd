// Package main is the entry point for git-status-tree.
package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/gitstatustree/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, builtBy)
	buildinfo.Enrich()

	app := &urfavecli.Command{
		Name:      "git-status-tree",
		Usage:     "Show git status as a directory tree",
		ArgsUsage: "[extra git-status arguments]",
		Version:   buildinfo.Version(),
		Flags:     globalFlags(),
		Action:    run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "git-status-tree: %v\n", err)
		os.Exit(1)
	}
}

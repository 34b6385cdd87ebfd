package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/truncate"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/gitstatustree/internal/config"
	"github.com/chmouel/gitstatustree/internal/git"
	"github.com/chmouel/gitstatustree/internal/log"
	"github.com/chmouel/gitstatustree/internal/status"
	"github.com/chmouel/gitstatustree/internal/theme"
	"github.com/chmouel/gitstatustree/internal/tree"
	"github.com/chmouel/gitstatustree/internal/watch"
)

// statusSource produces raw status lines. Satisfied by *git.Service;
// tests substitute a canned source.
type statusSource interface {
	StatusLines(ctx context.Context, extraArgs []string) ([]string, error)
}

// run is the single CLI action: parse status, build the tree, print it.
// Trailing arguments are forwarded to git status.
func run(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	debugLog := cmd.String("debug-log")
	if debugLog == "" {
		debugLog = cfg.DebugLog
	}
	if debugLog != "" {
		if err := log.SetFile(debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
		}
	}
	defer func() { _ = log.Close() }()

	if cmd.Bool("icons") {
		cfg.Icons = true
	}
	if mode := cmd.String("color"); mode != "" {
		if !config.ValidColorMode(mode) {
			return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
		}
		cfg.Color = mode
	}
	styler := tree.NewStyler(theme.Default(), colorEnabled(cfg.Color), cfg.Icons)

	svc := git.NewService(log.Printf)
	worktree, err := svc.TopLevel(ctx)
	if err != nil {
		return err
	}

	extraArgs := cmd.Args().Slice()
	if !cmd.Bool("watch") {
		return printTree(ctx, svc, styler, extraArgs, os.Stdout, 0)
	}
	return watchLoop(ctx, svc, styler, extraArgs, worktree)
}

func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printTree runs the whole pipeline once: fetch status lines, parse
// them (skipping malformed lines), build the tree and write the
// rendered lines. A file/directory conflict or a failed git invocation
// aborts with an error before any line is written.
func printTree(ctx context.Context, source statusSource, styler *tree.Styler, extraArgs []string, w io.Writer, width int) error {
	lines, err := source.StatusLines(ctx, extraArgs)
	if err != nil {
		return err
	}

	records, skipped := status.ParseLines(lines)
	if skipped > 0 {
		log.Printf("skipped %d malformed status line(s)", skipped)
	}

	root := tree.Root()
	for _, rec := range records {
		if err := root.Insert(rec); err != nil {
			return err
		}
	}

	for _, line := range tree.Render(root) {
		text := styler.Format(line)
		if width > 0 {
			text = truncate.String(text, uint(width)) //nolint:gosec
		}
		fmt.Fprintln(w, text)
	}
	return nil
}

// watchLoop repaints the tree whenever the repository changes, until
// interrupted. Each repaint re-runs the same one-shot pipeline.
func watchLoop(ctx context.Context, svc *git.Service, styler *tree.Styler, extraArgs []string, worktree string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.New(log.Printf)
	if err != nil {
		return err
	}
	defer watcher.Close()

	commonDir, err := svc.CommonDir(ctx)
	if err != nil {
		return err
	}
	if err := watcher.Start(worktree, commonDir); err != nil {
		return err
	}

	for {
		if err := repaint(ctx, svc, styler, extraArgs); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Events():
			settle(ctx, watcher.Events())
		}
	}
}

func repaint(ctx context.Context, svc *git.Service, styler *tree.Styler, extraArgs []string) error {
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	fmt.Print("\033[H\033[2J")
	return printTree(ctx, svc, styler, extraArgs, os.Stdout, width)
}

// settle waits for the event burst to quiet down before repainting;
// git operations touch many files back to back.
func settle(ctx context.Context, events <-chan struct{}) {
	timer := time.NewTimer(watch.Debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(watch.Debounce)
		case <-timer.C:
			return
		}
	}
}

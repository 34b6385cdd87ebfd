// Package git shells out to the git binary and hands its status output
// to the rest of the pipeline. It is the only place the process
// environment is touched.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookupPath is used to find the git executable in PATH. It's exposed
// as a package variable so tests can mock it and avoid depending on
// system binaries being installed.
var LookupPath = exec.LookPath

// InvocationError reports that git could not be invoked or exited with
// an unexpected status. Fatal: no partial tree is rendered.
type InvocationError struct {
	Args   []string
	Detail string
	Err    error
}

func (e *InvocationError) Error() string {
	command := "git " + strings.Join(e.Args, " ")
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", command, e.Detail)
	}
	return fmt.Sprintf("%s: %v", command, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Service runs git commands for one invocation of the tool.
type Service struct {
	dir  string
	logf func(string, ...any)
}

// NewService constructs a Service. logf receives debug traces of every
// command run.
func NewService(logf func(string, ...any)) *Service {
	return &Service{logf: logf}
}

// SetDir overrides the working directory used for git commands.
// Primarily for tests; an empty value means the process cwd.
func (s *Service) SetDir(dir string) {
	s.dir = dir
}

// StatusLines runs git status --porcelain, forwarding any extra
// arguments (pathspecs, --ignored, ...), and returns its non-empty
// output lines.
func (s *Service) StatusLines(ctx context.Context, extraArgs []string) ([]string, error) {
	args := append([]string{"status", "--porcelain"}, extraArgs...)
	out, err := s.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// TopLevel returns the repository root, searching parent directories
// the way git itself does. Outside a repository it fails with an
// InvocationError carrying git's own message.
func (s *Service) TopLevel(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommonDir returns the absolute git common directory, used by watch
// mode to observe index and ref updates.
func (s *Service) CommonDir(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	commonDir := strings.TrimSpace(out)
	if filepath.IsAbs(commonDir) {
		return commonDir, nil
	}

	top, err := s.TopLevel(ctx)
	if err != nil {
		return "", err
	}
	return resolveCommonDir(commonDir, top), nil
}

// resolveCommonDir anchors a relative common dir to the repository
// root.
func resolveCommonDir(commonDir, topLevel string) string {
	if commonDir == "" || filepath.IsAbs(commonDir) {
		return commonDir
	}
	return filepath.Join(topLevel, commonDir)
}

func (s *Service) run(ctx context.Context, args ...string) (string, error) {
	s.debugf("run: git %s (cwd=%s)", strings.Join(args, " "), s.dir)

	if _, err := LookupPath("git"); err != nil {
		return "", &InvocationError{Args: args, Detail: "git not found in PATH", Err: err}
	}

	// #nosec G204 -- arguments are built from internal logic plus the
	// user's own command line and are not shell interpolated
	cmd := exec.CommandContext(ctx, "git", args...)
	if s.dir != "" {
		cmd.Dir = s.dir
	}

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail == "" {
				detail = fmt.Sprintf("exit status %d", exitErr.ExitCode())
			}
			s.debugf("error: git %s: %s", strings.Join(args, " "), detail)
			return "", &InvocationError{Args: args, Detail: detail, Err: err}
		}
		s.debugf("error: git %s: %v", strings.Join(args, " "), err)
		return "", &InvocationError{Args: args, Err: err}
	}

	s.debugf("ok: git %s", strings.Join(args, " "))
	return string(out), nil
}

func (s *Service) debugf(format string, args ...any) {
	if s.logf == nil {
		return
	}
	s.logf(format, args...)
}

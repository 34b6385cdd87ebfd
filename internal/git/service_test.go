package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationErrorMessage(t *testing.T) {
	err := &InvocationError{
		Args:   []string{"status", "--porcelain"},
		Detail: "fatal: not a git repository",
		Err:    errors.New("exit status 128"),
	}
	assert.Equal(t, "git status --porcelain: fatal: not a git repository", err.Error())
}

func TestInvocationErrorMessageWithoutDetail(t *testing.T) {
	wrapped := errors.New("executable file not found")
	err := &InvocationError{Args: []string{"status"}, Err: wrapped}

	assert.Contains(t, err.Error(), "git status")
	assert.ErrorIs(t, err, wrapped)
}

func TestRunGitMissing(t *testing.T) {
	orig := LookupPath
	LookupPath = func(string) (string, error) {
		return "", errors.New("not found")
	}
	defer func() { LookupPath = orig }()

	svc := NewService(nil)
	_, err := svc.StatusLines(context.Background(), nil)

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Contains(t, invErr.Error(), "git not found in PATH")
}

func TestResolveCommonDir(t *testing.T) {
	tests := []struct {
		name      string
		commonDir string
		topLevel  string
		want      string
	}{
		{
			name:      "relative is anchored to top level",
			commonDir: ".git",
			topLevel:  "/repo",
			want:      filepath.Join("/repo", ".git"),
		},
		{
			name:      "absolute passes through",
			commonDir: "/repo/.git",
			topLevel:  "/elsewhere",
			want:      "/repo/.git",
		},
		{
			name:      "empty passes through",
			commonDir: "",
			topLevel:  "/repo",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCommonDir(tt.commonDir, tt.topLevel))
		})
	}
}

// End-to-end against a real git binary when one is available.
func TestStatusLinesIntegration(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	ctx := context.Background()
	dir := t.TempDir()

	svc := NewService(t.Logf)
	svc.SetDir(dir)

	out, err := exec.Command("git", "-C", dir, "init").CombinedOutput()
	require.NoError(t, err, string(out))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi\n"), 0o600))

	lines, err := svc.StatusLines(ctx, nil)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "?? hello.txt", lines[0])

	top, err := svc.TopLevel(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, top)

	commonDir, err := svc.CommonDir(ctx)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(commonDir))
}

func TestStatusLinesOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	svc := NewService(nil)
	svc.SetDir(t.TempDir())

	_, err := svc.StatusLines(context.Background(), nil)

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
}

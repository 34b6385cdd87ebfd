package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintfWithoutFileIsDropped(t *testing.T) {
	require.NoError(t, SetFile(""))
	Printf("dropped %d", 1)
	require.NoError(t, Close())
}

func TestSetFileAndPrintf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	defer func() { require.NoError(t, Close()) }()

	Printf("hello %s", "world")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello world")
}

func TestSetFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, SetFile(path))
	Printf("first")
	require.NoError(t, Close())

	require.NoError(t, SetFile(path))
	Printf("second")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestSetFileBadPath(t *testing.T) {
	err := SetFile(filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
	Printf("still safe")
	require.NoError(t, Close())
}

// Package log provides the optional debug log. Messages are dropped
// until SetFile points them at a file.
package log

import (
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	file   *os.File
	logger *log.Logger
)

// SetFile directs debug output to the given path, creating the file if
// needed and appending otherwise. An empty path disables logging.
func SetFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
		file = nil
		logger = nil
	}

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		return err
	}

	file = f
	logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// Printf writes a formatted debug message when a log file is set.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}

// Close closes the debug log file if open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}

	err := file.Close()
	file = nil
	logger = nil
	return err
}

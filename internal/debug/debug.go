// Package debug is the opt-in diagnostic log for tagfield.
// Nothing is written unless Init(true) runs at startup; the log lives at
// ~/.tagfield/debug.log by default and is truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the directory under the user's home holding the log.
	LogDirName = ".tagfield"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *log.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Option adjusts Init.
type Option func(*settings)

type settings struct {
	path string
}

// WithPath writes the log to path instead of ~/.tagfield/debug.log.
func WithPath(path string) Option {
	return func(s *settings) {
		s.path = strings.TrimSpace(path)
	}
}

// Init turns debug logging on or off. When disabled every logging call is a
// no-op; when enabled the log file is created or truncated.
func Init(enable bool, opts ...Option) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	enabled = enable
	if !enable {
		logger = log.New(io.Discard, "", 0)
		return nil
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	logPath := s.path
	if logPath == "" {
		p, err := getLogPath()
		if err != nil {
			enabled = false
			return fmt.Errorf("determine log path: %w", err)
		}
		logPath = p
	}

	//nolint:gosec // G301: log directory lives under the user's home
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		enabled = false
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: log path comes from the user's own config
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	logger.Printf("=== tagfield debug log started at %s ===", time.Now().Format(time.RFC3339))
	return nil
}

// Close closes the log file if one is open. Safe when logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a message in the manner of fmt.Print when logging is enabled.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Print(v...)
}

// Logf writes a message in the manner of fmt.Printf when logging is enabled.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, v...)
}

// Scope prefixes every line with a component name, e.g. "[chip] ...".
type Scope string

// Logf writes a prefixed formatted message.
func (s Scope) Logf(format string, v ...any) {
	Logf("["+string(s)+"] "+format, v...)
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the default debug log location.
func GetLogPath() (string, error) {
	return getLogPath()
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	enabled = false
	logger = nil
}

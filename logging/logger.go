// Package logging builds the structured JSON logger shared by the camera, systems, and CLI.
// With no directory configured all output is discarded so the terminal UI is never corrupted.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	LogFileName = "edgecam.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Log levels accepted by ParseLevel
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// ParseLevel converts a level name to slog.Level, unknown names map to INFO
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level names one of the known levels
func ValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

// New returns a JSON logger writing to {dir}/edgecam.log and a closer for the file
// An empty dir yields a logger over io.Discard and a no-op closer
func New(dir, level string) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if dir == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), nopCloser{}, nil
	}

	w, err := NewRotatingWriter(filepath.Join(dir, LogFileName), MaxLogSize)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(w, opts)), w, nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RotatingWriter appends to a file and moves it to path.1 once it would exceed maxSize
type RotatingWriter struct {
	mu      sync.Mutex
	path    string
	maxSize int64
	file    *os.File
	size    int64

	rotateErr error
}

// NewRotatingWriter opens path for append, rotating first if the existing file is already oversized
func NewRotatingWriter(path string, maxSize int64) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	w := &RotatingWriter{path: path, maxSize: maxSize}
	if info, err := os.Stat(path); err == nil && maxSize > 0 && info.Size() > maxSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotatingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	w.file = f
	w.size = info.Size()
	return nil
}

func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, fmt.Errorf("log file closed")
	}

	if w.maxSize > 0 && w.size > 0 && w.size+int64(len(p)) > w.maxSize {
		// Keep writing to the current file when rotation fails; stderr may be a live terminal
		if err := w.rotate(); err != nil {
			w.rotateErr = err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// rotate caller holds mu
func (w *RotatingWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return err
	}
	w.file = nil
	renameErr := os.Rename(w.path, w.path+".1")
	if err := w.open(); err != nil {
		return err
	}
	return renameErr
}

// RotateErr returns the most recent rotation failure, nil if none occurred
func (w *RotatingWriter) RotateErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rotateErr
}

func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

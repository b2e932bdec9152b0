package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FileName is the active log file inside the log directory. Rotated
// backups carry a timestamp suffix.
const FileName = "fontkeeper.log"

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotating file and, optionally, stderr.
// The returned cleanup closes the file; it is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	if fileCfg.WriteToStderr || !fileCfg.Enabled {
		writers = append(writers, os.Stderr)
	}

	cleanup := func() {}
	if fileCfg.Enabled && fileCfg.LogDir != "" {
		rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
		if err != nil {
			return New(cfg), cleanup, err
		}
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	return NewWithWriter(cfg, io.MultiWriter(writers...)), cleanup, nil
}

// LogRotator is a size-bounded log file writer that keeps a fixed number of backups.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewLogRotator opens (or creates) the log file inside dir.
func NewLogRotator(dir string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &LogRotator{
		dir:        dir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.dir, FileName)
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	backup := r.path() + "." + time.Now().Format("20060102-150405.000")
	if err := os.Rename(r.path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	r.prune()
	return r.open()
}

func (r *LogRotator) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}
	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), FileName+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}
	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the underlying file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ebook-library/core/apperrors"

	"go.uber.org/zap"
)

// File is one candidate book found on disk.
type File struct {
	FilePath      string    `json:"filePath"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	Size          int64     `json:"size"`
	ModifiedTime  time.Time `json:"modifiedTime"`
}

// Result is the output of a scan.
type Result struct {
	Root  string `json:"root"`
	Files []File `json:"files"`
	// Truncated reports that matching files were dropped because MaxFiles was reached.
	Truncated bool `json:"truncated"`
	// DirsSkipped counts directories that could not be read.
	DirsSkipped int `json:"dirsSkipped"`
}

// Scanner walks directory trees collecting supported files.
type Scanner struct {
	cfg        Config
	extensions map[string]struct{}
	excluded   map[string]struct{}
	logger     *zap.Logger
}

// New creates a scanner. Zero config values fall back to the defaults.
func New(cfg Config, logger *zap.Logger) *Scanner {
	cfg = cfg.withDefaults()

	s := &Scanner{
		cfg:        cfg,
		extensions: make(map[string]struct{}, len(cfg.Extensions)),
		excluded:   make(map[string]struct{}, len(cfg.ExcludedDirs)),
		logger:     logger,
	}
	for _, ext := range cfg.Extensions {
		s.extensions[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))] = struct{}{}
	}
	for _, dir := range cfg.ExcludedDirs {
		s.excluded[strings.TrimSpace(dir)] = struct{}{}
	}
	return s
}

// MaxFiles returns the effective cap.
func (s *Scanner) MaxFiles() int {
	return s.cfg.MaxFiles
}

// Supports reports whether ext (with or without dot, any case) is in the allow-list.
func (s *Scanner) Supports(ext string) bool {
	_, ok := s.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

// ResolveRoot validates dirPath and returns its cleaned absolute form.
func ResolveRoot(dirPath string) (string, error) {
	if strings.TrimSpace(dirPath) == "" {
		return "", apperrors.Validation("Invalid directory path")
	}
	abs, err := filepath.Abs(dirPath)
	if err != nil {
		return "", apperrors.Validation("Invalid directory path").WithCause(err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", apperrors.Validation("Invalid directory path").WithCause(err)
	}
	if !info.IsDir() {
		return "", apperrors.Validationf("Invalid directory path: %s is not a directory", abs)
	}
	return abs, nil
}

// frame is one directory on the walk stack.
type frame struct {
	dir     string
	entries []os.DirEntry
	next    int
}

// Scan walks root depth-first in pre-order and returns up to MaxFiles supported files.
// Unreadable directories and entries are skipped; cancellation of ctx aborts the walk.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	root, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root, Files: []File{}}
	visited := make(map[string]struct{})
	var stack []*frame

	push := func(dir string) {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			s.logger.Warn("Failed to resolve directory", zap.String("dir", dir), zap.Error(err))
			res.DirsSkipped++
			return
		}
		if _, seen := visited[resolved]; seen {
			s.logger.Debug("Skipping already visited directory", zap.String("dir", dir), zap.String("resolved", resolved))
			return
		}
		visited[resolved] = struct{}{}

		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Warn("Failed to read directory", zap.String("dir", dir), zap.Error(err))
			res.DirsSkipped++
			return
		}
		stack = append(stack, &frame{dir: dir, entries: entries})
	}

	push(root)

walk:
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}

		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(top.dir, name)
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Debug("Skipping unreadable entry", zap.String("path", path), zap.Error(err))
			continue
		}

		if info.IsDir() {
			if _, skip := s.excluded[name]; !skip {
				push(path)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if _, ok := s.extensions[ext]; !ok {
			continue
		}

		if len(res.Files) >= s.cfg.MaxFiles {
			res.Truncated = true
			break walk
		}
		res.Files = append(res.Files, File{
			FilePath:      path,
			FileName:      name,
			FileExtension: ext,
			Size:          info.Size(),
			ModifiedTime:  info.ModTime(),
		})
	}

	if res.Truncated {
		s.logger.Warn("Scan reached file cap", zap.String("root", root), zap.Int("max_files", s.cfg.MaxFiles))
	}
	return res, nil
}

// CountByExtension tallies the extensions of files.
func CountByExtension(files []File) map[string]int64 {
	counts := make(map[string]int64)
	for _, f := range files {
		counts[f.FileExtension]++
	}
	return counts
}

// Package scanner walks directory trees and renders them as box-drawing tree
// lines, with optional size annotations, depth limits and cooperative
// cancellation.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"foldertree/internal/config"
	"foldertree/internal/renderer"
)

var (
	// ErrInvalidPath reports a root that does not exist or is not a
	// directory. It is returned before any traversal starts.
	ErrInvalidPath = errors.New("invalid folder path")

	// ErrCancelled reports a scan stopped by cooperative cancellation.
	ErrCancelled = errors.New("scan cancelled")
)

const (
	accessDeniedLabel = "[Access Denied]"
	sizeErrorLabel    = "size error"

	// Hard recursion cap guarding against runaway nesting (mostly symlink
	// loops), independent of the caller's MaxDepth.
	depthCap = 50
)

// Result contains the outcome of a completed directory scan.
type Result struct {
	RootPath  string
	Lines     []string
	ItemCount int
	Generated time.Time
}

// Report returns the headered report text used for display and export.
func (r *Result) Report() string {
	return renderer.Report(r.RootPath, r.Generated, r.Lines)
}

// FileSystemScanner defines the interface for scanning file systems.
type FileSystemScanner interface {
	ScanDirectory(ctx context.Context, path string, opts config.Options) (*Result, error)
}

// TreeScanner implements FileSystemScanner with a strictly sequential
// depth-first walk, which is what guarantees deterministic line ordering.
type TreeScanner struct{}

// NewTreeScanner creates a new TreeScanner.
func NewTreeScanner() *TreeScanner {
	return &TreeScanner{}
}

// ScanDirectory validates path and walks it recursively, producing one
// rendered line per entry. Permission failures inside the tree are recorded
// as placeholder lines and do not abort the scan; cancellation unwinds the
// walk and returns ErrCancelled.
func (s *TreeScanner) ScanDirectory(ctx context.Context, path string, opts config.Options) (*Result, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidPath, path)
	}

	var lines []string
	if err := s.scanDir(ctx, path, &lines, "", 0, opts); err != nil {
		return nil, err
	}

	return &Result{
		RootPath:  path,
		Lines:     lines,
		ItemCount: len(lines),
		Generated: time.Now(),
	}, nil
}

// scanDir emits the rendered lines for one directory level and recurses into
// subdirectories. Depth 0 corresponds to the root's direct children.
func (s *TreeScanner) scanDir(ctx context.Context, path string, lines *[]string, prefix string, depth int, opts config.Options) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}

	if opts.MaxDepth >= 0 && depth > opts.MaxDepth {
		return nil
	}
	if depth > depthCap {
		log.Printf("Warning: stopping scan at depth %d for path %s", depth, path)
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		// Local recovery: record a placeholder under this prefix and let
		// the parent scan continue.
		if os.IsPermission(err) {
			*lines = append(*lines, prefix+renderer.Branch+" "+accessDeniedLabel)
		} else {
			*lines = append(*lines, fmt.Sprintf("%s%s [Error: %v]", prefix, renderer.Branch, err))
		}
		return nil
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else if opts.IncludeFiles {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	for i, name := range dirs {
		if ctx.Err() != nil {
			return ErrCancelled
		}

		// The last directory is a terminal branch only when no files
		// follow it at this level.
		isLast := i == len(dirs)-1 && len(files) == 0
		childPath := filepath.Join(path, name)

		var sizeLabel string
		if opts.ShowSize {
			sizeLabel = s.dirSizeLabel(ctx, childPath, opts.SizeUnit)
		}

		*lines = append(*lines, renderer.Line(prefix, isLast, name, true, sizeLabel))

		if err := s.scanDir(ctx, childPath, lines, renderer.ChildPrefix(prefix, isLast), depth+1, opts); err != nil {
			return err
		}
	}

	for i, name := range files {
		if ctx.Err() != nil {
			return ErrCancelled
		}

		isLast := i == len(files)-1

		var sizeLabel string
		if opts.ShowSize {
			sizeLabel = s.fileSizeLabel(filepath.Join(path, name), opts.SizeUnit)
		}

		*lines = append(*lines, renderer.Line(prefix, isLast, name, false, sizeLabel))
	}

	return nil
}

// dirSizeLabel formats the recursive size of a directory, falling back to the
// sentinel marker when the computation fails.
func (s *TreeScanner) dirSizeLabel(ctx context.Context, path string, unit config.SizeUnit) string {
	size, err := DirSize(ctx, path)
	if err != nil {
		return sizeErrorLabel
	}
	return FormatSize(size, unit)
}

// fileSizeLabel formats a file's byte length, falling back to the sentinel
// marker when the file cannot be stat'ed.
func (s *TreeScanner) fileSizeLabel(path string, unit config.SizeUnit) string {
	info, err := os.Stat(path)
	if err != nil {
		return sizeErrorLabel
	}
	return FormatSize(info.Size(), unit)
}

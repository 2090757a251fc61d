package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foldertree/internal/config"
)

// State identifies the lifecycle phase of a FolderScanner.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCancelling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// FolderScanner runs scans on a background goroutine so a long walk never
// blocks the caller, reporting outcomes through callbacks. At most one scan
// is in flight: starting a new one cancels a running scan and waits for it
// to fully unwind first.
type FolderScanner struct {
	scanner  FileSystemScanner
	callback func(*Result)
	status   func(string)

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// NewFolderScanner creates a FolderScanner. callback receives the result of
// each completed scan; status receives progress and outcome messages. Either
// may be nil.
func NewFolderScanner(callback func(*Result), status func(string)) *FolderScanner {
	return &FolderScanner{
		scanner:  NewTreeScanner(),
		callback: callback,
		status:   status,
	}
}

// State returns the current lifecycle state.
func (f *FolderScanner) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Scan starts scanning path in the background. A scan already in flight is
// cancelled and fully unwound before the new one begins.
func (f *FolderScanner) Scan(path string, opts config.Options) {
	f.mu.Lock()
	for f.state != StateIdle {
		f.state = StateCancelling
		f.cancel()
		done := f.done
		f.mu.Unlock()
		<-done
		f.mu.Lock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	f.cancel = cancel
	f.done = done
	f.state = StateRunning
	f.mu.Unlock()

	go f.run(ctx, cancel, done, path, opts)
}

// Stop requests cancellation of the scan in flight and reports whether one
// was active. It does not wait for the walk to unwind; use Wait for that.
func (f *FolderScanner) Stop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateRunning {
		return false
	}
	f.state = StateCancelling
	f.cancel()
	return true
}

// Wait blocks until the scan in flight, if any, has unwound and its
// callbacks have fired.
func (f *FolderScanner) Wait() {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (f *FolderScanner) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, path string, opts config.Options) {
	defer close(done)
	defer cancel()

	f.report("Scanning folder structure...")
	result, err := f.scanner.ScanDirectory(ctx, path, opts)

	switch {
	case errors.Is(err, ErrCancelled):
		f.report("Scan cancelled")
	case err != nil:
		f.report(fmt.Sprintf("Error: %v", err))
	default:
		if f.callback != nil {
			f.callback(result)
		}
		f.report(fmt.Sprintf("Scan complete. Found %d items.", result.ItemCount))
	}

	// The scan counts as unwound only once its callbacks have returned;
	// the Idle transition must not precede them or a restart could begin
	// with a stale delivery still pending.
	f.mu.Lock()
	f.state = StateIdle
	f.mu.Unlock()
}

func (f *FolderScanner) report(message string) {
	if f.status != nil {
		f.status(message)
	}
}

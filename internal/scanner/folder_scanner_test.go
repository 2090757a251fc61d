package scanner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foldertree/internal/config"
)

// stubScanner blocks until its context is cancelled, recording each call.
type stubScanner struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	block   bool
}

func (s *stubScanner) ScanDirectory(ctx context.Context, path string, opts config.Options) (*Result, error) {
	s.mu.Lock()
	s.calls++
	calls := s.calls
	s.mu.Unlock()

	select {
	case s.started <- struct{}{}:
	default:
	}

	if s.block && calls == 1 {
		<-ctx.Done()
		return nil, ErrCancelled
	}
	return &Result{RootPath: path, Lines: []string{"└── stub"}, ItemCount: 1, Generated: time.Now()}, nil
}

func (s *stubScanner) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// statusRecorder collects status callback messages safely.
type statusRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *statusRecorder) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *statusRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func TestFolderScannerCompletes(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", 1)
	writeFile(t, tmp, "b.txt", 1)

	var (
		mu     sync.Mutex
		result *Result
	)
	statuses := &statusRecorder{}

	fs := NewFolderScanner(func(r *Result) {
		mu.Lock()
		defer mu.Unlock()
		result = r
	}, statuses.record)

	fs.Scan(tmp, config.DefaultOptions())
	fs.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, result)
	assert.Equal(t, 2, result.ItemCount)
	assert.Equal(t, "Scan complete. Found 2 items.", statuses.last())
	assert.Equal(t, StateIdle, fs.State())
}

func TestFolderScannerInvalidPathReportsError(t *testing.T) {
	statuses := &statusRecorder{}
	fs := NewFolderScanner(nil, statuses.record)

	fs.Scan("/definitely/not/a/real/path", config.DefaultOptions())
	fs.Wait()

	assert.Contains(t, statuses.last(), "Error: ")
	assert.Equal(t, StateIdle, fs.State())
}

func TestFolderScannerStop(t *testing.T) {
	stub := &stubScanner{started: make(chan struct{}, 1), block: true}
	statuses := &statusRecorder{}
	fs := &FolderScanner{scanner: stub, status: statuses.record}

	fs.Scan("/stub", config.DefaultOptions())
	<-stub.started

	require.True(t, fs.Stop())
	fs.Wait()

	assert.Equal(t, "Scan cancelled", statuses.last())
	assert.Equal(t, StateIdle, fs.State())
	assert.False(t, fs.Stop(), "Stop with no scan in flight should report false")
}

func TestFolderScannerRestartCancelsPriorScan(t *testing.T) {
	stub := &stubScanner{started: make(chan struct{}, 1), block: true}
	statuses := &statusRecorder{}

	var (
		mu     sync.Mutex
		result *Result
	)
	fs := &FolderScanner{
		scanner: stub,
		callback: func(r *Result) {
			mu.Lock()
			defer mu.Unlock()
			result = r
		},
		status: statuses.record,
	}

	fs.Scan("/first", config.DefaultOptions())
	<-stub.started

	// Restart while the first scan is blocked: it must be cancelled and
	// unwound before the second begins.
	fs.Scan("/second", config.DefaultOptions())
	fs.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, stub.callCount())
	require.NotNil(t, result)
	assert.Equal(t, "/second", result.RootPath)
	assert.Equal(t, StateIdle, fs.State())
}

func TestFolderScannerRestartWaitsForPendingCallbacks(t *testing.T) {
	stub := &stubScanner{started: make(chan struct{}, 1)}
	gate := make(chan struct{})
	entered := make(chan struct{})

	var (
		mu        sync.Mutex
		delivered []string
	)
	fs := &FolderScanner{scanner: stub}
	fs.callback = func(r *Result) {
		if r.RootPath == "/first" {
			close(entered)
			<-gate
		}
		mu.Lock()
		delivered = append(delivered, r.RootPath)
		mu.Unlock()
	}

	fs.Scan("/first", config.DefaultOptions())
	<-entered

	restarted := make(chan struct{})
	go func() {
		fs.Scan("/second", config.DefaultOptions())
		close(restarted)
	}()

	// The first scan has not fully unwound while its result callback is
	// still pending, so the restart must not begin.
	select {
	case <-restarted:
		t.Fatal("restart began while the prior scan's callback was still pending")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, 1, stub.callCount())

	close(gate)
	<-restarted
	fs.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, stub.callCount())
	assert.Equal(t, []string{"/first", "/second"}, delivered)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "cancelling", StateCancelling.String())
}

// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hashicorp/go-hclog"
)

// DefaultTimeout bounds a single clipboard write.
const DefaultTimeout = 3 * time.Second

// Writer copies text. Copy reports success; failures are never returned.
type Writer interface {
	Copy(ctx context.Context, text string) bool
}

// System writes to the OS clipboard.
type System struct {
	timeout time.Duration
	logger  hclog.Logger
	write   func(string) error
}

// NewSystem returns a Writer for the OS clipboard.
func NewSystem(timeout time.Duration, logger hclog.Logger) *System {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &System{timeout: timeout, logger: logger, write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy writes text, giving up after the configured timeout or when ctx ends.
func (s *System) Copy(ctx context.Context, text string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.write(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Warn("copy failed", "error", err)
			return false
		}
		s.logger.Debug("copied to clipboard", "bytes", len(text))
		return true
	case <-ctx.Done():
		s.logger.Warn("copy failed", "error", ctx.Err())
		return false
	}
}

// Memory records copies in memory.
type Memory struct {
	mu   sync.Mutex
	last string
	n    int
	// Fail makes every Copy report false.
	Fail bool
}

// Copy stores text unless Fail is set.
func (m *Memory) Copy(_ context.Context, text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return false
	}
	m.last = text
	m.n++
	return true
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Count returns the number of successful copies.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Disabled never copies.
type Disabled struct{}

// Copy always reports false.
func (Disabled) Copy(context.Context, string) bool {
	return false
}

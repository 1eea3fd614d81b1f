package session

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// Swapped out in tests.
var (
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
	clipboardWriteAll    = clipboard.WriteAll
)

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteText copies text to the system clipboard. The external clipboard
// utility can hang, so the call returns when ctx is done; the utility is
// left to finish on its own.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboardUnsupported() {
		return errors.New("no clipboard utility found")
	}

	write := clipboardWriteAll
	done := make(chan error, 1)
	go func() {
		done <- write(text)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MemoryClipboard keeps the last written text in memory.
// It backs headless environments and tests.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	Err  error
}

// WriteText stores text, or returns Err when set.
func (m *MemoryClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Package utils holds small helpers shared by the CLI.
package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter buffers log output while the terminal is owned by the TUI
// and replays it line by line once the program exits.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush writes every buffered line to out, one Write per line, and resets
// the buffer. zerolog.ConsoleWriter expects exactly one JSON event per Write.
func (w *DeferredWriter) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for {
		line, err := w.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := out.Write(line); werr != nil {
				return fmt.Errorf("flush deferred logs: %w", werr)
			}
		}
		if err != nil {
			break
		}
	}

	w.buf.Reset()
	return nil
}

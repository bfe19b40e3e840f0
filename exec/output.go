package exec

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter fans a write out to several writers under one lock so that
// stdout and stderr interleave cleanly in the combined capture.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

func (mw *multiWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// capture is a goroutine-safe buffer.
type capture struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func newCapture() *capture {
	return &capture{}
}

func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

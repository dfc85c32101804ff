package hooks

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// prefixWriter writes complete lines to target, each preceded by prefix.
// Writers sharing mu never interleave within a line.
type prefixWriter struct {
	prefix string
	target io.Writer
	mu     *sync.Mutex
	buf    bytes.Buffer
}

func newPrefixWriter(prefix string, target io.Writer, mu *sync.Mutex) *prefixWriter {
	return &prefixWriter{prefix: prefix, target: target, mu: mu}
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	n, _ := w.buf.Write(p)

	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			return n, nil
		}
		line := string(w.buf.Next(i + 1))
		if err := w.emit(line); err != nil {
			return n, err
		}
	}
}

// Flush writes a trailing partial line, terminated with a newline.
func (w *prefixWriter) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	line := w.buf.String() + "\n"
	w.buf.Reset()
	return w.emit(line)
}

func (w *prefixWriter) emit(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.target, "%s %s", w.prefix, line)
	return err
}

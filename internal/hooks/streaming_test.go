package hooks

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write error")
}

func Test_prefixWriter(t *testing.T) {
	tests := []struct {
		name   string
		writes []string
		before string // after writes, before Flush
		after  string
	}{
		{"complete line", []string{"line\n"}, "> line\n", "> line\n"},
		{"several lines in one write", []string{"a\nb\n"}, "> a\n> b\n", "> a\n> b\n"},
		{"partial line waits for flush", []string{"partial"}, "", "> partial\n"},
		{"line split across writes", []string{"hel", "lo\n"}, "> hello\n", "> hello\n"},
		{"complete then partial", []string{"a\nb"}, "> a\n", "> a\n> b\n"},
		{"nothing written", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pw := newPrefixWriter(">", &buf, &sync.Mutex{})

			for _, w := range tt.writes {
				if _, err := pw.Write([]byte(w)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if buf.String() != tt.before {
				t.Errorf("before flush: expected %q, got %q", tt.before, buf.String())
			}

			if err := pw.Flush(); err != nil {
				t.Fatalf("flush error: %v", err)
			}
			_ = pw.Flush()
			if buf.String() != tt.after {
				t.Errorf("after flush: expected %q, got %q", tt.after, buf.String())
			}
		})
	}
}

func Test_prefixWriterTargetErrors(t *testing.T) {
	pw := newPrefixWriter(">", failingWriter{}, &sync.Mutex{})

	n, err := pw.Write([]byte("line\n"))
	if err == nil || err.Error() != "write error" {
		t.Errorf("expected write error, got %v", err)
	}
	if n != 5 {
		t.Errorf("expected n=5, got %d", n)
	}

	pw = newPrefixWriter(">", failingWriter{}, &sync.Mutex{})
	if _, err := pw.Write([]byte("partial")); err != nil {
		t.Fatalf("unexpected error on write: %v", err)
	}
	if err := pw.Flush(); err == nil {
		t.Error("expected error from flush")
	}
}

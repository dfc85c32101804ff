package testutil

import (
	"bytes"
	"testing"

	"github.com/sqve/arbor/internal/config"
	"github.com/sqve/arbor/internal/logger"
)

// Plain switches output to plain mode for the duration of the test.
func Plain(t *testing.T) {
	t.Helper()
	prev := config.Global.Plain
	config.Global.Plain = true
	t.Cleanup(func() { config.Global.Plain = prev })
}

// Output is a Printer writing into buffers.
type Output struct {
	*logger.Printer
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}

// NewOutput returns a plain-mode Printer capturing both streams.
func NewOutput(t *testing.T) *Output {
	t.Helper()
	Plain(t)
	var stdout, stderr bytes.Buffer
	return &Output{Printer: logger.NewPrinter(&stdout, &stderr), Stdout: &stdout, Stderr: &stderr}
}

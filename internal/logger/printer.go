package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sqve/arbor/internal/config"
	"github.com/sqve/arbor/internal/styles"
)

// Printer writes user-facing output. Results go to Out; progress, warnings
// and errors go to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut}
}

// Stdio returns a Printer on the process's standard streams.
func Stdio() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

// Success prints success messages
func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if config.IsPlain() {
		_, _ = fmt.Fprintln(p.Out, msg)
		return
	}
	_, _ = fmt.Fprintln(p.Out, styles.Render(&styles.Success, "✓ ")+msg)
}

// Info prints a plain result line.
func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(p.Out, format+"\n", args...)
}

// Progress prints an intermediate step to Err.
func (p *Printer) Progress(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Err, styles.Render(&styles.Dimmed, fmt.Sprintf(format, args...)))
}

func (p *Printer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if config.IsPlain() {
		_, _ = fmt.Fprintln(p.Err, "Warning: "+msg)
		return
	}
	_, _ = fmt.Fprintln(p.Err, styles.Render(&styles.Warning, "⚠ Warning: ")+msg)
}

// Error prints error messages to Err
func (p *Printer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if config.IsPlain() {
		_, _ = fmt.Fprintln(p.Err, "Error: "+msg)
		return
	}
	_, _ = fmt.Fprintln(p.Err, styles.Render(&styles.Error, "✗ Error: ")+msg)
}

// Debug prints debug information when debug mode is enabled
func (p *Printer) Debug(format string, args ...any) {
	if config.IsDebug() {
		_, _ = fmt.Fprintf(p.Err, "[DEBUG] "+format+"\n", args...)
	}
}

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config selects level, format and destination of diagnostic logs.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json, logfmt
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// Logger writes structured diagnostics. It is separate from the Printer,
// which produces the output users read.
type Logger struct {
	*log.Logger
}

func New(cfg Config) *Logger {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.WarnLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	formatter := log.TextFormatter
	switch strings.ToLower(cfg.Format) {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return &Logger{Logger: log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}

func (l *Logger) WithOperation(operation string) *Logger {
	return &Logger{Logger: l.Logger.With("operation", operation)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With("error", err)}
}

// Command records an external command about to run.
func (l *Logger) Command(name string, args []string, attrs ...any) {
	l.Debug("exec", append([]any{"cmd", name, "args", strings.Join(args, " ")}, attrs...)...)
}

// Result records how an external command finished.
func (l *Logger) Result(name string, exitCode int, output string, attrs ...any) {
	kv := append([]any{"cmd", name, "exit", exitCode}, attrs...)
	if output = strings.TrimSpace(output); output != "" {
		kv = append(kv, "output", truncate(output, 200))
	}
	if exitCode != 0 {
		l.Info("exec failed", kv...)
		return
	}
	l.Debug("exec done", kv...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace

	// runtime.Callers, output, and the exported function
	calldepth = 3

	timeFormat = "15:04:05.000"
)

// slogTrace is the slog level used for trace messages
const slogTrace = slog.LevelDebug - 4

var (
	level   atomic.Int32
	handler atomic.Pointer[slog.Handler]
)

func init() {
	level.Store(int32(LevelError))
	SetOutput(io.Discard)
}

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level.Store(int32(l))
}

// Level returns the current level
func Level() int {
	return int(level.Load())
}

// ParseLevel converts a level name to its value
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return 0, fmt.Errorf("invalid log level %q", s)
}

// SetOutput sends log lines to w. Colors are enabled when w is a terminal
func SetOutput(w io.Writer) {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	var h slog.Handler = tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      slogTrace,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	})
	handler.Store(&h)
}

// Logger returns a slog.Logger writing to the current output. Its records are
// not filtered by the package level
func Logger() *slog.Logger {
	return slog.New(*handler.Load())
}

func fmtMessage(message string, args ...any) string {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return message
}

func output(l slog.Level, format string, args ...any) {
	var pcs [1]uintptr
	runtime.Callers(calldepth, pcs[:])
	r := slog.NewRecord(time.Now(), l, fmtMessage(format, args...), pcs[0])
	_ = (*handler.Load()).Handle(context.Background(), r)
}

func Trace(format string, args ...any) {
	if Level() < LevelTrace {
		return
	}
	output(slogTrace, format, args...)
}

func Debug(format string, args ...any) {
	if Level() < LevelDebug {
		return
	}
	output(slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	if Level() < LevelInfo {
		return
	}
	output(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	if Level() < LevelWarn {
		return
	}
	output(slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	if Level() < LevelError {
		return
	}
	output(slog.LevelError, format, args...)
}

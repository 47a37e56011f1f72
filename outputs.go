package lgr

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterSink returns a sink writing each message plus '\n' to w. Write errors
// are reported to fallback (nothing is reported when fallback is nil).
func WriterSink(w io.Writer, fallback io.Writer) Sink {
	if w == nil {
		return DiscardSink
	}
	return func(s string) {
		n, err := io.WriteString(w, s+"\n")
		if err != nil && fallback != nil {
			io.WriteString(fallback, "error writing log to output ("+strconv.Itoa(n)+" bytes written): "+err.Error()+"\n")
		}
	}
}

// ConsoleSinks routes LVL_FATAL, LVL_ERROR, LVL_WARN and LVL_FORCE_OUTPUT to
// stderr and every other level to stdout. Use the result with WithSinkMap.
func ConsoleSinks(stdout, stderr io.Writer) map[LogLevel]Sink {
	out := WriterSink(stdout, stderr)
	errout := WriterSink(stderr, nil)
	sinks := make(map[LogLevel]Sink, _LEVEL_SLOTS)
	for _, level := range AllLevels() {
		switch level {
		case LVL_OFF:
			continue
		case LVL_FATAL, LVL_ERROR, LVL_WARN, LVL_FORCE_OUTPUT:
			sinks[level] = errout
		default:
			sinks[level] = out
		}
	}
	return sinks
}

// ColorSupported reports whether w is a terminal able to show ANSI colors.
func ColorSupported(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int // megabytes before rotation (lumberjack default 100 when 0)
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// FileSink returns a sink appending to a rotated file and the closer that
// must be called on shutdown. Write errors go to fallback.
func FileSink(cfg FileConfig, fallback io.Writer) (Sink, io.Closer, error) {
	if cfg.Path == "" {
		return nil, nil, &ConfigError{Field: "file.path", Reason: "path is empty"}
	}
	out := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return WriterSink(out, fallback), out, nil
}

// TeeSink writes every message to all non-nil sinks in order.
func TeeSink(sinks ...Sink) Sink {
	list := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			list = append(list, s)
		}
	}
	return func(s string) {
		for _, sink := range list {
			sink(s)
		}
	}
}

// A lightweight, levelled logging dispatch core for Go. Decides for every log
// call whether it is emitted, renders it with a pluggable formatter and hands
// the result to the sink bound to its level.
package lgr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// New creates a logger with default parameters (LVL_INFO threshold, verbose
// off, PlainFormatter, every sink discarding, os.Stderr as fallback) and then
// applies opts (see ApplyConfig).
//
// Preferred usage example:
//
//	logger, err := lgr.New(lgr.WithDefaultSink(lgr.WriterSink(os.Stdout, nil)))
//	if err != nil {
//	    ...
//	}
//	logger.Info("started", "port", 8080)
func New(opts ...Option) (*Logger, error) {
	l := newLogger()
	if err := l.ApplyConfig(opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func newLogger() *Logger {
	return &Logger{
		format:  PlainFormatter,
		fallbck: os.Stderr,
		now:     time.Now,
		level:   DEFAULT_LOG_LEVEL,
	}
}

// Sets the threshold. Only standard levels are accepted.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetLevel(level LogLevel) error {
	if !level.Standard() {
		return &ValidationError{Value: Stringify(level), Reason: _ERROR_MESSAGE_NOT_STANDARD_LEVEL}
	}
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	l.level = level
	return nil
}

// Level returns the current threshold.
func (l *Logger) Level() LogLevel {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return l.level
}

// Switches LVL_VERBOSE output on or off (independent of the threshold).
func (l *Logger) SetVerbose(enabled bool) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	l.verbose = enabled
	return l
}

// VerboseEnabled reports whether LVL_VERBOSE messages are emitted.
func (l *Logger) VerboseEnabled() bool {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return l.verbose
}

// Sets the fallback output used to report internal errors, io.Discard is used
// instead of nil to silently drop fallback messages.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetFallback(f io.Writer) *Logger {
	l.sync.fbckMtx.Lock()
	defer l.sync.fbckMtx.Unlock()
	if f != nil {
		l.fallbck = f
	} else {
		l.fallbck = io.Discard
	}
	return l
}

// Formatter returns the formatter currently in use.
func (l *Logger) Formatter() Formatter {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	if l.format == nil {
		return PlainFormatter
	}
	return l.format
}

// SinkFor returns the sink a message of the given level would be written to.
// Never nil.
func (l *Logger) SinkFor(level LogLevel) Sink {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return l.sinks.Resolve(level)
}

// BindLevelSink sets (or, with a nil sink, removes) the explicit sink of one level.
func (l *Logger) BindLevelSink(level LogLevel, sink Sink) error {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	return l.sinks.Bind(level, sink)
}

// RemoveLevelSink resets a level to the default sink.
func (l *Logger) RemoveLevelSink(level LogLevel) error {
	return l.BindLevelSink(level, nil)
}

// UpdateSinkMap overrides the named levels only. Nothing is changed if any
// level is invalid or any sink is nil.
func (l *Logger) UpdateSinkMap(sinks map[LogLevel]Sink) error {
	return l.ApplyConfig(WithSinkMap(sinks))
}

/////////////////////////////////////////////////////////////////////////////////////////

// ShouldOutput reports whether a message of the given level would be emitted:
//   - LVL_FORCE_OUTPUT: always
//   - LVL_VERBOSE: iff the verbose flag is on, whatever the threshold
//   - LVL_LOG, LVL_DEFAULT: always (rendered without a level tag)
//   - standard levels: iff level <= threshold
//
// Invalid levels are never emitted.
func (l *Logger) ShouldOutput(level LogLevel) bool {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return l.shouldOutput(level)
}

func (l *Logger) shouldOutput(level LogLevel) bool {
	switch level {
	case LVL_FORCE_OUTPUT, LVL_LOG, LVL_DEFAULT:
		return true
	case LVL_VERBOSE:
		return l.verbose
	}
	return level.Standard() && level <= l.level
}

// LogE builds, formats and writes a message. It returns a *ValidationError for
// an invalid level and the formatter error if rendering failed. Suppressed
// messages return nil without building anything.
func (l *Logger) LogE(level LogLevel, msg string, args ...any) error {
	if !level.Known() {
		return &ValidationError{Value: Stringify(level)}
	}
	l.sync.chngMtx.RLock()
	if !l.shouldOutput(level) {
		l.sync.chngMtx.RUnlock()
		return nil
	}
	format, sink, hooks, now := l.format, l.sinks.Resolve(level), l.hooks, l.now
	l.sync.chngMtx.RUnlock()
	if format == nil {
		format = PlainFormatter
	}
	if now == nil {
		now = time.Now
	}

	text, err := format(NewLogMessage(level, now(), msg, args...))
	if err != nil {
		return err
	}
	if err = writeToSink(sink, text); err != nil {
		return err
	}
	for _, h := range hooks {
		if herr := h.Fire(level); herr != nil {
			l.handleLogWriteError("error firing log hook: " + herr.Error())
		}
	}
	return nil
}

// Log is a convenience wrapper that does not return errors. Use LogE when
// callers need to react to problems; here they are reported to the fallback
// writer.
func (l *Logger) Log(level LogLevel, msg string, args ...any) {
	if err := l.LogE(level, msg, args...); err != nil {
		l.handleLogWriteError(err.Error())
	}
}

// writeToSink calls the sink and converts its panic into an error. Error
// panics stay wrapped so that errors.Is/As still match them.
func writeToSink(sink Sink, text string) (err error) {
	defer func() {
		r := recover()
		if perr, ok := r.(error); ok {
			err = fmt.Errorf("panic writing log to sink: %w", perr)
		} else if r != nil {
			err = errors.New("panic writing log to sink" + panicDesc(r))
		}
	}()
	sink(text)
	return nil
}

// handleLogWriteError writes a human-readable error message to the fallback
// writer. A read lock is used since we only need consistent access to fallbck.
func (l *Logger) handleLogWriteError(errormsg string) {
	l.sync.fbckMtx.RLock()
	defer l.sync.fbckMtx.RUnlock()
	if l.fallbck != nil {
		l.fallbck.Write([]byte(errormsg + "\n"))
	}
}

// Convenience level-specific helpers. All of them behave like Log: errors
// are reported to the fallback writer instead of being returned.

// Fatal logs at LVL_FATAL. It does not terminate the process.
func (l *Logger) Fatal(msg string, args ...any) { l.Log(LVL_FATAL, msg, args...) }

// Error logs at LVL_ERROR.
func (l *Logger) Error(msg string, args ...any) { l.Log(LVL_ERROR, msg, args...) }

// Warn logs at LVL_WARN.
func (l *Logger) Warn(msg string, args ...any) { l.Log(LVL_WARN, msg, args...) }

// Info logs at LVL_INFO.
func (l *Logger) Info(msg string, args ...any) { l.Log(LVL_INFO, msg, args...) }

// Debug logs at LVL_DEBUG.
func (l *Logger) Debug(msg string, args ...any) { l.Log(LVL_DEBUG, msg, args...) }

// Trace logs at LVL_TRACE.
func (l *Logger) Trace(msg string, args ...any) { l.Log(LVL_TRACE, msg, args...) }

// Verbose logs at LVL_VERBOSE (emitted only while verbose output is on).
func (l *Logger) Verbose(msg string, args ...any) { l.Log(LVL_VERBOSE, msg, args...) }

// Force logs at LVL_FORCE_OUTPUT, bypassing the threshold.
func (l *Logger) Force(msg string, args ...any) { l.Log(LVL_FORCE_OUTPUT, msg, args...) }

// Print logs at LVL_LOG: always emitted, no level tag.
func (l *Logger) Print(msg string, args ...any) { l.Log(LVL_LOG, msg, args...) }

// Default logs at LVL_DEFAULT: always emitted, no level tag.
func (l *Logger) Default(msg string, args ...any) { l.Log(LVL_DEFAULT, msg, args...) }

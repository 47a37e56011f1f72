package lgr

import "strings"

/*********************************************************************************
io.Writer interface implementation

A LevelWriter lets a Logger be used with fmt.Fprintf and other io.Writer
consumers. The semantics are:
 - Lvl(level) returns a writer bound to that level.
 - Write(p) logs p (without one trailing newline) at the bound level and
   returns len(p) on success, 0 and a non-nil error on failure.

This allows patterns like:
  fmt.Fprintf(logger.Lvl(LVL_WARN), "disk low: %d%%", percent)
*/

// LevelWriter writes every chunk as one log message at a fixed level.
type LevelWriter struct {
	logger *Logger
	level  LogLevel
}

// Lvl returns an io.Writer logging at the given level.
func (l *Logger) Lvl(level LogLevel) *LevelWriter {
	return &LevelWriter{logger: l, level: level}
}

// Write implements io.Writer. If the payload is nil it is treated as a
// zero-length write with no error.
func (w *LevelWriter) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	err = w.logger.LogE(w.level, strings.TrimSuffix(string(p), "\n"))
	if err == nil {
		n = len(p)
	}
	return
}

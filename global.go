package lgr

// Process-wide entry points. All of them create the manager and its logger on
// first use, so that library code can log before the application configured
// anything (output is discarded until a sink is set).

// CreateLogger returns the process-wide logger after applying opts. Calling it
// again without options changes nothing, so it doubles as a fetch.
func CreateLogger(opts ...Option) (*Logger, error) {
	l := fetchManager().Logger()
	if err := l.ApplyConfig(opts...); err != nil {
		return nil, err
	}
	return l, nil
}

// GetLogger returns the process-wide logger.
func GetLogger() *Logger {
	return fetchManager().Logger()
}

// GetFormatter returns the formatter of the process-wide logger, for helpers
// that build their own messages before emitting them.
func GetFormatter() Formatter {
	return GetLogger().Formatter()
}

// SetLoggerConfig is the bulk configuration form (see Logger.ApplyConfig).
func SetLoggerConfig(opts ...Option) error {
	return fetchManager().SetLoggerConfig(opts...)
}

// BindLevelSink is the single-level configuration form; a nil sink resets the
// level to the default sink.
func BindLevelSink(level LogLevel, sink Sink) error {
	return fetchManager().BindLoggerFunction(level, sink)
}

// Package-level shortcuts to the process-wide logger.

func Fatal(msg string, args ...any)   { GetLogger().Fatal(msg, args...) }
func Error(msg string, args ...any)   { GetLogger().Error(msg, args...) }
func Warn(msg string, args ...any)    { GetLogger().Warn(msg, args...) }
func Info(msg string, args ...any)    { GetLogger().Info(msg, args...) }
func Debug(msg string, args ...any)   { GetLogger().Debug(msg, args...) }
func Trace(msg string, args ...any)   { GetLogger().Trace(msg, args...) }
func Verbose(msg string, args ...any) { GetLogger().Verbose(msg, args...) }
func Force(msg string, args ...any)   { GetLogger().Force(msg, args...) }
func Print(msg string, args ...any)   { GetLogger().Print(msg, args...) }
func Default(msg string, args ...any) { GetLogger().Default(msg, args...) }

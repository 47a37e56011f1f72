package lgr

import (
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Option is one configuration change collected by ApplyConfig. Omission is
// expressed by not passing the option at all: options carrying nil
// sinks/formatters are rejected with a *ConfigError.
type Option func(c *config) error

// config accumulates validated options before they are applied at once.
type config struct {
	deflt    Sink
	format   Formatter
	sinks    map[LogLevel]Sink
	level    *LogLevel
	verbose  *bool
	fallback io.Writer
	hooks    []Hook
	now      func() time.Time

	hasFallback bool
	hasHooks    bool
}

// WithDefaultSink re-homes every level to sink: all explicit overrides are
// dropped before the sink map of the same ApplyConfig call is applied.
func WithDefaultSink(sink Sink) Option {
	return func(c *config) error {
		if sink == nil {
			return &ConfigError{Field: "defaultLogger", Reason: _ERROR_MESSAGE_NIL_SINK}
		}
		c.deflt = sink
		return nil
	}
}

// WithFormatter replaces the formatter.
func WithFormatter(f Formatter) Option {
	return func(c *config) error {
		if f == nil {
			return &ConfigError{Field: "formatter", Reason: _ERROR_MESSAGE_NIL_FORMATTER}
		}
		c.format = f
		return nil
	}
}

// WithSinkMap overrides the sinks of the named levels only. Repeated options
// are merged, later ones win.
func WithSinkMap(sinks map[LogLevel]Sink) Option {
	return func(c *config) error {
		var result *multierror.Error
		for level, sink := range sinks {
			if !level.Known() {
				result = multierror.Append(result, &ValidationError{Value: Stringify(level)})
				continue
			}
			if sink == nil {
				result = multierror.Append(result, &ConfigError{Field: "loggerMap[" + level.String() + "]", Reason: _ERROR_MESSAGE_NIL_SINK})
				continue
			}
			if c.sinks == nil {
				c.sinks = make(map[LogLevel]Sink, len(sinks))
			}
			c.sinks[level] = sink
		}
		return result.ErrorOrNil()
	}
}

// WithLevel sets the threshold; only standard levels are accepted.
func WithLevel(level LogLevel) Option {
	return func(c *config) error {
		if !level.Standard() {
			return &ValidationError{Value: Stringify(level), Reason: _ERROR_MESSAGE_NOT_STANDARD_LEVEL}
		}
		c.level = &level
		return nil
	}
}

// WithVerbose switches LVL_VERBOSE output.
func WithVerbose(enabled bool) Option {
	return func(c *config) error {
		c.verbose = &enabled
		return nil
	}
}

// WithFallback sets the writer receiving internal errors (nil discards them).
func WithFallback(w io.Writer) Option {
	return func(c *config) error {
		c.fallback = w
		c.hasFallback = true
		return nil
	}
}

// WithHooks replaces the hooks fired after each emitted message.
func WithHooks(hooks ...Hook) Option {
	return func(c *config) error {
		for _, h := range hooks {
			if h == nil {
				return &ConfigError{Field: "hooks", Reason: _ERROR_MESSAGE_NIL_HOOK}
			}
		}
		c.hooks = append([]Hook(nil), hooks...)
		c.hasHooks = true
		return nil
	}
}

// WithClock replaces the timestamp source (time.Now by default).
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return &ConfigError{Field: "clock", Reason: _ERROR_MESSAGE_NIL_CLOCK}
		}
		c.now = now
		return nil
	}
}

// ApplyConfig validates every option first and applies nothing if any of them
// failed; the returned error then lists all problems. Without options it is a
// no-op, which enables a create-or-fetch call pattern.
//
// Merge order: default sink (resetting all levels), per-level sink map,
// then formatter, threshold, verbose flag, fallback, hooks and clock.
func (l *Logger) ApplyConfig(opts ...Option) error {
	c := &config{}
	var result *multierror.Error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		if len(result.Errors) == 1 {
			return result.Errors[0]
		}
		return result
	}

	l.sync.chngMtx.Lock()
	if c.deflt != nil {
		l.sinks.Reset(c.deflt)
	}
	for level, sink := range c.sinks {
		l.sinks.Bind(level, sink)
	}
	if c.format != nil {
		l.format = c.format
	}
	if c.level != nil {
		l.level = *c.level
	}
	if c.verbose != nil {
		l.verbose = *c.verbose
	}
	if c.hasHooks {
		l.hooks = c.hooks
	}
	if c.now != nil {
		l.now = c.now
	}
	l.sync.chngMtx.Unlock()

	if c.hasFallback {
		l.SetFallback(c.fallback)
	}
	return nil
}

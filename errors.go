package lgr

import (
	"errors"
	"strconv"
)

const (
	// Error messages used across logger operations (used for testing).
	_ERROR_MESSAGE_INVALID_LEVEL       = "invalid log level"
	_ERROR_MESSAGE_NOT_STANDARD_LEVEL  = "not a standard log level"
	_ERROR_MESSAGE_NIL_SINK            = "sink is nil"
	_ERROR_MESSAGE_NIL_FORMATTER       = "formatter is nil"
	_ERROR_MESSAGE_NIL_LOGGER          = "logger is nil"
	_ERROR_MESSAGE_NIL_HOOK            = "hook is nil"
	_ERROR_MESSAGE_NIL_CLOCK           = "clock is nil"
	_ERROR_MESSAGE_ALREADY_CREATED     = "logger manager already created"
	_ERROR_MESSAGE_NOT_CREATED         = "logger manager not created"
	_ERROR_MESSAGE_ALREADY_INITIALIZED = "logger already initialized"
	_ERROR_MESSAGE_NO_ACTIVE_TEST      = "no active test"
	_ERROR_MESSAGE_BUFFER_NOT_FOUND    = "buffer not found"
	_ERROR_MESSAGE_BUFFER_FULL         = "capture buffer is full"
	_ERROR_UNKNOWN_PANIC_TEXT          = "[no panic description]"
)

// Sentinel causes carried by *StateError. Match them with errors.Is.
var (
	ErrAlreadyCreated     = errors.New(_ERROR_MESSAGE_ALREADY_CREATED)
	ErrNotCreated         = errors.New(_ERROR_MESSAGE_NOT_CREATED)
	ErrAlreadyInitialized = errors.New(_ERROR_MESSAGE_ALREADY_INITIALIZED)
	ErrNoActiveTest       = errors.New(_ERROR_MESSAGE_NO_ACTIVE_TEST)
	ErrBufferNotFound     = errors.New(_ERROR_MESSAGE_BUFFER_NOT_FOUND)
)

// ValidationError reports a value that is not a valid level. Value holds the
// canonical stringification of the offending input (see Stringify).
type ValidationError struct {
	Value  string
	Reason string // optional, defaults to "invalid log level"
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = _ERROR_MESSAGE_INVALID_LEVEL
	}
	return reason + ": " + e.Value
}

// ConfigError reports a nil or unusable formatter, sink, hook or logger.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "invalid config: " + e.Reason
	}
	return "invalid config " + e.Field + ": " + e.Reason
}

// StateError reports an operation attempted in the wrong lifecycle state.
type StateError struct {
	Op  string // operation name, e.g. "CreateManager"
	Key string // optional subject, e.g. a capture test id
	Err error  // one of the Err* sentinels
}

func (e *StateError) Error() string {
	s := e.Op + ": " + e.Err.Error()
	if e.Key != "" {
		s += " (" + strconv.Quote(e.Key) + ")"
	}
	return s
}

func (e *StateError) Unwrap() error { return e.Err }

// ResourceError reports that a bounded resource (capture buffer) is exhausted.
type ResourceError struct {
	Limit int
}

func (e *ResourceError) Error() string {
	return _ERROR_MESSAGE_BUFFER_FULL + " (limit " + strconv.Itoa(e.Limit) + " entries)"
}

// Converts a non-error panic value into a compact readable string (used when
// translating sink panics into errors)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}

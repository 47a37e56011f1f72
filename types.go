package lgr

/*
Defines the core data types used by the logger:
  - Sink and Formatter: the two collaborator contracts (terminal output and
    message-to-string rendering)
  - LogMessage: one log call after primitive folding
  - Hook: observers fired after each emitted message
  - sinkEntry/SinkMap: the per-level sink table with fallback resolution
  - Logger: the central state object holding threshold, verbose flag,
    formatter, sinks and the fallback writer

Also defines package-wide defaults and ANSI color fragments.
*/

import (
	"io"
	"sync"
	"time"
)

// Sink is the terminal side-effecting function receiving a fully formatted string.
type Sink func(s string)

// Formatter renders a message. Its only failure mode is the underlying
// serialization error (e.g. a cyclic structure in Args).
type Formatter func(msg LogMessage) (string, error)

// Hook is fired after a message has been handed to its sink.
// The call must be non-blocking.
type Hook interface {
	Fire(level LogLevel) error
}

// LogMessage is one log call. Message holds the leading primitive arguments;
// the first structured argument and everything after it stay in Args.
type LogMessage struct {
	Level     LogLevel
	Timestamp time.Time
	Message   string
	Args      []any
}

// Binding state of one SinkMap slot.
type sinkState uint8

const (
	sinkNotSet sinkState = iota // never configured
	sinkBound                   // explicit per-level override
	sinkUnset                   // override removed explicitly
)

// sinkEntry distinguishes an explicit override from "explicitly unset" and
// from "never set". Only sinkBound entries take part in resolution.
type sinkEntry struct {
	sink  Sink
	state sinkState
}

// SinkMap is a fixed table of per-level sinks with a shared default.
// The zero value resolves every level to a no-op.
type SinkMap struct {
	entries [_LEVEL_SLOTS]sinkEntry
	deflt   Sink
}

// Logger is the dispatch core. It contains the configuration mutex, the sink
// table, formatter, fallback writer and hooks.
//
// The zero value is usable: LVL_OFF threshold, every sink discarding,
// PlainFormatter, time.Now and no fallback. Use New for the usual defaults.
type Logger struct {
	sync struct {
		chngMtx sync.RWMutex // guards configuration (level, verbose, formatter, sinks, hooks)
		fbckMtx sync.RWMutex // guards access to fallback writer
	}
	sinks   SinkMap
	format  Formatter
	fallbck io.Writer // fallback writer used to report internal errors
	hooks   []Hook
	now     func() time.Time
	level   LogLevel // threshold, always a standard level
	verbose bool
}

const (
	// Default values for short init forms
	DEFAULT_LOG_LEVEL   = LVL_INFO
	DEFAULT_MAX_ENTRIES = 10000 // default capture buffer guard
	DEFAULT_TIME_FORMAT = "2006-01-02T15:04:05Z"
)

const (
	// ANSI colored text fragments prefix/suffix used when colors are requested.
	// For a colored piece of text the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

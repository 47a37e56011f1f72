// Package lgrtest provides capture buffers: test-double sinks that record what
// a logger emits, per level, so tests can assert on it instead of parsing
// console output.
package lgrtest

import (
	"fmt"
	"sync"

	lgr "github.com/abyssdigger/lgrcore"
)

// Buffer records raw inputs (formatted strings or lgr.LogMessage values) per
// level, in insertion order, never deduplicated. All methods are safe for
// concurrent use. Slices returned by queries are copies.
type Buffer struct {
	mu      sync.Mutex
	entries map[lgr.LogLevel][]any
	total   int
	max     int
}

// NewBuffer creates a buffer limited to lgr.DEFAULT_MAX_ENTRIES entries.
func NewBuffer() *Buffer {
	return NewBufferWithLimit(lgr.DEFAULT_MAX_ENTRIES)
}

// NewBufferWithLimit creates a buffer holding at most max entries over all
// levels (max <= 0 means lgr.DEFAULT_MAX_ENTRIES).
func NewBufferWithLimit(max int) *Buffer {
	if max <= 0 {
		max = lgr.DEFAULT_MAX_ENTRIES
	}
	return &Buffer{entries: make(map[lgr.LogLevel][]any), max: max}
}

func checkLevel(level lgr.LogLevel) error {
	if _, err := lgr.Validate(level); err != nil {
		return fmt.Errorf("capture buffer: %w", err)
	}
	return nil
}

// Record appends input to the level's entries. It fails with a
// *lgr.ResourceError once the buffer holds its maximum number of entries.
func (b *Buffer) Record(level lgr.LogLevel, input any) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.total >= b.max {
		return &lgr.ResourceError{Limit: b.max}
	}
	b.entries[level] = append(b.entries[level], input)
	b.total++
	return nil
}

// GetMessages returns a copy of the level's entries (empty, not nil, when
// nothing was recorded).
func (b *Buffer) GetMessages(level lgr.LogLevel) ([]any, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]any{}, b.entries[level]...), nil
}

// GetLastMessage returns the newest entry of the level, nil when there is none.
func (b *Buffer) GetLastMessage(level lgr.LogLevel) (any, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.entries[level]
	if len(list) == 0 {
		return nil, nil
	}
	return list[len(list)-1], nil
}

// ClearMessages empties one level only.
func (b *Buffer) ClearMessages(level lgr.LogLevel) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.total -= len(b.entries[level])
	delete(b.entries, level)
	return nil
}

// ClearAllMessages empties every level.
func (b *Buffer) ClearAllMessages() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make(map[lgr.LogLevel][]any)
	b.total = 0
}

func (b *Buffer) HasMessages(level lgr.LogLevel) (bool, error) {
	n, err := b.GetMessageCount(level)
	return n > 0, err
}

func (b *Buffer) GetMessageCount(level lgr.LogLevel) (int, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries[level]), nil
}

func (b *Buffer) GetTotalMessageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

// Sink returns an lgr.Sink recording formatted strings at the given level.
// A failed record (buffer full) panics with the error; Logger.LogE turns
// sink panics into errors.
func (b *Buffer) Sink(level lgr.LogLevel) (lgr.Sink, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	return func(s string) {
		if err := b.Record(level, s); err != nil {
			panic(err)
		}
	}, nil
}

// SinkMap returns a sink for every level except LVL_OFF, for lgr.WithSinkMap.
func (b *Buffer) SinkMap() map[lgr.LogLevel]lgr.Sink {
	sinks := make(map[lgr.LogLevel]lgr.Sink)
	for _, level := range lgr.AllLevels() {
		if level == lgr.LVL_OFF {
			continue
		}
		sinks[level], _ = b.Sink(level)
	}
	return sinks
}

// NewLogger creates a standalone logger (not the process-wide one) writing
// every level into b; opts are applied after the capture sinks.
func NewLogger(b *Buffer, opts ...lgr.Option) (*lgr.Logger, error) {
	return lgr.New(append([]lgr.Option{lgr.WithSinkMap(b.SinkMap())}, opts...)...)
}

// Direct recording helpers, one per level.

func (b *Buffer) Fatal(input any) error   { return b.Record(lgr.LVL_FATAL, input) }
func (b *Buffer) Error(input any) error   { return b.Record(lgr.LVL_ERROR, input) }
func (b *Buffer) Warn(input any) error    { return b.Record(lgr.LVL_WARN, input) }
func (b *Buffer) Info(input any) error    { return b.Record(lgr.LVL_INFO, input) }
func (b *Buffer) Debug(input any) error   { return b.Record(lgr.LVL_DEBUG, input) }
func (b *Buffer) Trace(input any) error   { return b.Record(lgr.LVL_TRACE, input) }
func (b *Buffer) Verbose(input any) error { return b.Record(lgr.LVL_VERBOSE, input) }
func (b *Buffer) Force(input any) error   { return b.Record(lgr.LVL_FORCE_OUTPUT, input) }
func (b *Buffer) Print(input any) error   { return b.Record(lgr.LVL_LOG, input) }
func (b *Buffer) Default(input any) error { return b.Record(lgr.LVL_DEFAULT, input) }

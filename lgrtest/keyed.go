package lgrtest

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	lgr "github.com/abyssdigger/lgrcore"
)

// KeyedBuffer keeps one isolated Buffer per logical test id. Recording
// without an explicit id goes to the most recently started test that has not
// ended yet.
type KeyedBuffer struct {
	mu      sync.Mutex
	buffers map[string]*Buffer
	current string
	max     int
}

// NewKeyedBuffer creates an empty keyed buffer whose per-test buffers are
// limited to max entries each (max <= 0 means lgr.DEFAULT_MAX_ENTRIES).
func NewKeyedBuffer(max int) *KeyedBuffer {
	return &KeyedBuffer{buffers: make(map[string]*Buffer), max: max}
}

// NewTestID derives a unique id from prefix, the current time and a random
// suffix, e.g. "TestFoo-1700000000000000000-1b4e28ba".
func NewTestID(prefix string) string {
	if prefix == "" {
		prefix = "test"
	}
	return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + uuid.NewString()[:8]
}

// StartTest creates a fresh buffer bound to id (generated when empty), makes
// it current and returns the id. Starting an id again replaces its buffer.
func (k *KeyedBuffer) StartTest(id string) string {
	if id == "" {
		id = NewTestID("")
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.buffers[id] = NewBufferWithLimit(k.max)
	k.current = id
	return id
}

// EndTest discards the buffer of id (of the current test when id is empty).
func (k *KeyedBuffer) EndTest(id string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if id == "" {
		if k.current == "" {
			return &lgr.StateError{Op: "EndTest", Err: lgr.ErrNoActiveTest}
		}
		id = k.current
	}
	if _, ok := k.buffers[id]; !ok {
		return &lgr.StateError{Op: "EndTest", Key: id, Err: lgr.ErrBufferNotFound}
	}
	delete(k.buffers, id)
	if k.current == id {
		k.current = ""
	}
	return nil
}

// Current returns the id of the active test.
func (k *KeyedBuffer) Current() (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current, k.current != ""
}

// Buffer returns the buffer of id (of the current test when id is empty).
func (k *KeyedBuffer) Buffer(id string) (*Buffer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if id == "" {
		if k.current == "" {
			return nil, &lgr.StateError{Op: "Buffer", Err: lgr.ErrNoActiveTest}
		}
		id = k.current
	}
	b, ok := k.buffers[id]
	if !ok {
		return nil, &lgr.StateError{Op: "Buffer", Key: id, Err: lgr.ErrBufferNotFound}
	}
	return b, nil
}

// RecordTo appends input to the buffer of id.
func (k *KeyedBuffer) RecordTo(id string, level lgr.LogLevel, input any) error {
	b, err := k.Buffer(id)
	if err != nil {
		return err
	}
	return b.Record(level, input)
}

// Record appends input to the current test's buffer.
func (k *KeyedBuffer) Record(level lgr.LogLevel, input any) error {
	return k.RecordTo("", level, input)
}

// Sink returns an lgr.Sink recording into whichever test is current at call
// time. Recording failures panic with the error (see Buffer.Sink).
func (k *KeyedBuffer) Sink(level lgr.LogLevel) (lgr.Sink, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	return func(s string) {
		if err := k.Record(level, s); err != nil {
			panic(err)
		}
	}, nil
}

// ForTest starts a buffer named after t and ends it when t finishes.
func (k *KeyedBuffer) ForTest(t testing.TB) *Buffer {
	t.Helper()
	id := k.StartTest(NewTestID(t.Name()))
	t.Cleanup(func() {
		if err := k.EndTest(id); err != nil && !errors.Is(err, lgr.ErrBufferNotFound) {
			t.Errorf("end capture buffer for %s: %v", t.Name(), err)
		}
	})
	b, err := k.Buffer(id)
	if err != nil {
		t.Fatalf("capture buffer for %s: %v", t.Name(), err)
	}
	return b
}

// Recording helpers for the current test, one per level.

func (k *KeyedBuffer) Fatal(input any) error   { return k.Record(lgr.LVL_FATAL, input) }
func (k *KeyedBuffer) Error(input any) error   { return k.Record(lgr.LVL_ERROR, input) }
func (k *KeyedBuffer) Warn(input any) error    { return k.Record(lgr.LVL_WARN, input) }
func (k *KeyedBuffer) Info(input any) error    { return k.Record(lgr.LVL_INFO, input) }
func (k *KeyedBuffer) Debug(input any) error   { return k.Record(lgr.LVL_DEBUG, input) }
func (k *KeyedBuffer) Trace(input any) error   { return k.Record(lgr.LVL_TRACE, input) }
func (k *KeyedBuffer) Verbose(input any) error { return k.Record(lgr.LVL_VERBOSE, input) }
func (k *KeyedBuffer) Force(input any) error   { return k.Record(lgr.LVL_FORCE_OUTPUT, input) }
func (k *KeyedBuffer) Print(input any) error   { return k.Record(lgr.LVL_LOG, input) }
func (k *KeyedBuffer) Default(input any) error { return k.Record(lgr.LVL_DEFAULT, input) }

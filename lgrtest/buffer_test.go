package lgrtest

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lgr "github.com/abyssdigger/lgrcore"
)

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func Test_Buffer_ErrorSequence(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Error("e1"))
	require.NoError(t, b.Error("e2"))

	got, err := b.GetMessages(lgr.LVL_ERROR)
	require.NoError(t, err)
	assert.Equal(t, []any{"e1", "e2"}, got)

	last, err := b.GetLastMessage(lgr.LVL_ERROR)
	require.NoError(t, err)
	assert.Equal(t, "e2", last)

	require.NoError(t, b.ClearMessages(lgr.LVL_ERROR))
	got, err = b.GetMessages(lgr.LVL_ERROR)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_Buffer_ClearOneVsAll(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Info("a"))
	require.NoError(t, b.Info("b"))
	require.NoError(t, b.Warn("w"))
	require.NoError(t, b.Info("a"))

	got, _ := b.GetMessages(lgr.LVL_INFO)
	assert.Equal(t, []any{"a", "b", "a"}, got)
	assert.Equal(t, 4, b.GetTotalMessageCount())

	require.NoError(t, b.ClearMessages(lgr.LVL_INFO))
	has, _ := b.HasMessages(lgr.LVL_INFO)
	assert.False(t, has)
	n, _ := b.GetMessageCount(lgr.LVL_WARN)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, b.GetTotalMessageCount())

	b.ClearAllMessages()
	for _, level := range lgr.AllLevels() {
		has, err := b.HasMessages(level)
		require.NoError(t, err)
		assert.False(t, has, level.String())
	}
	assert.Zero(t, b.GetTotalMessageCount())
}

func Test_Buffer_EmptyLevel(t *testing.T) {
	b := NewBuffer()
	last, err := b.GetLastMessage(lgr.LVL_DEBUG)
	assert.NoError(t, err)
	assert.Nil(t, last)
	n, err := b.GetMessageCount(lgr.LVL_DEBUG)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func Test_Buffer_ReturnsCopies(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Trace("keep"))
	got, _ := b.GetMessages(lgr.LVL_TRACE)
	got[0] = "changed"
	again, _ := b.GetMessages(lgr.LVL_TRACE)
	assert.Equal(t, []any{"keep"}, again)
}

func Test_Buffer_InvalidLevel(t *testing.T) {
	b := NewBuffer()
	checks := map[string]func() error{
		"Record":          func() error { return b.Record(7, "x") },
		"GetMessages":     func() error { _, err := b.GetMessages(7); return err },
		"GetLastMessage":  func() error { _, err := b.GetLastMessage(7); return err },
		"ClearMessages":   func() error { return b.ClearMessages(7) },
		"HasMessages":     func() error { _, err := b.HasMessages(7); return err },
		"GetMessageCount": func() error { _, err := b.GetMessageCount(7); return err },
		"Sink":            func() error { _, err := b.Sink(7); return err },
	}
	for name, call := range checks {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "7")
			var verr *lgr.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
	assert.Zero(t, b.GetTotalMessageCount())
}

func Test_Buffer_Limit(t *testing.T) {
	b := NewBufferWithLimit(2)
	require.NoError(t, b.Info("a"))
	require.NoError(t, b.Warn("b"))
	err := b.Error("c")
	var rerr *lgr.ResourceError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 2, rerr.Limit)
	assert.Equal(t, 2, b.GetTotalMessageCount())

	require.NoError(t, b.ClearMessages(lgr.LVL_INFO))
	assert.NoError(t, b.Error("c"))
}

func Test_Buffer_AllRecorders(t *testing.T) {
	b := NewBuffer()
	calls := []struct {
		level lgr.LogLevel
		rec   func(any) error
	}{
		{lgr.LVL_FATAL, b.Fatal},
		{lgr.LVL_ERROR, b.Error},
		{lgr.LVL_WARN, b.Warn},
		{lgr.LVL_INFO, b.Info},
		{lgr.LVL_DEBUG, b.Debug},
		{lgr.LVL_TRACE, b.Trace},
		{lgr.LVL_VERBOSE, b.Verbose},
		{lgr.LVL_FORCE_OUTPUT, b.Force},
		{lgr.LVL_LOG, b.Print},
		{lgr.LVL_DEFAULT, b.Default},
	}
	for _, c := range calls {
		require.NoError(t, c.rec(c.level.String()))
	}
	for _, c := range calls {
		last, err := b.GetLastMessage(c.level)
		require.NoError(t, err)
		assert.Equal(t, c.level.String(), last)
	}
}

func Test_Buffer_RawLogMessage(t *testing.T) {
	b := NewBuffer()
	msg := lgr.NewLogMessage(lgr.LVL_WARN, testTime, "disk", 5, map[string]int{"free": 1})
	require.NoError(t, b.Warn(msg))
	got, _ := b.GetLastMessage(lgr.LVL_WARN)
	if diff := cmp.Diff(msg, got); diff != "" {
		t.Errorf("captured message mismatch (-want +got):\n%s", diff)
	}
}

func Test_NewLogger(t *testing.T) {
	b := NewBuffer()
	l, err := NewLogger(b, lgr.WithLevel(lgr.LVL_WARN), lgr.WithClock(fixedClock))
	require.NoError(t, err)

	l.Debug("x")
	l.Info("y")
	l.Warn("z")
	l.Error("w")
	l.Print("plain")

	want := map[lgr.LogLevel][]any{
		lgr.LVL_DEBUG: {},
		lgr.LVL_INFO:  {},
		lgr.LVL_WARN:  {"2024-01-02T03:04:05Z [WARN] z"},
		lgr.LVL_ERROR: {"2024-01-02T03:04:05Z [ERROR] w"},
		lgr.LVL_LOG:   {"2024-01-02T03:04:05Z plain"},
	}
	got := map[lgr.LogLevel][]any{}
	for level := range want {
		got[level], err = b.GetMessages(level)
		require.NoError(t, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("captured output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, b.GetTotalMessageCount())
}

func Test_NewLogger_BufferFull(t *testing.T) {
	b := NewBufferWithLimit(1)
	l, err := NewLogger(b)
	require.NoError(t, err)
	require.NoError(t, l.LogE(lgr.LVL_INFO, "a"))
	err = l.LogE(lgr.LVL_INFO, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic writing log to sink")
	var rerr *lgr.ResourceError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 1, rerr.Limit)
	assert.Equal(t, 1, b.GetTotalMessageCount())
}

func Test_Buffer_Concurrent(t *testing.T) {
	b := NewBuffer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				assert.NoError(t, b.Info(i))
			}
		}()
	}
	wg.Wait()
	n, _ := b.GetMessageCount(lgr.LVL_INFO)
	assert.Equal(t, 400, n)
}

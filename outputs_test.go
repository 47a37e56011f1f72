package lgr

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriterSink(t *testing.T) {
	out := &FakeWriter{}
	ferr := &FakeWriter{}
	WriterSink(out, ferr)(testlogstr)
	assert.Equal(t, testlogstr+"\n", out.String())
	assert.Empty(t, ferr.String())

	WriterSink(&ErrorWriter{}, ferr)("x")
	assert.Equal(t, "error writing log to output (0 bytes written): "+errorStr+"\n", ferr.String())

	assert.NotPanics(t, func() { WriterSink(&ErrorWriter{}, nil)("x") })
	assert.NotPanics(t, func() { WriterSink(nil, nil)("x") })
}

func Test_ConsoleSinks(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l, err := New(WithSinkMap(ConsoleSinks(&stdout, &stderr)), WithLevel(LVL_TRACE), WithClock(fixedClock))
	require.NoError(t, err)
	l.Info("hello")
	l.Debug("dbg")
	l.Print("plain")
	l.Warn("careful")
	l.Error("boom")
	l.Force("forced")

	assert.Equal(t, "2024-01-02T03:04:05Z [INFO] hello\n"+
		"2024-01-02T03:04:05Z [DEBUG] dbg\n"+
		"2024-01-02T03:04:05Z plain\n", stdout.String())
	assert.Equal(t, "2024-01-02T03:04:05Z [WARN] careful\n"+
		"2024-01-02T03:04:05Z [ERROR] boom\n"+
		"2024-01-02T03:04:05Z [FORCE_OUTPUT] forced\n", stderr.String())
	assert.NotContains(t, ConsoleSinks(&stdout, &stderr), LVL_OFF)
}

func Test_ColorSupported(t *testing.T) {
	assert.False(t, ColorSupported(&bytes.Buffer{}))
	f, err := os.CreateTemp(t.TempDir(), "color")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorSupported(f))
}

func Test_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	sink, closer, err := FileSink(FileConfig{Path: path, MaxSizeMB: 1}, nil)
	require.NoError(t, err)
	l, err := New(WithDefaultSink(sink), WithClock(fixedClock))
	require.NoError(t, err)
	l.Info("to file", 1)
	l.Error("again")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05Z [INFO] to file 1\n2024-01-02T03:04:05Z [ERROR] again\n", string(data))
}

func Test_FileSink_EmptyPath(t *testing.T) {
	_, _, err := FileSink(FileConfig{}, nil)
	var cerr *ConfigError
	assert.True(t, errors.As(err, &cerr))
}

func Test_TeeSink(t *testing.T) {
	a := &recorder{}
	b := &recorder{}
	TeeSink(a.sink(LVL_INFO), nil, b.sink(LVL_INFO))("x")
	assert.Len(t, a.calls, 1)
	assert.Len(t, b.calls, 1)
}

package lgr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SinkMap_ZeroValue(t *testing.T) {
	var m SinkMap
	for _, level := range AllLevels() {
		s := m.Resolve(level)
		require.NotNil(t, s)
		assert.NotPanics(t, func() { s("x") })
	}
	assert.NotNil(t, m.Default())
}

func Test_SinkMap_Resolve(t *testing.T) {
	def := &recorder{}
	m := NewSinkMap(def.sink(LVL_DEFAULT))
	for _, level := range AllLevels() {
		m.Resolve(level)("x")
	}
	// every level but LVL_OFF lands in the default sink
	assert.Len(t, def.calls, len(AllLevels())-1)

	off := &recorder{}
	require.NoError(t, m.Bind(LVL_OFF, off.sink(LVL_OFF)))
	m.Resolve(LVL_OFF)("x")
	assert.Len(t, off.calls, 1)
	assert.True(t, m.Bound(LVL_OFF))
}

func Test_SinkMap_BindUnbind(t *testing.T) {
	def := &recorder{}
	ovr := &recorder{}
	m := NewSinkMap(def.sink(LVL_DEFAULT))
	require.NoError(t, m.Bind(LVL_WARN, ovr.sink(LVL_WARN)))
	m.Resolve(LVL_WARN)("a")
	require.NoError(t, m.Unbind(LVL_WARN))
	assert.False(t, m.Bound(LVL_WARN))
	m.Resolve(LVL_WARN)("b")
	assert.Len(t, ovr.calls, 1)
	assert.Len(t, def.calls, 1)

	// nil binding is the same as unbinding
	require.NoError(t, m.Bind(LVL_WARN, ovr.sink(LVL_WARN)))
	require.NoError(t, m.Bind(LVL_WARN, nil))
	assert.False(t, m.Bound(LVL_WARN))
	assert.True(t, m.Unset(LVL_WARN))
}

func Test_SinkMap_UnsetVsNotSet(t *testing.T) {
	def := &recorder{}
	m := NewSinkMap(def.sink(LVL_DEFAULT))
	assert.False(t, m.Unset(LVL_INFO))
	assert.False(t, m.Bound(LVL_INFO))

	require.NoError(t, m.Unbind(LVL_INFO))
	assert.True(t, m.Unset(LVL_INFO))
	assert.False(t, m.Unset(LVL_DEBUG))
	m.Resolve(LVL_INFO)("x")
	assert.Len(t, def.calls, 1)

	require.NoError(t, m.Bind(LVL_INFO, DiscardSink))
	assert.False(t, m.Unset(LVL_INFO))
	require.NoError(t, m.Unbind(LVL_INFO))
	m.Reset(nil)
	assert.False(t, m.Unset(LVL_INFO))
	assert.False(t, m.Unset(LogLevel(7)))
}

func Test_SinkMap_InvalidLevel(t *testing.T) {
	m := NewSinkMap(nil)
	for _, level := range []LogLevel{-1, 7, 9, 14} {
		err := m.Bind(level, DiscardSink)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), level.String())
		assert.NotNil(t, m.Resolve(level))
		assert.False(t, m.Bound(level))
	}
}

func Test_SinkMap_Reset(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	m := NewSinkMap(first.sink(LVL_DEFAULT))
	require.NoError(t, m.Bind(LVL_INFO, first.sink(LVL_INFO)))
	m.Reset(second.sink(LVL_DEFAULT))
	assert.False(t, m.Bound(LVL_INFO))
	m.Resolve(LVL_INFO)("x")
	assert.Empty(t, first.calls)
	assert.Len(t, second.calls, 1)
}

func Test_SinkMap_Snapshot(t *testing.T) {
	m := NewSinkMap(nil)
	snap := m.Snapshot()
	assert.Len(t, snap, len(AllLevels()))
	for level, s := range snap {
		assert.NotNil(t, s, level.String())
	}
}

package lgr

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MetricsHook(t *testing.T) {
	hook := NewMetricsHook("test")
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(hook))

	l, _, _ := newTestLogger(t, WithHooks(hook), WithLevel(LVL_WARN))
	l.Info("suppressed")
	l.Warn("a")
	l.Warn("b")
	l.Error("c")
	l.Print("d")

	assert.Equal(t, 2.0, testutil.ToFloat64(hook.Counter(LVL_WARN)))
	assert.Equal(t, 1.0, testutil.ToFloat64(hook.Counter(LVL_ERROR)))
	assert.Equal(t, 1.0, testutil.ToFloat64(hook.Counter(LVL_LOG)))
	assert.Equal(t, 0.0, testutil.ToFloat64(hook.Counter(LVL_INFO)))
	// Counter(LVL_INFO) above materializes a zero series
	assert.Equal(t, 4, testutil.CollectAndCount(hook))
}

package zaptrace

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aglyzov/go-inftable/inftable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer(t *testing.T) {
	t.Parallel()

	var (
		core, logs = observer.New(zapcore.DebugLevel)
		tab        = inftable.New[int](inftable.WithTracer(New(zap.New(core))))
	)

	require.NoError(t, tab.Insert("leg", 1))
	require.NoError(t, tab.Insert("lin", 2))
	require.NoError(t, tab.Insert("l", 3))
	require.NoError(t, tab.Delete("lin"))
	require.NoError(t, tab.Delete("l"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "split", entries[0].Message)
	assert.Equal(t, "inftable", entries[0].LoggerName)
	assert.Equal(t, map[string]interface{}{
		"level":    int64(0),
		"slot":     "l",
		"existing": "leg",
		"incoming": "lin",
	}, entries[0].ContextMap())

	assert.Equal(t, "collapse", entries[1].Message)
	assert.Equal(t, map[string]interface{}{
		"level":    int64(0),
		"slot":     "l",
		"survivor": "leg",
	}, entries[1].ContextMap())
}

func TestTracer_InfoLevel(t *testing.T) {
	t.Parallel()

	var (
		core, logs = observer.New(zapcore.InfoLevel)
		tab        = inftable.New[int](inftable.WithTracer(New(zap.New(core))))
	)

	require.NoError(t, tab.Insert("leg", 1))
	require.NoError(t, tab.Insert("lin", 2))

	assert.Zero(t, logs.Len())
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	tr := New(nil)

	assert.NotPanics(t, func() {
		tr.OnSplit(0, inftable.TerminalSlot, "a", "b")
		tr.OnCollapse(1, 0, "a")
	})
	assert.Equal(t, "$", slotName(inftable.TerminalSlot))
	assert.Equal(t, "z", slotName(25))
}

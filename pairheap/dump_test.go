package pairheap

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeydub/go-pairheap/service/logger"
)

func TestDumpContents(t *testing.T) {
	var hook *test.Hook
	logger.SetLoggerOptions(func(l *logrus.Logger) {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.DebugLevel)
		hook = test.NewLocal(l)
	})
	t.Cleanup(func() {
		logger.SetLoggerOptions(func(l *logrus.Logger) {
			l.ReplaceHooks(make(logrus.LevelHooks))
			l.SetLevel(logrus.InfoLevel)
		})
	})

	t.Run("should log a summary and one entry per slot", func(t *testing.T) {
		hook.Reset()

		h := New()
		require.NoError(t, h.Insert(10, 5))
		require.NoError(t, h.Insert(20, 3))
		require.NoError(t, h.Insert(30, 8))

		h.DumpContents(context.Background())

		entries := hook.AllEntries()
		require.Len(t, entries, 4)

		assert.Equal(t, "heap contents", entries[0].Message)
		assert.Equal(t, 3, entries[0].Data["size"])
		assert.Equal(t, 10, entries[0].Data["capacity"])

		for i, e := range entries[1:] {
			assert.Equal(t, "heap slot", e.Message)
			assert.Equal(t, i, e.Data["pos"])
		}

		// the minimum priority pair is always at position 0
		assert.Equal(t, 3, entries[1].Data["priority"])
		assert.Equal(t, 20, entries[1].Data["element"])
	})

	t.Run("should carry fields attached to the context", func(t *testing.T) {
		hook.Reset()

		ctx := logger.NewContextWithFields(context.Background(), logrus.Fields{"component": "scheduler"})
		New().DumpContents(ctx)

		entries := hook.AllEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, "scheduler", entries[0].Data["component"])
	})
}

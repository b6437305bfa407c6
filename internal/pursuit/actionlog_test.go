package pursuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLog_Since(t *testing.T) {
	// Given: a log with three events
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	log := NewActionLog(func() time.Time { return fixed })
	log.Append(EventJoined, "a", "one")
	log.Append(EventMoved, "a", "two")
	log.Append(EventMoved, "a", "three")

	t.Run("Returns the tail after seq", func(t *testing.T) {
		events := log.Since(1)

		require.Len(t, events, 2)
		assert.Equal(t, 2, events[0].Seq)
		assert.Equal(t, "three", events[1].Text)
		assert.Equal(t, fixed, events[1].Time)
	})

	t.Run("Returns nothing when caught up", func(t *testing.T) {
		assert.Empty(t, log.Since(3))
		assert.Empty(t, log.Since(10))
	})

	t.Run("Negative seq means everything", func(t *testing.T) {
		assert.Len(t, log.Since(-5), 3)
	})

	t.Run("Returned slice does not alias the log", func(t *testing.T) {
		events := log.Since(0)
		events[0].Text = "changed"

		assert.Equal(t, "one", log.Since(0)[0].Text)
	})
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

func TestResolveClass(t *testing.T) {
	t.Run("flag wins over hostname", func(t *testing.T) {
		class, err := resolveClass("pokemon", "trainer1")

		require.NoError(t, err)
		assert.Equal(t, entity.Evader, class)
	})

	t.Run("hostname prefix", func(t *testing.T) {
		class, err := resolveClass("", "trainer2")

		require.NoError(t, err)
		assert.Equal(t, entity.Seeker, class)
	})

	t.Run("unknown hostname", func(t *testing.T) {
		_, err := resolveClass("", "laptop")

		assert.Error(t, err)
	})
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "pokemon3", defaultName(entity.Evader, "pokemon3"))

	name := defaultName(entity.Seeker, "laptop")
	assert.True(t, strings.HasPrefix(name, "trainer-"))
	assert.Len(t, name, len("trainer-")+8)
}

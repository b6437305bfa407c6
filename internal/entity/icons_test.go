package entity

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconPool_Allocate(t *testing.T) {
	t.Run("Hands out every icon exactly once", func(t *testing.T) {
		// Given: a pool of three icons
		pool := NewIconPool([]string{"a", "b", "c"})
		rng := rand.New(rand.NewSource(1))

		// When: allocating three times
		got := map[string]bool{}
		for n := 0; n < 3; n++ {
			icon, err := pool.Allocate(rng)
			require.NoError(t, err)
			got[icon] = true
		}

		// Then: all three icons were handed out and the pool is drained
		assert.Len(t, got, 3)
		assert.Zero(t, pool.Available())
	})

	t.Run("Returns ErrPoolExhausted when empty", func(t *testing.T) {
		// Given: a pool with a single icon already allocated
		pool := NewIconPool([]string{"a"})
		rng := rand.New(rand.NewSource(1))
		_, err := pool.Allocate(rng)
		require.NoError(t, err)

		// When: allocating again
		_, err = pool.Allocate(rng)

		// Then: the pool reports exhaustion
		require.ErrorIs(t, err, apperror.ErrPoolExhausted)
	})

	t.Run("Drops duplicate and empty icons", func(t *testing.T) {
		// Given: a list with duplicates and an empty marker
		pool := NewIconPool([]string{"a", "a", "", "b"})

		// Then: only distinct icons count
		assert.Equal(t, 2, pool.Size())
	})
}

func TestDefaultIconPoolsAreDisjoint(t *testing.T) {
	seekers := map[string]bool{}
	for _, icon := range DefaultSeekerIcons {
		seekers[icon] = true
	}

	for _, icon := range DefaultEvaderIcons {
		assert.False(t, seekers[icon], "icon %s in both pools", icon)
	}
}

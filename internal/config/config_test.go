package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the board size
		path := writeConfig(t, "game:\n  board-size: 8\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest comes from env-default tags
		require.NoError(t, err)
		assert.Equal(t, 8, conf.Game.BoardSize)
		assert.Equal(t, 5, conf.Game.ExpectedPokemon)
		assert.Equal(t, time.Second, conf.Game.RenderInterval)
		assert.Equal(t, "50051", conf.SocketPort)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 0, conf.Redis.DB)
		assert.Equal(t, 5*time.Second, conf.Redis.DialTimeout)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env override
		path := writeConfig(t, "game:\n  board-size: 8\n  expected-pokemon: 2\n")
		t.Setenv("EXPECTED_POKEMON", "7")

		// When: loading it
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, 7, conf.Game.ExpectedPokemon)
	})

	t.Run("Rejects a negative board", func(t *testing.T) {
		path := writeConfig(t, "game:\n  board-size: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "nope.yml"))
		})
	})
}

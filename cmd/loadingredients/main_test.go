package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	t.Cleanup(func() {
		file, clean = defaultFile, false
	})

	t.Run("defaults", func(t *testing.T) {
		require.NoError(t, rootCmd.ParseFlags(nil))
		assert.Equal(t, defaultFile, file)
		assert.False(t, clean)
	})

	t.Run("file and clean", func(t *testing.T) {
		require.NoError(t, rootCmd.ParseFlags([]string{"--file", "/tmp/ingredients.csv", "--clean"}))
		assert.Equal(t, "/tmp/ingredients.csv", file)
		assert.True(t, clean)
	})

	t.Run("short file flag", func(t *testing.T) {
		require.NoError(t, rootCmd.ParseFlags([]string{"-f", "other.csv"}))
		assert.Equal(t, "other.csv", file)
	})

	t.Run("unknown flag", func(t *testing.T) {
		assert.Error(t, rootCmd.ParseFlags([]string{"--dry-run"}))
	})

	t.Run("positional arguments rejected", func(t *testing.T) {
		assert.Error(t, rootCmd.Args(rootCmd, []string{"ingredients.csv"}))
	})
}

package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writes every unit", func(t *testing.T) {
		dir := t.TempDir()
		units := []*Unit{
			{Name: "a", Dir: filepath.Join(dir, "pkg"), File: "nativecom_a.go", Content: []byte("package pkg\n")},
			{Name: "b", Dir: dir, File: "nativecom_server.go", Content: []byte("package main\n")},
		}

		err := NewWriter().WithWorkers(2).Write(context.Background(), units)
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, "pkg", "nativecom_a.go"))
		require.NoError(t, err)
		assert.Equal(t, "package pkg\n", string(got))
		got, err = os.ReadFile(filepath.Join(dir, "nativecom_server.go"))
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(got))
	})

	t.Run("rejects duplicate unit names before writing", func(t *testing.T) {
		dir := t.TempDir()
		units := []*Unit{
			{Name: "dup", Dir: dir, File: "one.go", Content: []byte("package a\n")},
			{Name: "dup", Dir: dir, File: "two.go", Content: []byte("package a\n")},
		}

		err := NewWriter().Write(context.Background(), units)
		require.ErrorIs(t, err, ErrGenerationFailed)

		entries, rerr := os.ReadDir(dir)
		require.NoError(t, rerr)
		assert.Empty(t, entries, "nothing may touch disk on a collision")
	})
}

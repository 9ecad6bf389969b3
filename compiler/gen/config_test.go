package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.Target)
		assert.Equal(t, "main", cfg.Package)
		assert.Equal(t, DefaultHeader, cfg.Header)
		assert.False(t, cfg.SkipEntryPoints)
		assert.NotNil(t, cfg.Reporter)
	})

	t.Run("options", func(t *testing.T) {
		r := &Reporter{}
		cfg, err := NewConfig(
			WithTarget("./server"),
			WithPackage("server"),
			WithHeader("Code generated by nativecom, build tag v2. DO NOT EDIT."),
			WithoutEntryPoints(),
			WithReporter(r),
		)
		require.NoError(t, err)
		assert.Equal(t, "./server", cfg.Target)
		assert.Equal(t, "server", cfg.Package)
		assert.True(t, cfg.SkipEntryPoints)
		assert.Same(t, r, cfg.Reporter)
	})

	t.Run("rejected values", func(t *testing.T) {
		for _, opt := range []Option{
			WithTarget(""),
			WithPackage(""),
			WithHeader(""),
			WithReporter(nil),
		} {
			_, err := NewConfig(opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			var cerr *ConfigError
			assert.True(t, errors.As(err, &cerr))
		}
	})
}

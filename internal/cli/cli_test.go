package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.Equal(t, "nativecom", cmd.Name())

	sub, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)
	require.Equal(t, "generate", sub.Name())

	require.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	for _, name := range []string{"dir", "out", "package", "header", "skip-entry-points", "config", "watch"} {
		require.NotNil(t, sub.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(
			"target: ./server\npackage: comserver\nheader: Custom header.\nskip_entry_points: true\n",
		), 0o644))

		cfg, err := LoadFileConfig(path, true)
		require.NoError(t, err)
		require.Equal(t, "./server", cfg.Target)
		require.Equal(t, "comserver", cfg.Package)
		require.Equal(t, "Custom header.", cfg.Header)
		require.True(t, cfg.SkipEntryPoints)
	})
	t.Run("missing implicit", func(t *testing.T) {
		cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), DefaultConfigFile), false)
		require.NoError(t, err)
		require.Equal(t, &FileConfig{}, cfg)
	})
	t.Run("missing explicit", func(t *testing.T) {
		_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
		require.Error(t, err)
	})
	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("target: [\n"), 0o644))
		_, err := LoadFileConfig(path, true)
		require.Error(t, err)
	})
}

func TestResolveOptions(t *testing.T) {
	newOpts := func(t *testing.T) (*GenerateOptions, *pflag.FlagSet) {
		t.Helper()
		cmd := NewGenerateCommand(&RootOptions{})
		opts := &GenerateOptions{root: &RootOptions{}, Dir: t.TempDir()}
		return opts, cmd.Flags()
	}

	t.Run("file values apply", func(t *testing.T) {
		opts, flags := newOpts(t)
		path := filepath.Join(opts.Dir, DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("package: comserver\nskip_entry_points: true\n"), 0o644))

		genOpts, err := resolveOptions(flags, opts)
		require.NoError(t, err)
		require.Equal(t, "comserver", opts.Package)
		require.True(t, opts.SkipEntryPoints)
		require.Len(t, genOpts, 3)
	})

	t.Run("flags win over file", func(t *testing.T) {
		opts, flags := newOpts(t)
		path := filepath.Join(opts.Dir, DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("package: fromfile\n"), 0o644))
		require.NoError(t, flags.Set("package", "fromflag"))
		opts.Package = "fromflag"

		_, err := resolveOptions(flags, opts)
		require.NoError(t, err)
		require.Equal(t, "fromflag", opts.Package)
	})

	t.Run("out defaults to dir", func(t *testing.T) {
		opts, flags := newOpts(t)
		genOpts, err := resolveOptions(flags, opts)
		require.NoError(t, err)
		require.Len(t, genOpts, 1)
	})
}

func TestWatchable(t *testing.T) {
	require.True(t, watchable("widget.go"))
	require.True(t, watchable(filepath.Join("pkg", "widget.go")))
	require.False(t, watchable("nativecom_widget_factory.go"))
	require.False(t, watchable("nativecom_server.go"))
	require.False(t, watchable("README.md"))
}

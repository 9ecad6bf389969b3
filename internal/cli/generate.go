package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bluehill/nativecom/compiler"
	"github.com/bluehill/nativecom/compiler/gen"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	root *RootOptions

	Dir             string
	Out             string
	Package         string
	Header          string
	SkipEntryPoints bool
	ConfigFile      string
	Watch           bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(root *RootOptions) *cobra.Command {
	opts := &GenerateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate class-factory and dispatch glue for the given packages",
		Long: "Scans the packages matching the given patterns (default ./...) for\n" +
			"factory declarations and generates their activation glue alongside\n" +
			"the shared dispatch module.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", ".", "directory the package patterns are resolved in")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "directory the dispatch module is written to (default the scan directory)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the dispatch module")
	cmd.Flags().StringVar(&opts.Header, "header", "", "header comment for generated files")
	cmd.Flags().BoolVar(&opts.SkipEntryPoints, "skip-entry-points", false, "do not emit the exported entry points")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default <dir>/"+DefaultConfigFile+")")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "watch the scanned directories and regenerate on change")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	genOpts, err := resolveOptions(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	run := func() error {
		reporter := &gen.Reporter{}
		err := compiler.GenerateContext(cmd.Context(), opts.Dir, patterns,
			append(genOpts, gen.WithReporter(reporter))...)
		for _, d := range reporter.Diagnostics() {
			fmt.Fprintln(cmd.ErrOrStderr(), d)
		}
		if err == nil && opts.root.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "nativecom: generated glue for %s\n", opts.Dir)
		}
		return err
	}

	if !opts.Watch {
		return run()
	}
	return watch(cmd.Context(), opts.Dir, run, func(format string, args ...any) {
		if opts.root.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	})
}

// resolveOptions merges the optional config file with the command line
// flags. Flags that were set explicitly win over file values.
func resolveOptions(flags *pflag.FlagSet, opts *GenerateOptions) ([]gen.Option, error) {
	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(opts.Dir, DefaultConfigFile)
	}
	file, err := LoadFileConfig(path, explicit)
	if err != nil {
		return nil, err
	}

	if !flags.Changed("out") && file.Target != "" {
		opts.Out = file.Target
	}
	if !flags.Changed("package") && file.Package != "" {
		opts.Package = file.Package
	}
	if !flags.Changed("header") && file.Header != "" {
		opts.Header = file.Header
	}
	if !flags.Changed("skip-entry-points") && file.SkipEntryPoints {
		opts.SkipEntryPoints = true
	}

	target := opts.Out
	if target == "" {
		target = opts.Dir
	}
	genOpts := []gen.Option{gen.WithTarget(target)}
	if opts.Package != "" {
		genOpts = append(genOpts, gen.WithPackage(opts.Package))
	}
	if opts.Header != "" {
		genOpts = append(genOpts, gen.WithHeader(opts.Header))
	}
	if opts.SkipEntryPoints {
		genOpts = append(genOpts, gen.WithoutEntryPoints())
	}
	return genOpts, nil
}

// Package cli implements the nativecom command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the nativecom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "nativecom",
		Short:         "Generator for in-process component server glue code",
		Long:          "nativecom generates the class-factory forwarding code and the\nDllGetClassObject/DllCanUnloadNow dispatch module a binary-activatable,\nin-process component server needs.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}

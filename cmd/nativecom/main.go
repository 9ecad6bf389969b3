// Command nativecom generates the activation glue an in-process
// component server needs from declarative factory associations.
package main

import (
	"os"

	"github.com/bluehill/nativecom/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

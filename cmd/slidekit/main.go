// Command slidekit is the CLI entry point: a terminal card carousel toolkit
// with an interactive catalog demo.
package main

import (
	"fmt"
	"os"

	"github.com/slidekit/slidekit/internal/cli"
	"github.com/slidekit/slidekit/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to an exit code. Separated
// from main so deferred cleanup inside commands runs before os.Exit.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

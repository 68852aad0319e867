// Command atlasd serves and browses a country directory.
package main

import (
	"os"

	"github.com/rshade/atlasd/internal/cli"
	"github.com/rshade/atlasd/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its error to an exit code.
func run(args []string) int {
	root := cli.NewRootCmd(version.Get())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// Package main is the entry point for the lean CLI.
package main

import (
	"fmt"
	"os"

	"github.com/leanwork/lean/internal/app"
	"github.com/leanwork/lean/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
}

// run executes the command line and returns the process exit code.
// Errors are reported as "Error: <msg>" followed by the usage of the failing command.
func run(args []string, streams app.Streams) int {
	container, err := app.New(streams)
	if err != nil {
		_, _ = fmt.Fprintf(streams.Err, "Error: failed to initialize: %v\n", err)
		return 1
	}

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		_, _ = fmt.Fprintf(streams.Err, "Error: %v\n", err)
		_, _ = fmt.Fprint(streams.Err, cmd.UsageString())
		return 1
	}
	return 0
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	earcut "github.com/rclancey/polytri"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "earcuttool",
	Short: "triangulate polygons from the command line",
	Long: `earcuttool is the command-line front end for the polytri
triangulation library:
	- triangulate a flat vertex/hole list read from JSON,
	- flatten a nested ring representation into that flat form,
	- run a batch of polygons described in a YAML file.`,
}

var debug bool

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable finite-coordinate assertions and print a ring dump to stderr on every recovery-pass escalation")
}

// debugOptions builds the Options every subcommand that triangulates
// should pass through, wiring the -debug flag to both the finite-
// coordinate assertion and a DumpRing-printing escalation hook.
func debugOptions() []earcut.Option {
	if !debug {
		return nil
	}
	return []earcut.Option{
		earcut.WithAssertFinite(true),
		earcut.WithDebugHook(func(pass int, dump string) {
			fmt.Fprintf(os.Stderr, "earcuttool: escalating to recovery pass %d:\n%s", pass, dump)
		}),
	}
}

// Execute adds all child commands to the root command and runs it. It
// is called by main.main and only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rclancey/polytri/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "triangulate every polygon named in a YAML batch file",
	Long: `Read a batch configuration file in YAML format, triangulate
every polygon it lists and print a one-line summary per polygon. A
polygon whose deviation exceeds the configured tolerance, or that
fails outright, is reported as failed but does not stop the rest of
the batch.`,
	Args: cobra.ExactArgs(1),
	Run:  doBatch,
}

var toleranceVal float64

func init() {
	RootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Float64Var(&toleranceVal, "tolerance", 1e-6, "maximum acceptable deviation before a polygon is reported as failed")
}

func doBatch(c *cobra.Command, args []string) {
	cfg, err := batch.Load(args[0])
	check(err)

	if c.Flags().Changed("tolerance") {
		cfg.Tolerance = toleranceVal
	}

	results, err := batch.Run(cfg, debugOptions()...)
	check(err)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("%s: FAILED: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("%s: %d triangles, deviation %g\n", r.Name, len(r.Triangles)/3, r.Deviation)
	}
	if failed > 0 {
		fmt.Printf("%d of %d polygons failed\n", failed, len(results))
		os.Exit(1)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	earcut "github.com/rclancey/polytri"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten FILE",
	Short: "flatten a nested ring polygon into earcut's flat form",
	Long: `Read a polygon from FILE as a JSON array of rings (outer ring
first, then each hole, each ring an array of [x, y] points) and print
the flattened vertices/holeIndices JSON that triangulate accepts.`,
	Args: cobra.ExactArgs(1),
	Run:  doFlatten,
}

func init() {
	RootCmd.AddCommand(flattenCmd)
}

func doFlatten(c *cobra.Command, args []string) {
	buf, err := ioutil.ReadFile(args[0])
	check(err)

	var nested [][][]float64
	check(json.Unmarshal(buf, &nested))

	vertices, holeIndices, dims := earcut.Flatten(nested)
	out, err := json.Marshal(polygonFile{Vertices: vertices, HoleIndices: holeIndices})
	check(err)

	fmt.Printf("%s\n", out)
	if dims != 2 {
		fmt.Fprintf(c.ErrOrStderr(), "earcuttool: warning, flattened ring has %d dimensions per vertex\n", dims)
	}
}

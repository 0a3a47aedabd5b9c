package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	earcut "github.com/rclancey/polytri"
)

// polygonFile is the JSON shape triangulateCmd reads: a flat vertex
// array plus the hole start indices, mirroring Earcut's own argument
// shape instead of inventing a new one.
type polygonFile struct {
	Vertices    []float64 `json:"vertices"`
	HoleIndices []int     `json:"holeIndices,omitempty"`
}

var (
	dimsVal          int
	hashThresholdVal int
)

var triangulateCmd = &cobra.Command{
	Use:   "triangulate FILE",
	Short: "triangulate a polygon described in a JSON file",
	Long: `Read a polygon's flat vertex and hole-index arrays from FILE
(JSON) and print the resulting triangle vertex indices, one triangle
per line, to standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doTriangulate,
}

func init() {
	RootCmd.AddCommand(triangulateCmd)
	triangulateCmd.Flags().IntVar(&dimsVal, "dims", 2, "coordinates per vertex")
	triangulateCmd.Flags().IntVar(&hashThresholdVal, "hash-threshold", 0, "float-count cutoff for z-order hashing (0 keeps the library default)")
}

func doTriangulate(c *cobra.Command, args []string) {
	buf, err := ioutil.ReadFile(args[0])
	check(err)

	var pf polygonFile
	check(json.Unmarshal(buf, &pf))

	opts := debugOptions()
	if hashThresholdVal > 0 {
		opts = append(opts, earcut.WithHashThreshold(hashThresholdVal))
	}

	tri, err := earcut.Triangulate(pf.Vertices, pf.HoleIndices, dimsVal, opts...)
	check(err)

	for i := 0; i < len(tri); i += 3 {
		fmt.Printf("%d %d %d\n", tri[i], tri[i+1], tri[i+2])
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "earcuttool: %v\n", err)
		os.Exit(1)
	}
}

// Package parse handles the BAI parse-and-inspect command
package parse

import (
	"fmt"

	"fjacquet/bai-csv/cmd/root"
	"fjacquet/bai-csv/internal/baiparser"
	"fjacquet/bai-csv/internal/fileutils"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a BAI file and print the assembled document",
	Long: `Parse a BAI cash-management file and print an indented rendering of the
assembled document for inspection. With --output the rendering is written to
a file instead of stdout.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Parsing BAI file: %s", root.SharedFlags.Input)

	in := root.OpenInput()
	defer func() {
		if err := in.Close(); err != nil {
			root.Log.Warnf("Failed to close input file: %v", err)
		}
	}()

	file, err := baiparser.ParseWithOptions(in, root.ParseOptions(), root.Logger)
	if err != nil {
		root.Log.Fatalf("Error parsing BAI file: %v", err)
	}

	rendered := file.Render()
	if root.SharedFlags.Output == "" {
		fmt.Print(rendered)
		return
	}
	if err := fileutils.WriteFile(root.SharedFlags.Output, []byte(rendered)); err != nil {
		root.Log.Fatalf("Error writing rendering: %v", err)
	}
	root.Log.Infof("Wrote document rendering to %s", root.SharedFlags.Output)
}

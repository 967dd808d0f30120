// Package convert handles the BAI to CSV conversion command
package convert

import (
	"fjacquet/bai-csv/cmd/root"
	"fjacquet/bai-csv/internal/baiparser"
	"fjacquet/bai-csv/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a BAI file to CSV",
	Long: `Convert a BAI cash-management file into the standardized CSV format:
one row per transaction detail, with its group and account context and the
amount resolved through the currency cascade.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input BAI file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file given, use --output")
	}

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

	if err := export.WriteTransactionsToCSV(file, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Info("BAI to CSV conversion completed successfully!")
}

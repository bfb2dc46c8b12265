// Package parse handles single-statement processing commands.
package parse

import (
	"github.com/spf13/cobra"

	"rkapoor/cardstmt/cmd/root"
)

var (
	csvFile        string
	textInput      bool
	normalizeDates bool
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a credit card statement",
	Long: `Parse a credit card statement PDF (or a pre-extracted text file with
--text) and print the extracted fields as JSON, or write them to the file
given with --output.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVar(&csvFile, "csv", "", "Also write the transaction sample as CSV to this file")
	Cmd.Flags().BoolVar(&textInput, "text", false, "Treat the input file as plain text instead of PDF")
	Cmd.Flags().BoolVar(&normalizeDates, "normalize-dates", false, "Normalize extracted dates to DD/MM/YYYY")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file must be specified with --input")
	}

	pipeline, err := root.NewPipeline(normalizeDates)
	if err != nil {
		root.Log.Fatalf("Error building processing pipeline: %v", err)
	}

	if textInput {
		err = pipeline.ProcessTextFile(root.SharedFlags.Input, root.SharedFlags.Output, csvFile)
	} else {
		err = pipeline.ProcessPDF(root.SharedFlags.Input, root.SharedFlags.Output, csvFile)
	}
	if err != nil {
		root.Log.Fatalf("Error processing statement: %v", err)
	}

	if root.SharedFlags.Output != "" {
		root.Log.Info("Statement parsing completed successfully!")
	}
}

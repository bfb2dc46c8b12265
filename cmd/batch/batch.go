// Package batch handles batch processing of statement files.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rkapoor/cardstmt/cmd/common"
	"rkapoor/cardstmt/cmd/root"
	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/textutils"
)

var normalizeDates bool

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement PDFs from a directory",
	Long: `Batch process all PDF files in an input directory and write one JSON
result per statement to the output directory. Each file is processed
independently; a failure on one file does not stop the rest.

Example:
  cardstmt batch -i statements/ -o results/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&normalizeDates, "normalize-dates", false, "Normalize extracted dates to DD/MM/YYYY")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	root.Log.Infof("Input directory: %s", inputDir)
	root.Log.Infof("Output directory: %s", outputDir)

	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	pipeline, err := root.NewPipeline(normalizeDates)
	if err != nil {
		root.Log.Fatalf("Error building processing pipeline: %v", err)
	}

	count, err := processDirectory(pipeline, inputDir, outputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch processing: %v", err)
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d statements processed.", count))
}

// processDirectory runs the pipeline over every PDF in inputDir, writing
// <name>.json into outputDir for each. It returns the number of statements
// processed successfully.
func processDirectory(pipeline *common.Pipeline, inputDir, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	var inputFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			inputFiles = append(inputFiles, entry.Name())
		}
	}

	if len(inputFiles) == 0 {
		pipeline.Log.Warn("No PDF files found in input directory")
		return 0, nil
	}

	pipeline.Log.Info("Found statements for processing",
		logging.Field{Key: logging.FieldCount, Value: len(inputFiles)})

	processed := 0
	for _, name := range inputFiles {
		inputFile := filepath.Join(inputDir, name)
		base := textutils.SanitizeFilename(strings.TrimSuffix(name, filepath.Ext(name)))
		outputFile := filepath.Join(outputDir, base+".json")

		if err := pipeline.ProcessPDF(inputFile, outputFile, ""); err != nil {
			pipeline.Log.WithError(err).Error("Failed to process statement",
				logging.Field{Key: logging.FieldInputFile, Value: inputFile})
			continue
		}
		processed++
	}

	return processed, nil
}

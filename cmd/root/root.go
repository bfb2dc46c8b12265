// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rkapoor/cardstmt/cmd/common"
	"rkapoor/cardstmt/internal/config"
	"rkapoor/cardstmt/internal/export"
	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/patterns"
	"rkapoor/cardstmt/internal/pdftext"
	"rkapoor/cardstmt/internal/statement"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun has executed.
	Cfg *config.Config

	// SharedFlags holds flag values common to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "cardstmt",
		Short: "Extract structured data from credit card statements.",
		Long: `cardstmt extracts the issuer, masked card number, billing cycle,
payment due date, total amount due and a sample of transactions from
credit card statement PDFs, and exports them as JSON or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cardstmt!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
}

// GetLogger returns the configured logger wrapped in the logging interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// LoadPatternTable returns the pattern table the parser should use: the
// file named in configuration when present, the built-in table otherwise.
func LoadPatternTable() (*patterns.Table, error) {
	if Cfg != nil && Cfg.Parser.PatternsFile != "" {
		return patterns.LoadFile(Cfg.Parser.PatternsFile)
	}
	return patterns.Default(), nil
}

// NewPipeline assembles the processing pipeline from the loaded
// configuration. normalizeDates comes from the command flag and overrides
// the configured default when true.
func NewPipeline(normalizeDates bool) (*common.Pipeline, error) {
	table, err := LoadPatternTable()
	if err != nil {
		return nil, err
	}

	logger := GetLogger()

	parserOpts := []statement.Option{statement.WithLogger(logger)}
	maxFileSizeMB := int64(0)
	writerOpts := []export.WriterOption{export.WithWriterLogger(logger)}
	extractorOpts := []pdftext.ExtractorOption{pdftext.WithExtractorLogger(logger)}

	if Cfg != nil {
		parserOpts = append(parserOpts, statement.WithMaxTransactions(Cfg.Parser.MaxTransactions))
		maxFileSizeMB = Cfg.PDF.MaxFileSizeMB
		writerOpts = append(writerOpts, export.WithPretty(Cfg.Export.Pretty))
		if Cfg.Export.CSVDelimiter != "" {
			writerOpts = append(writerOpts,
				export.WithCSVDelimiter([]rune(Cfg.Export.CSVDelimiter)[0]))
		}
		extractorOpts = append(extractorOpts,
			pdftext.WithPdftotextFallback(Cfg.PDF.PdftotextFallback))
		normalizeDates = normalizeDates || Cfg.Parser.NormalizeDates
	}

	return &common.Pipeline{
		Extractor:      pdftext.NewPDFExtractor(extractorOpts...),
		Parser:         statement.NewParser(table, parserOpts...),
		Writer:         export.NewWriter(writerOpts...),
		Log:            logger,
		MaxFileSizeMB:  maxFileSizeMB,
		NormalizeDates: normalizeDates,
	}, nil
}

package root_test

import (
	"testing"

	"rkapoor/cardstmt/cmd/root"
	"rkapoor/cardstmt/internal/config"
	"rkapoor/cardstmt/internal/patterns"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "cardstmt", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "credit card statements")
	assert.Contains(t, root.Cmd.Long, "billing cycle")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Equal(t, "", inputFlag.DefValue)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "", outputFlag.DefValue)
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}
	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestLoadPatternTable_Default(t *testing.T) {
	original := root.Cfg
	defer func() { root.Cfg = original }()
	root.Cfg = nil

	table, err := root.LoadPatternTable()
	require.NoError(t, err)
	assert.Equal(t, patterns.Default().IssuerNames(), table.IssuerNames())
}

func TestLoadPatternTable_MissingFile(t *testing.T) {
	original := root.Cfg
	defer func() { root.Cfg = original }()
	root.Cfg = &config.Config{}
	root.Cfg.Parser.PatternsFile = "does-not-exist.yaml"

	_, err := root.LoadPatternTable()
	assert.Error(t, err)
}

func TestNewPipeline(t *testing.T) {
	original := root.Cfg
	defer func() { root.Cfg = original }()
	root.Cfg = &config.Config{}
	root.Cfg.Parser.MaxTransactions = 5
	root.Cfg.PDF.MaxFileSizeMB = 10
	root.Cfg.Export.CSVDelimiter = ","

	pipeline, err := root.NewPipeline(true)
	require.NoError(t, err)
	assert.NotNil(t, pipeline.Extractor)
	assert.NotNil(t, pipeline.Parser)
	assert.NotNil(t, pipeline.Writer)
	assert.Equal(t, int64(10), pipeline.MaxFileSizeMB)
	assert.True(t, pipeline.NormalizeDates)
}

func TestNewPipeline_ConfiguredNormalization(t *testing.T) {
	original := root.Cfg
	defer func() { root.Cfg = original }()
	root.Cfg = &config.Config{}
	root.Cfg.Parser.NormalizeDates = true

	pipeline, err := root.NewPipeline(false)
	require.NoError(t, err)
	assert.True(t, pipeline.NormalizeDates)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, root.GetLogger())
}

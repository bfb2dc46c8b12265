package pdftext

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/parsererror"
)

func TestMockExtractor(t *testing.T) {
	mock := NewMockExtractor("HDFC Bank statement text", nil)

	text, err := mock.ExtractText("any.pdf")
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank statement text", text)
}

func TestMockExtractorError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := NewMockExtractor("", wantErr)

	_, err := mock.ExtractText("any.pdf")
	assert.Equal(t, wantErr, err)
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewPDFExtractor(
		WithExtractorLogger(&logging.MockLogger{}),
		WithPdftotextFallback(false),
	)

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"too short", "HDFC Bank", false},
		{
			"readable statement text",
			"HDFC Bank credit card statement for the period 01/01/2024 to 31/01/2024, total amount due Rs. 12,345.67",
			true,
		},
		{
			"mostly undecodable",
			strings.Repeat("�", 40),
			false,
		},
		{"whitespace only", strings.Repeat(" \n\t", 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isReadableText(tc.text))
		})
	}
}

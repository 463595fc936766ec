package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("cv.pdf"))
	assert.True(t, IsPDF("CV.PDF"))
	assert.False(t, IsPDF("cv.docx"))
	assert.False(t, IsPDF("pdf"))
}

func TestParseResumeTextRejectsNonPDF(t *testing.T) {
	_, err := ParseResumeText("cv.docx", []byte("PK..."))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseResumeTextMalformedPDF(t *testing.T) {
	_, err := ParseResumeText("cv.pdf", []byte("this is not a pdf"))
	require.ErrorIs(t, err, ErrUnreadablePDF)
	assert.Contains(t, err.Error(), "pdf parsing error")
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("  a \t b\n\n\nc  "))
}

// Package questions extracts text from uploaded question sheets.
//
// Learners can attach the exercise questions that accompany a listening
// recording (as plain text, markdown, or PDF). The extracted text feeds
// the keyword ranker as auxiliary context, so keywords relevant to the
// questions get weighted higher.
//
// We use the ledongthuc/pdf library for PDF extraction. It's a pure Go
// implementation — no CGO or external dependencies required.
package questions

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxQuestionChars bounds stored question text. Sheets longer than this
// are almost certainly the wrong upload.
const MaxQuestionChars = 20000

// ExtractText pulls the question text out of an uploaded file based on
// its extension. Supported: .txt, .md, .pdf.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return clamp(strings.TrimSpace(string(data))), nil
	case ".pdf":
		if !ValidatePDF(data) {
			return "", fmt.Errorf("file %q is not a valid PDF", filename)
		}
		text, err := extractPDF(data)
		if err != nil {
			return "", err
		}
		return clamp(text), nil
	default:
		return "", fmt.Errorf("unsupported question file type %q (use .txt, .md, or .pdf)", filepath.Ext(filename))
	}
}

// extractPDF reads a PDF from memory and extracts all text content.
//
// Go Pattern: We use bytes.NewReader because the data comes from an
// HTTP upload (in memory), not a file on disk. The pdf library requires
// io.ReaderAt for random access to the PDF structure.
func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var allText strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages may have images only
			continue
		}

		if allText.Len() > 0 {
			allText.WriteString("\n")
		}
		allText.WriteString(strings.TrimSpace(text))
	}

	return strings.TrimSpace(allText.String()), nil
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

func clamp(text string) string {
	if len(text) > MaxQuestionChars {
		return text[:MaxQuestionChars]
	}
	return text
}

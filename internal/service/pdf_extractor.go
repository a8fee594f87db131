package service

import (
	"strings"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// extractPDFText extracts the visible text of every page of a PDF, in page
// order, joined by a single newline. Pages that yield no text (scanned
// images, extraction failures) are skipped rather than failing the document.
// Only an unopenable container or a zero-page document is an error.
func extractPDFText(data []byte, logger domain.Logger) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open PDF document", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		return "", apperrors.NewExtractionError("PDF document has no pages", nil)
	}

	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			logger.Debug("Skipping page with no extractable text", "page", pageNum+1, "total", numPages)
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

package service

import (
	"path/filepath"
	"strings"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"
)

// ResumeTextExtractor implements domain.TextExtractor, dispatching on the
// uploaded file's extension. PDF and DOCX have real extractors; legacy .doc
// passes the upload allow-list but cannot be parsed here.
type ResumeTextExtractor struct {
	logger domain.Logger
}

// NewResumeTextExtractor creates a new document text extractor
func NewResumeTextExtractor(logger domain.Logger) *ResumeTextExtractor {
	return &ResumeTextExtractor{logger: logger}
}

// ExtractText returns the concatenated visible text of the document.
func (e *ResumeTextExtractor) ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data, e.logger)
	case ".docx":
		return extractDocxText(data)
	case ".doc":
		return "", apperrors.NewExtractionError("legacy .doc is not supported, convert to PDF or DOCX", domain.ErrUnsupportedFormat)
	default:
		return "", apperrors.NewExtractionError("unsupported document format", domain.ErrUnsupportedFormat)
	}
}

package service

import (
	"bytes"
	"regexp"
	"strings"

	apperrors "resume-parser-api/pkg/errors"

	"github.com/nguyenthenguyen/docx"
)

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDocxText extracts plain text from a DOCX document. The library
// returns WordprocessingML, so paragraph and tab markers are mapped to
// newlines/tabs before the remaining tags are stripped.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open DOCX document", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = docxTagRe.ReplaceAllString(content, " ")

	return strings.TrimSpace(content), nil
}

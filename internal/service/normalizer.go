package service

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	bulletRe   = regexp.MustCompile(`[ \t]*[•*\-◦▪‣·🔹][ \t]*`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans extracted resume text for prompting. Rules, in order:
// collapse runs of spaces/tabs to one space, canonicalize bullet glyphs to
// " • ", collapse three or more newlines to two, trim the whole text.
// Pure and idempotent: NormalizeText(NormalizeText(x)) == NormalizeText(x).
func NormalizeText(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = bulletRe.ReplaceAllString(text, " • ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

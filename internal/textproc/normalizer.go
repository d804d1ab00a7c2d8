package textproc

import (
	"regexp"
	"strings"
)

var (
	// Sound references like [sound:haus_12.mp3]. Must be removed before
	// generic bracket stripping so they are not treated as annotations.
	soundTagPattern = regexp.MustCompile(`\[sound:[^\]]+\]`)

	// Remaining bracketed annotations, e.g. phonetic transcriptions
	bracketPattern = regexp.MustCompile(`\[[^\]]*\]`)

	// HTML tags like <strong> or <div>
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

	// Anything outside German letters and whitespace
	nonLetterPattern = regexp.MustCompile(`[^a-zA-ZäöüßÄÖÜ\s]`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw card field by removing sound references, bracketed
// annotations, HTML tags and any character outside the German alphabet.
// Consecutive whitespace is collapsed and the result is trimmed. A fully
// stripped input yields an empty string.
func Normalize(text string) string {
	text = soundTagPattern.ReplaceAllString(text, "")
	text = bracketPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = nonLetterPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

package textproc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerGerman folds a string to lower case using German casing rules
func LowerGerman(s string) string {
	return cases.Lower(language.German).String(s)
}

// Tokenize lower-cases normalized text and splits it on whitespace into an
// ordered token sequence. The result may be empty.
func Tokenize(text string) []string {
	return strings.Fields(LowerGerman(text))
}

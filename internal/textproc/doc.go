// Package textproc cleans and tokenizes German text taken from Anki deck
// exports. It strips audio references, bracketed annotations and HTML markup,
// splits the remaining text into lower-case word tokens, and filters out
// stop words and single-letter tokens before frequency analysis.
package textproc

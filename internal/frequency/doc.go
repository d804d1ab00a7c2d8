// Package frequency accumulates word-occurrence counts over a filtered token
// stream and renders the resulting table as a ranked text report, an ordered
// JSON document and a text bar visualization. Ranking is deterministic:
// higher counts first, ties broken by order of first appearance in the corpus.
package frequency

// Package processor contains the core pipeline for analyzing German deck
// exports. It orchestrates corpus reading, text normalization, tokenization,
// stop-word filtering, frequency aggregation, report writing, and Anki deck
// generation. This package serves as the main coordinator between all other
// components.
package processor

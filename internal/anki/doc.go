// Package anki synthesizes flashcard records from word lists or frequency
// rankings and serializes them into Anki's tab-separated import format.
// Each card front carries a placeholder audio reference so that a TTS step
// can later attach real pronunciation files.
package anki

package anki

import (
	"fmt"

	"codeberg.org/snonux/wortschatz/internal"
)

// CardType selects the front/back markup of generated cards
type CardType string

const (
	CardTypePlain    CardType = "plain"
	CardTypeWord     CardType = "word"
	CardTypePhrase   CardType = "phrase"
	CardTypeQuestion CardType = "question"
)

// ParseCardType maps a selector string to a CardType. Unrecognized selectors
// fall back to CardTypePlain; the second return value reports whether the
// selector was known.
func ParseCardType(s string) (CardType, bool) {
	switch CardType(s) {
	case CardTypePlain, CardTypeWord, CardTypePhrase, CardTypeQuestion:
		return CardType(s), true
	}
	return CardTypePlain, false
}

// Card is a single front/back flashcard record. Cards are created by the
// Synthesizer and never mutated afterwards.
type Card struct {
	Front string
	Back  string
}

// SynthesizerOptions configures card generation
type SynthesizerOptions struct {
	CardType       CardType       // Front/back markup variant
	IncludePhrases bool           // Add practice phrase cards per word
	PhraseCategory PhraseCategory // Template family for practice phrases
	PhrasesPerWord int            // Cap on phrase cards per word
	StartSeq       int            // First value of the audio sequence counter
}

// DefaultSynthesizerOptions returns sensible defaults
func DefaultSynthesizerOptions() *SynthesizerOptions {
	return &SynthesizerOptions{
		CardType:       CardTypePlain,
		PhraseCategory: PhraseDeclarative,
		PhrasesPerWord: 2,
		StartSeq:       1,
	}
}

// Synthesizer turns words into flashcard records. Audio placeholder names
// embed a monotonic sequence counter rather than a wall-clock timestamp so
// that identical inputs produce identical decks.
type Synthesizer struct {
	options *SynthesizerOptions
	seq     int
}

// NewSynthesizer creates a card synthesizer. The options value is copied, so
// the caller's struct is never modified.
func NewSynthesizer(options *SynthesizerOptions) *Synthesizer {
	if options == nil {
		options = DefaultSynthesizerOptions()
	}
	opts := *options
	if opts.PhrasesPerWord <= 0 {
		opts.PhrasesPerWord = 2
	}
	return &Synthesizer{options: &opts, seq: opts.StartSeq}
}

// Cards produces the card records for the given words in order: one word
// card each, plus up to PhrasesPerWord practice phrase cards when phrase
// expansion is enabled.
func (s *Synthesizer) Cards(words []string) []Card {
	var cards []Card
	for _, word := range words {
		cards = append(cards, s.Card(word, ""))

		if s.options.IncludePhrases {
			phrases := PracticePhrases(word, s.options.PhraseCategory)
			if len(phrases) > s.options.PhrasesPerWord {
				phrases = phrases[:s.options.PhrasesPerWord]
			}
			for _, phrase := range phrases {
				cards = append(cards, s.phraseCard(word, phrase))
			}
		}
	}
	return cards
}

// Card creates a single card for a word. An empty translation degrades to a
// descriptive placeholder back rather than failing.
func (s *Synthesizer) Card(word, translation string) Card {
	audio := s.audioRef(word)

	switch s.options.CardType {
	case CardTypeWord:
		back := translation
		if back == "" {
			back = fmt.Sprintf("Translation for: %s", word)
		}
		return Card{Front: fmt.Sprintf("%s %s", word, audio), Back: back}

	case CardTypePhrase:
		back := fmt.Sprintf("Practice phrase with: %s", word)
		if translation != "" {
			back = fmt.Sprintf("<div>%s</div>", translation)
		}
		return Card{Front: fmt.Sprintf("<strong>%s</strong> %s", word, audio), Back: back}

	case CardTypeQuestion:
		back := translation
		if back == "" {
			back = fmt.Sprintf("Meaning of: %s", word)
		}
		front := fmt.Sprintf("<strong>Was bedeutet '%s'?</strong> %s", word, audio)
		return Card{Front: front, Back: back}

	default:
		return Card{Front: fmt.Sprintf("%s %s", word, audio), Back: translation}
	}
}

// phraseCard creates a practice phrase card in the phrase markup. The
// placeholder back references the full sentence, not just the word.
func (s *Synthesizer) phraseCard(word, phrase string) Card {
	audio := s.phraseAudioRef(word)
	return Card{
		Front: fmt.Sprintf("<strong>%s</strong> %s", phrase, audio),
		Back:  fmt.Sprintf("Practice phrase with: %s", phrase),
	}
}

func (s *Synthesizer) audioRef(word string) string {
	return fmt.Sprintf("[sound:%s_%d.mp3]", internal.SanitizeFilename(word), s.nextSeq())
}

func (s *Synthesizer) phraseAudioRef(word string) string {
	return fmt.Sprintf("[sound:phrase_%s_%d.mp3]", internal.SanitizeFilename(word), s.nextSeq())
}

func (s *Synthesizer) nextSeq() int {
	seq := s.seq
	s.seq++
	return seq
}

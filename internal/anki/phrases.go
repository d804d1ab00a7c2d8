package anki

import "fmt"

// PhraseCategory selects a family of practice sentence templates
type PhraseCategory string

const (
	PhraseDeclarative   PhraseCategory = "declarative"
	PhraseInterrogative PhraseCategory = "interrogative"
	PhraseContextual    PhraseCategory = "contextual"
)

// phraseTemplates maps each category to its ordered sentence patterns. New
// categories or languages are added by extending this table.
var phraseTemplates = map[PhraseCategory][]string{
	PhraseDeclarative: {
		"Das ist %s.",
		"Ich habe %s.",
		"Wo ist %s?",
		"Das %s ist hier.",
	},
	PhraseInterrogative: {
		"Was ist %s?",
		"Wie sagt man %s auf Englisch?",
		"Wo kann ich %s finden?",
		"Wann brauche ich %s?",
	},
	PhraseContextual: {
		"Ich suche %s.",
		"Kannst du mir %s geben?",
		"Das %s gefällt mir.",
		"Ich möchte %s lernen.",
	},
}

// PracticePhrases expands a word into the practice sentences of the given
// category. An unknown category falls back to declarative sentences.
func PracticePhrases(word string, category PhraseCategory) []string {
	templates, ok := phraseTemplates[category]
	if !ok {
		templates = phraseTemplates[PhraseDeclarative]
	}
	phrases := make([]string, len(templates))
	for i, tmpl := range templates {
		phrases[i] = fmt.Sprintf(tmpl, word)
	}
	return phrases
}

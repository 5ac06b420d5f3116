package domain

// VocabularyItem is a single record of the vocabulary dataset.
// Items are loaded once at startup and treated as read-only afterwards.
type VocabularyItem struct {
	Word           string   `json:"word" yaml:"word" validate:"required"`
	Phonetic       string   `json:"phonetic" yaml:"phonetic"`
	Meaning        string   `json:"meaning" yaml:"meaning"`
	MeaningVi      string   `json:"meaningVi" yaml:"meaningVi"`
	ShortMeaningVi string   `json:"shortMeaningVi" yaml:"shortMeaningVi" validate:"required"`
	Type           string   `json:"type" yaml:"type"`
	Example        string   `json:"example" yaml:"example"`
	ExampleMeaning string   `json:"exampleMeaning" yaml:"exampleMeaning"`
	Topic          string   `json:"topic" yaml:"topic"`
	Level          string   `json:"level" yaml:"level"`
	Synonyms       []string `json:"synonyms" yaml:"synonyms" validate:"dive,required"`
	Antonyms       []string `json:"antonyms" yaml:"antonyms" validate:"dive,required"`
}

// HasAssociations reports whether the item can be used for word association
func (v VocabularyItem) HasAssociations() bool {
	return len(v.Synonyms) > 0 || len(v.Antonyms) > 0
}

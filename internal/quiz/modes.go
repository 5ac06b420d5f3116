package quiz

import (
	"strings"

	"vocadeck/internal/domain"
)

// MultipleChoice asks for the meaning of a word or the word for a meaning.
// The three other drawn items supply the wrong options.
func (b *Builder) MultipleChoice(d Drawer) (*Question, error) {
	items := d.Draw(optionCount)
	if len(items) < optionCount {
		return nil, ErrNotEnoughCards
	}

	item, wrong := items[0], items[1:]
	q := newQuestion(domain.ModeMultipleChoice, item)

	if b.intN(2) == 0 {
		q.Direction = WordToMeaning
		q.Prompt = item.Word
		q.Answer = item.ShortMeaningVi
		q.Options = []string{item.ShortMeaningVi}
		for _, w := range wrong {
			q.Options = append(q.Options, w.ShortMeaningVi)
		}
	} else {
		q.Direction = MeaningToWord
		q.Prompt = item.ShortMeaningVi
		q.Answer = item.Word
		q.Options = []string{item.Word}
		for _, w := range wrong {
			q.Options = append(q.Options, w.Word)
		}
	}

	shuffleStrings(b, q.Options)
	return q, nil
}

// FillBlank asks the user to type the word for a meaning
func (b *Builder) FillBlank(d Drawer) (*Question, error) {
	items := d.Draw(1)
	if len(items) == 0 {
		return nil, ErrNotEnoughCards
	}

	q := newQuestion(domain.ModeFillBlank, items[0])
	q.Prompt = items[0].ShortMeaningVi
	q.Answer = items[0].Word
	return q, nil
}

// Hint returns the word with every letter replaced by an underscore
func (q *Question) Hint() string {
	return strings.Repeat("_ ", len([]rune(q.Answer)))
}

// Listening plays a word and asks which of the drawn words it was
func (b *Builder) Listening(d Drawer) (*Question, error) {
	items := d.Draw(optionCount)
	if len(items) < optionCount {
		return nil, ErrNotEnoughCards
	}

	q := newQuestion(domain.ModeListening, items[0])
	q.Prompt = items[0].Phonetic
	if q.Prompt == "" {
		q.Prompt = items[0].Meaning
	}
	q.Answer = items[0].Word
	for _, it := range items {
		q.Options = append(q.Options, it.Word)
	}

	shuffleStrings(b, q.Options)
	return q, nil
}

// WordAssociation asks for a synonym or antonym of a word from the deck.
// It samples the whole current permutation without drawing.
func (b *Builder) WordAssociation(d Drawer) (*Question, error) {
	pool := d.Snapshot()
	b.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var (
		item  domain.VocabularyItem
		found bool
	)
	for _, candidate := range pool {
		if candidate.HasAssociations() {
			item, found = candidate, true
			break
		}
	}
	if !found {
		return nil, ErrNoAssociations
	}

	q := newQuestion(domain.ModeWordAssociation, item)

	switch {
	case len(item.Synonyms) > 0 && len(item.Antonyms) > 0:
		q.Association = Synonym
		if b.intN(2) == 1 {
			q.Association = Antonym
		}
	case len(item.Synonyms) > 0:
		q.Association = Synonym
	default:
		q.Association = Antonym
	}

	answers := item.Synonyms
	if q.Association == Antonym {
		answers = item.Antonyms
	}
	q.Prompt = item.Word
	q.Answer = answers[b.intN(len(answers))]

	excluded := map[string]bool{item.Word: true}
	for _, a := range answers {
		excluded[a] = true
	}
	var candidates []string
	for _, it := range pool {
		if !excluded[it.Word] {
			candidates = append(candidates, it.Word)
			excluded[it.Word] = true
		}
	}

	q.Options = []string{q.Answer}
	for len(q.Options) < optionCount && len(candidates) > 0 {
		i := b.intN(len(candidates))
		q.Options = append(q.Options, candidates[i])
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	shuffleStrings(b, q.Options)
	return q, nil
}

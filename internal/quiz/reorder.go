package quiz

import (
	"errors"
	"strings"

	"vocadeck/internal/domain"
)

// maxReorderDraws bounds how many items are tried when some lack an example
const maxReorderDraws = 3

var ErrTokenPicked = errors.New("token already picked")

// SentenceReorder scrambles the words of an example sentence
func (b *Builder) SentenceReorder(d Drawer) (*Question, error) {
	for attempt := 0; attempt < maxReorderDraws; attempt++ {
		items := d.Draw(1)
		if len(items) == 0 {
			return nil, ErrNotEnoughCards
		}

		sentence := StripPunctuation(items[0].Example)
		tokens := strings.Fields(sentence)
		if len(tokens) == 0 {
			continue
		}

		q := newQuestion(domain.ModeSentenceReorder, items[0])
		q.Prompt = items[0].ExampleMeaning
		q.Answer = strings.Join(tokens, " ")
		q.Tokens = scramble(b, tokens)
		return q, nil
	}
	return nil, ErrNoExample
}

// StripPunctuation removes one trailing sentence mark
func StripPunctuation(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && strings.ContainsAny(s[len(s)-1:], ".?!") {
		s = s[:len(s)-1]
	}
	return s
}

// scramble shuffles tokens, retrying a few times so a sentence of more
// than one distinct word is not served already in order
func scramble(b *Builder, tokens []string) []string {
	out := append([]string(nil), tokens...)
	original := strings.Join(tokens, " ")
	for i := 0; i < 3; i++ {
		shuffleStrings(b, out)
		if strings.Join(out, " ") != original {
			break
		}
	}
	return out
}

// Pick appends the i-th scrambled token to the assembled sentence
func (q *Question) Pick(i int) error {
	if i < 0 || i >= len(q.Tokens) {
		return ErrBadOption
	}
	for _, p := range q.picked {
		if p == i {
			return ErrTokenPicked
		}
	}
	q.picked = append(q.picked, i)
	return nil
}

// Undo removes the last picked token
func (q *Question) Undo() {
	if len(q.picked) > 0 {
		q.picked = q.picked[:len(q.picked)-1]
	}
}

// Picked reports whether token i is already part of the assembled sentence
func (q *Question) Picked(i int) bool {
	for _, p := range q.picked {
		if p == i {
			return true
		}
	}
	return false
}

// Complete reports whether every token has been placed
func (q *Question) Complete() bool {
	return len(q.Tokens) > 0 && len(q.picked) == len(q.Tokens)
}

// Assembled returns the sentence built so far
func (q *Question) Assembled() string {
	words := make([]string, len(q.picked))
	for i, p := range q.picked {
		words[i] = q.Tokens[p]
	}
	return strings.Join(words, " ")
}

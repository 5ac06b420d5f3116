package quiz

import "vocadeck/internal/domain"

// FlashcardSet is a batch of cards drawn for flashcard mode
type FlashcardSet struct {
	Cards   []domain.VocabularyItem
	Index   int
	Flipped bool
}

// NewFlashcardSet draws batch cards from the deck
func NewFlashcardSet(d Drawer, batch int) (*FlashcardSet, error) {
	cards := d.Draw(batch)
	if len(cards) == 0 {
		return nil, ErrNotEnoughCards
	}
	return &FlashcardSet{Cards: cards}, nil
}

// Current returns the card on top
func (s *FlashcardSet) Current() domain.VocabularyItem {
	return s.Cards[s.Index]
}

// Next moves to the next card. It reports false on the last card.
func (s *FlashcardSet) Next() bool {
	if s.Index >= len(s.Cards)-1 {
		return false
	}
	s.Index++
	s.Flipped = false
	return true
}

// Previous moves back one card. It reports false on the first card.
func (s *FlashcardSet) Previous() bool {
	if s.Index == 0 {
		return false
	}
	s.Index--
	s.Flipped = false
	return true
}

// Flip turns the card over
func (s *FlashcardSet) Flip() {
	s.Flipped = !s.Flipped
}

// Rewind goes back to the first card
func (s *FlashcardSet) Rewind() {
	s.Index = 0
	s.Flipped = false
}

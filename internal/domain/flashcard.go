package domain

import "time"

// FlashcardStatus is the self-assessed state of a flashcard.
// It is a cosmetic tally, not a review schedule.
type FlashcardStatus string

const (
	StatusNew      FlashcardStatus = "new"
	StatusLearning FlashcardStatus = "learning"
	StatusKnown    FlashcardStatus = "known"
	StatusReview   FlashcardStatus = "review"
)

// Delay returns how far in the future the next review mark is placed
func (s FlashcardStatus) Delay() time.Duration {
	switch s {
	case StatusKnown:
		return 7 * 24 * time.Hour
	case StatusLearning:
		return 24 * time.Hour
	case StatusReview:
		return time.Hour
	default:
		return 0
	}
}

// FlashcardProgress is the tally for one word
type FlashcardProgress struct {
	UserID       int64
	Word         string
	Status       FlashcardStatus
	LastReviewed time.Time
	ReviewCount  int
	NextReview   time.Time
}

// FlashcardStats summarises progress over all words a user has marked
type FlashcardStats struct {
	Total    int
	Known    int
	Learning int
	Review   int
}

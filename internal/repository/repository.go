package repository

import (
	"time"

	"vocadeck/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	CountAuthorized() (int, error)
}

// ResultRepository defines quiz answer history operations
type ResultRepository interface {
	SaveResult(userID int64, mode domain.QuizMode, word string, correct bool) error
	GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetResultsByDate(userID int64, date time.Time) ([]domain.Result, error)
	CleanOldResults(days int) error
}

// ProgressRepository defines flashcard tally operations
type ProgressRepository interface {
	GetProgress(userID int64, word string) (*domain.FlashcardProgress, error)
	SaveProgress(p domain.FlashcardProgress) error
	ListProgress(userID int64) ([]domain.FlashcardProgress, error)
	ResetProgress(userID int64) error
}

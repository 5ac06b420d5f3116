package testutil

import (
	"fmt"
	"time"

	"vocadeck/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestItem creates a vocabulary item with an example sentence
func NewTestItem(word, meaning string) domain.VocabularyItem {
	return domain.VocabularyItem{
		Word:           word,
		ShortMeaningVi: meaning,
		MeaningVi:      meaning,
		Example:        fmt.Sprintf("I like the word %s.", word),
	}
}

// NewTestItems creates n distinct vocabulary items
func NewTestItems(n int) []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, n)
	for i := range items {
		items[i] = NewTestItem(fmt.Sprintf("word%d", i), fmt.Sprintf("nghĩa %d", i))
	}
	return items
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, answers, correct int) domain.Day {
	return domain.Day{
		Date:         date,
		AnswerCount:  answers,
		CorrectCount: correct,
	}
}

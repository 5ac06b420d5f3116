package service

import (
	"fmt"
	"time"

	"vocadeck/internal/domain"
	"vocadeck/internal/repository"

	"go.uber.org/zap"
)

// FlashcardService keeps the self-assessment tally of flashcard mode.
// It does not schedule reviews.
type FlashcardService struct {
	progressRepo repository.ProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(progressRepo repository.ProgressRepository, logger *zap.Logger) *FlashcardService {
	return &FlashcardService{
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Mark records how well the user knows a word
func (s *FlashcardService) Mark(userID int64, word string, status domain.FlashcardStatus) (*domain.FlashcardProgress, error) {
	switch status {
	case domain.StatusKnown, domain.StatusLearning, domain.StatusReview:
	default:
		return nil, fmt.Errorf("cannot mark card as %q", status)
	}

	p, err := s.progressRepo.GetProgress(userID, word)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if p == nil {
		p = &domain.FlashcardProgress{UserID: userID, Word: word, Status: domain.StatusNew}
	}

	now := s.now()
	p.Status = status
	p.LastReviewed = now
	p.ReviewCount++
	p.NextReview = now.Add(status.Delay())

	if err := s.progressRepo.SaveProgress(*p); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Debug("Flashcard marked",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.String("status", string(status)),
	)
	return p, nil
}

// Status returns the status of a word, new if never marked
func (s *FlashcardService) Status(userID int64, word string) (domain.FlashcardStatus, error) {
	p, err := s.progressRepo.GetProgress(userID, word)
	if err != nil {
		return "", err
	}
	if p == nil {
		return domain.StatusNew, nil
	}
	return p.Status, nil
}

// Stats counts marked words by status
func (s *FlashcardService) Stats(userID int64) (domain.FlashcardStats, error) {
	list, err := s.progressRepo.ListProgress(userID)
	if err != nil {
		return domain.FlashcardStats{}, err
	}

	stats := domain.FlashcardStats{Total: len(list)}
	for _, p := range list {
		switch p.Status {
		case domain.StatusKnown:
			stats.Known++
		case domain.StatusLearning:
			stats.Learning++
		case domain.StatusReview:
			stats.Review++
		}
	}
	return stats, nil
}

// Reset clears the tally of a user
func (s *FlashcardService) Reset(userID int64) error {
	if err := s.progressRepo.ResetProgress(userID); err != nil {
		return err
	}
	s.logger.Info("Flashcard progress reset", zap.Int64("user_id", userID))
	return nil
}

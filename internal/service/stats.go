package service

import (
	"fmt"
	"time"

	"vocadeck/internal/domain"
	"vocadeck/internal/repository"

	"go.uber.org/zap"
)

// Days shown per page of the history list
const daysPageSize = 7

// StatsService handles answer history and cleanup
type StatsService struct {
	resultRepo    repository.ResultRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(resultRepo repository.ResultRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		resultRepo:    resultRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// GetDaysList returns paginated list of days with answer counts
func (s *StatsService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * daysPageSize
	days, err := s.resultRepo.GetDaysWithResults(userID, daysPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.resultRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + daysPageSize - 1) / daysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetResultsByDate returns the answers of one day, dateStr in YYYYMMDD format
func (s *StatsService) GetResultsByDate(userID int64, dateStr string) ([]domain.Result, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.resultRepo.GetResultsByDate(userID, date)
}

// CleanupOldData removes answers older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old results", zap.Int("retention_days", s.retentionDays))

	if err := s.resultRepo.CleanOldResults(s.retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old results", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}

package testutil

import (
	"time"

	"vocadeck/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) CountAuthorized() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockResultRepository is a mock for ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(userID int64, mode domain.QuizMode, word string, correct bool) error {
	args := m.Called(userID, mode, word, correct)
	return args.Error(0)
}

func (m *MockResultRepository) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockResultRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockResultRepository) GetResultsByDate(userID int64, date time.Time) ([]domain.Result, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Result), args.Error(1)
}

func (m *MockResultRepository) CleanOldResults(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetProgress(userID int64, word string) (*domain.FlashcardProgress, error) {
	args := m.Called(userID, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlashcardProgress), args.Error(1)
}

func (m *MockProgressRepository) SaveProgress(p domain.FlashcardProgress) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProgressRepository) ListProgress(userID int64) ([]domain.FlashcardProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlashcardProgress), args.Error(1)
}

func (m *MockProgressRepository) ResetProgress(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

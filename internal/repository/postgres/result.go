package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"vocadeck/internal/domain"
)

// ResultRepo implements repository.ResultRepository.
// Days are computed in Vietnam time (day changes at 00:00 ICT).
type ResultRepo struct {
	db *sql.DB
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *sql.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// SaveResult stores one answered question
func (r *ResultRepo) SaveResult(userID int64, mode domain.QuizMode, word string, correct bool) error {
	query := `
		INSERT INTO quiz_results (user_id, mode, word, correct)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, string(mode), word, correct)
	return err
}

// GetDaysWithResults returns days that have answers, newest first
func (r *ResultRepo) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(answered_at AT TIME ZONE 'Asia/Ho_Chi_Minh') AS day,
			COUNT(*) AS answers,
			COUNT(*) FILTER (WHERE correct) AS correct
		FROM quiz_results
		WHERE user_id = $1
		GROUP BY DATE(answered_at AT TIME ZONE 'Asia/Ho_Chi_Minh')
		ORDER BY day DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.AnswerCount, &d.CorrectCount); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns the number of distinct days with answers
func (r *ResultRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(answered_at AT TIME ZONE 'Asia/Ho_Chi_Minh'))
		FROM quiz_results
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetResultsByDate returns the answers given on one day, newest first
func (r *ResultRepo) GetResultsByDate(userID int64, date time.Time) ([]domain.Result, error) {
	query := `
		SELECT id, user_id, mode, word, correct, answered_at
		FROM quiz_results
		WHERE user_id = $1
			AND DATE(answered_at AT TIME ZONE 'Asia/Ho_Chi_Minh') = $2::date
		ORDER BY answered_at DESC
	`

	rows, err := r.db.Query(query, userID, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var res domain.Result
		var mode string
		if err := rows.Scan(&res.ID, &res.UserID, &mode, &res.Word, &res.Correct, &res.AnsweredAt); err != nil {
			return nil, err
		}
		res.Mode = domain.QuizMode(mode)
		results = append(results, res)
	}

	return results, rows.Err()
}

// CleanOldResults deletes answers older than the given number of days
func (r *ResultRepo) CleanOldResults(days int) error {
	query := `
		DELETE FROM quiz_results
		WHERE answered_at < NOW() - INTERVAL '1 day' * $1
	`
	if _, err := r.db.Exec(query, days); err != nil {
		return fmt.Errorf("failed to delete results older than %d days: %w", days, err)
	}
	return nil
}

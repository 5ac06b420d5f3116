package postgres

import (
	"database/sql"
	"errors"

	"vocadeck/internal/domain"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new flashcard progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// GetProgress returns the tally for one word, or nil if the word was never marked
func (r *ProgressRepo) GetProgress(userID int64, word string) (*domain.FlashcardProgress, error) {
	query := `
		SELECT user_id, word, status, last_reviewed, review_count, next_review
		FROM flashcard_progress
		WHERE user_id = $1 AND word = $2
	`

	var p domain.FlashcardProgress
	var status string
	err := r.db.QueryRow(query, userID, word).Scan(
		&p.UserID, &p.Word, &status, &p.LastReviewed, &p.ReviewCount, &p.NextReview,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Status = domain.FlashcardStatus(status)
	return &p, nil
}

// SaveProgress inserts or replaces the tally for a word
func (r *ProgressRepo) SaveProgress(p domain.FlashcardProgress) error {
	query := `
		INSERT INTO flashcard_progress (user_id, word, status, last_reviewed, review_count, next_review)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, word)
		DO UPDATE SET status = EXCLUDED.status,
			last_reviewed = EXCLUDED.last_reviewed,
			review_count = EXCLUDED.review_count,
			next_review = EXCLUDED.next_review
	`
	_, err := r.db.Exec(query, p.UserID, p.Word, string(p.Status), p.LastReviewed, p.ReviewCount, p.NextReview)
	return err
}

// ListProgress returns every marked word of a user
func (r *ProgressRepo) ListProgress(userID int64) ([]domain.FlashcardProgress, error) {
	query := `
		SELECT user_id, word, status, last_reviewed, review_count, next_review
		FROM flashcard_progress
		WHERE user_id = $1
		ORDER BY last_reviewed DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.FlashcardProgress
	for rows.Next() {
		var p domain.FlashcardProgress
		var status string
		if err := rows.Scan(&p.UserID, &p.Word, &status, &p.LastReviewed, &p.ReviewCount, &p.NextReview); err != nil {
			return nil, err
		}
		p.Status = domain.FlashcardStatus(status)
		list = append(list, p)
	}

	return list, rows.Err()
}

// ResetProgress forgets every mark of a user
func (r *ProgressRepo) ResetProgress(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM flashcard_progress WHERE user_id = $1`, userID)
	return err
}

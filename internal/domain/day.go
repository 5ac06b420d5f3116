package domain

import "time"

// Day represents a day with quiz answers
type Day struct {
	Date         time.Time
	AnswerCount  int
	CorrectCount int
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns user-friendly date string
func (d Day) DisplayString() string {
	now := time.Now()
	date := d.Date

	if sameDay(date, now) {
		return "Hôm nay"
	}

	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Hôm qua"
	}

	return date.Format("02/01/2006")
}

// Accuracy returns the share of correct answers in percent
func (d Day) Accuracy() int {
	if d.AnswerCount == 0 {
		return 0
	}
	return d.CorrectCount * 100 / d.AnswerCount
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package domain

import "time"

// QuizMode identifies one of the quiz modes
type QuizMode string

const (
	ModeMultipleChoice  QuizMode = "multiple_choice"
	ModeFillBlank       QuizMode = "fill_blank"
	ModeSentenceReorder QuizMode = "sentence_reorder"
	ModeListening       QuizMode = "listening"
	ModeFlashcard       QuizMode = "flashcard"
	ModeWordAssociation QuizMode = "word_association"
)

// Modes lists quiz modes in menu order
var Modes = []QuizMode{
	ModeMultipleChoice,
	ModeFillBlank,
	ModeSentenceReorder,
	ModeListening,
	ModeFlashcard,
	ModeWordAssociation,
}

// Valid reports whether m is a known mode
func (m QuizMode) Valid() bool {
	for _, mode := range Modes {
		if mode == m {
			return true
		}
	}
	return false
}

// Score is a running tally of answers in a quiz session
type Score struct {
	Correct int
	Total   int
}

// Wrong returns the number of wrong answers
func (s Score) Wrong() int {
	return s.Total - s.Correct
}

// Add records one answer
func (s *Score) Add(correct bool) {
	s.Total++
	if correct {
		s.Correct++
	}
}

// Result is a single answered question
type Result struct {
	ID         int
	UserID     int64
	Mode       QuizMode
	Word       string
	Correct    bool
	AnsweredAt time.Time
}

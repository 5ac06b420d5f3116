package service

import (
	"errors"
	"sync"

	"vocadeck/internal/deck"
	"vocadeck/internal/domain"
	"vocadeck/internal/quiz"
	"vocadeck/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrNoActiveQuestion = errors.New("no active question")
	ErrStaleQuestion    = errors.New("question is no longer active")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNoFlashcards     = errors.New("no flashcard set")
)

// Session is the quiz state of one user. Each session owns its own deck.
type Session struct {
	mu         sync.Mutex
	deck       *deck.Manager
	deckState  deck.State
	question   *quiz.Question
	answered   bool
	flashcards *quiz.FlashcardSet
	scores     map[domain.QuizMode]*domain.Score
}

// Outcome is the result of answering a question
type Outcome struct {
	Question *quiz.Question
	Correct  bool
	Given    string
	Score    domain.Score
}

// QuizService manages per-user quiz sessions
type QuizService struct {
	items          []domain.VocabularyItem
	builder        *quiz.Builder
	resultRepo     repository.ResultRepository
	flashcardBatch int
	deckOptions    []deck.Option
	logger         *zap.Logger

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewQuizService creates a quiz service over the vocabulary collection
func NewQuizService(
	items []domain.VocabularyItem,
	builder *quiz.Builder,
	resultRepo repository.ResultRepository,
	flashcardBatch int,
	logger *zap.Logger,
	deckOptions ...deck.Option,
) *QuizService {
	return &QuizService{
		items:          items,
		builder:        builder,
		resultRepo:     resultRepo,
		flashcardBatch: flashcardBatch,
		deckOptions:    deckOptions,
		logger:         logger,
		sessions:       make(map[int64]*Session),
	}
}

// session returns the user's session, dealing a fresh deck on first use
func (s *QuizService) session(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := &Session{scores: make(map[domain.QuizMode]*domain.Score)}
	observer := func(st deck.State) {
		sess.deckState = st
		if st.Reshuffled {
			s.logger.Debug("Deck reshuffled",
				zap.Int64("user_id", userID),
				zap.Int("epoch", st.Epoch),
			)
		}
	}
	opts := append(append([]deck.Option(nil), s.deckOptions...), deck.WithObserver(observer))
	sess.deck = deck.New(s.items, opts...)
	sess.deck.Initialize()

	s.sessions[userID] = sess
	s.logger.Info("Quiz session created",
		zap.Int64("user_id", userID),
		zap.Int("deck_size", sess.deck.Size()),
	)
	return sess
}

// NextQuestion deals a new question of the given mode
func (s *QuizService) NextQuestion(userID int64, mode domain.QuizMode) (*quiz.Question, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := s.builder.Build(mode, sess.deck)
	if err != nil {
		return nil, err
	}

	sess.question = q
	sess.answered = false
	return q, nil
}

// Current returns the active question, or nil
func (s *QuizService) Current(userID int64) *quiz.Question {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.question
}

// Answer checks a typed or chosen answer to the active question
func (s *QuizService) Answer(userID int64, questionID, answer string) (*Outcome, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.answerLocked(userID, sess, questionID, answer)
}

// AnswerOption answers with the i-th option of a choice question
func (s *QuizService) AnswerOption(userID int64, questionID string, i int) (*Outcome, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := activeLocked(sess, questionID)
	if err != nil {
		return nil, err
	}
	option, err := q.Option(i)
	if err != nil {
		return nil, err
	}
	return s.answerLocked(userID, sess, questionID, option)
}

// PickToken places a token of a sentence reorder question.
// Once all tokens are placed the sentence is checked and an outcome returned.
func (s *QuizService) PickToken(userID int64, questionID string, i int) (*quiz.Question, *Outcome, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := activeLocked(sess, questionID)
	if err != nil {
		return nil, nil, err
	}
	if err := q.Pick(i); err != nil {
		return q, nil, err
	}
	if !q.Complete() {
		return q, nil, nil
	}

	outcome, err := s.answerLocked(userID, sess, questionID, q.Assembled())
	return q, outcome, err
}

// UndoToken removes the last placed token
func (s *QuizService) UndoToken(userID int64, questionID string) (*quiz.Question, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := activeLocked(sess, questionID)
	if err != nil {
		return nil, err
	}
	q.Undo()
	return q, nil
}

func activeLocked(sess *Session, questionID string) (*quiz.Question, error) {
	if sess.question == nil {
		return nil, ErrNoActiveQuestion
	}
	if sess.question.ID != questionID {
		return nil, ErrStaleQuestion
	}
	if sess.answered {
		return nil, ErrAlreadyAnswered
	}
	return sess.question, nil
}

func (s *QuizService) answerLocked(userID int64, sess *Session, questionID, answer string) (*Outcome, error) {
	q, err := activeLocked(sess, questionID)
	if err != nil {
		return nil, err
	}

	correct := q.Check(answer)
	sess.answered = true

	score, ok := sess.scores[q.Mode]
	if !ok {
		score = &domain.Score{}
		sess.scores[q.Mode] = score
	}
	score.Add(correct)

	if err := s.resultRepo.SaveResult(userID, q.Mode, q.Item.Word, correct); err != nil {
		// the tally stays in memory even if history could not be stored
		s.logger.Error("Failed to save result",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("mode", string(q.Mode)),
		)
	}

	return &Outcome{
		Question: q,
		Correct:  correct,
		Given:    answer,
		Score:    *score,
	}, nil
}

// Score returns the in-memory tally of a mode
func (s *QuizService) Score(userID int64, mode domain.QuizMode) domain.Score {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if score, ok := sess.scores[mode]; ok {
		return *score
	}
	return domain.Score{}
}

// DeckState returns the last state reported by the user's deck
func (s *QuizService) DeckState(userID int64) deck.State {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.deckState
}

// StartFlashcards draws a new batch of flashcards
func (s *QuizService) StartFlashcards(userID int64) (*quiz.FlashcardSet, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	set, err := quiz.NewFlashcardSet(sess.deck, s.flashcardBatch)
	if err != nil {
		return nil, err
	}
	sess.flashcards = set
	return set, nil
}

// Flashcards runs fn on the user's current flashcard set
func (s *QuizService) Flashcards(userID int64, fn func(*quiz.FlashcardSet)) error {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.flashcards == nil {
		return ErrNoFlashcards
	}
	fn(sess.flashcards)
	return nil
}

// EndSession forgets the user's deck and scores
func (s *QuizService) EndSession(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// ActiveSessions returns the number of users with a deck
func (s *QuizService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// DeckSize returns the size of the vocabulary collection
func (s *QuizService) DeckSize() int {
	return len(s.items)
}

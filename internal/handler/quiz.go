package handler

import (
	"errors"

	"vocadeck/internal/domain"
	"vocadeck/internal/quiz"
	"vocadeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const expiredText = "Câu hỏi này đã hết hạn."

// handleMode deals a new question of the chosen mode
func (h *Handler) handleMode(c tele.Context, mode domain.QuizMode) error {
	if !mode.Valid() {
		return c.Respond()
	}
	if mode == domain.ModeFlashcard {
		return h.startFlashcards(c)
	}

	userID := c.Sender().ID
	unlock := h.lockUser(userID)
	defer unlock()

	q, err := h.quizService.NextQuestion(userID, mode)
	switch {
	case errors.Is(err, quiz.ErrNotEnoughCards), errors.Is(err, quiz.ErrNoExample):
		return alert(c, "Không đủ từ vựng cho chế độ này.")
	case errors.Is(err, quiz.ErrNoAssociations):
		return alert(c, "Không tìm thấy từ có từ đồng nghĩa hoặc trái nghĩa.")
	case err != nil:
		h.logger.Error("Failed to build question", zap.Error(err), zap.String("mode", string(mode)))
		return alert(c, errorText)
	}

	if mode == domain.ModeFillBlank {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingAnswer, Mode: mode})
	} else {
		h.ResetState(userID)
	}

	return h.showQuestion(c, userID, q)
}

func (h *Handler) showQuestion(c tele.Context, userID int64, q *quiz.Question) error {
	score := h.quizService.Score(userID, q.Mode)
	return h.show(c, questionText(q, score, h.quizService.DeckState(userID)), questionMarkup(q))
}

// handleAnswer handles a tap on an answer option
func (h *Handler) handleAnswer(c tele.Context, data string) error {
	userID := c.Sender().ID

	questionID, idx, err := parseQuestionData(data, "ans_")
	if err != nil {
		return c.Respond()
	}

	unlock := h.lockUser(userID)
	defer unlock()

	outcome, err := h.quizService.AnswerOption(userID, questionID, idx)
	if err != nil {
		return h.answerError(c, err)
	}

	return h.show(c, outcomeText(outcome), outcomeMarkup(outcome.Question.Mode))
}

// handleToken places a word of a sentence reorder question
func (h *Handler) handleToken(c tele.Context, data string) error {
	userID := c.Sender().ID

	questionID, idx, err := parseQuestionData(data, "tok_")
	if err != nil {
		return c.Respond()
	}

	unlock := h.lockUser(userID)
	defer unlock()

	q, outcome, err := h.quizService.PickToken(userID, questionID, idx)
	if errors.Is(err, quiz.ErrTokenPicked) {
		return c.Respond()
	}
	if err != nil {
		return h.answerError(c, err)
	}

	if outcome != nil {
		return h.show(c, outcomeText(outcome), outcomeMarkup(q.Mode))
	}
	return h.showQuestion(c, userID, q)
}

// handleUndo takes back the last placed word
func (h *Handler) handleUndo(c tele.Context, questionID string) error {
	userID := c.Sender().ID

	unlock := h.lockUser(userID)
	defer unlock()

	q, err := h.quizService.UndoToken(userID, questionID)
	if err != nil {
		return h.answerError(c, err)
	}
	return h.showQuestion(c, userID, q)
}

func (h *Handler) answerError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrStaleQuestion),
		errors.Is(err, service.ErrAlreadyAnswered),
		errors.Is(err, service.ErrNoActiveQuestion):
		return alert(c, expiredText)
	case errors.Is(err, quiz.ErrBadOption):
		return c.Respond()
	default:
		h.logger.Error("Failed to answer question", zap.Error(err))
		return alert(c, errorText)
	}
}

// answerTyped checks a typed fill-blank answer
func (h *Handler) answerTyped(c tele.Context, userID int64, text string) error {
	unlock := h.lockUser(userID)
	defer unlock()

	q := h.quizService.Current(userID)
	if q == nil || q.Mode != domain.ModeFillBlank {
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	outcome, err := h.quizService.Answer(userID, q.ID, text)
	if err != nil {
		h.ResetState(userID)
		return h.answerError(c, err)
	}

	h.ResetState(userID)
	return c.Send(outcomeText(outcome), outcomeMarkup(domain.ModeFillBlank))
}

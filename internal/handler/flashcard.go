package handler

import (
	"errors"

	"vocadeck/internal/domain"
	"vocadeck/internal/quiz"
	"vocadeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startFlashcards draws a fresh batch of cards
func (h *Handler) startFlashcards(c tele.Context) error {
	userID := c.Sender().ID
	unlock := h.lockUser(userID)
	defer unlock()

	h.ResetState(userID)

	set, err := h.quizService.StartFlashcards(userID)
	if errors.Is(err, quiz.ErrNotEnoughCards) {
		return alert(c, "Không có từ vựng nào.")
	}
	if err != nil {
		h.logger.Error("Failed to start flashcards", zap.Error(err))
		return alert(c, errorText)
	}

	return h.showCard(c, userID, set)
}

func (h *Handler) showCard(c tele.Context, userID int64, set *quiz.FlashcardSet) error {
	status, err := h.flashcardService.Status(userID, set.Current().Word)
	if err != nil {
		h.logger.Warn("Failed to load flashcard status", zap.Error(err))
		status = domain.StatusNew
	}
	return h.show(c, flashcardText(set, status), flashcardMarkup(set))
}

// handleFlashcard handles the "fc_" buttons
func (h *Handler) handleFlashcard(c tele.Context, action string) error {
	userID := c.Sender().ID

	switch action {
	case "new":
		return h.startFlashcards(c)
	case "stats":
		return h.showFlashcardStats(c, userID)
	case "reset":
		if err := h.flashcardService.Reset(userID); err != nil {
			h.logger.Error("Failed to reset flashcard progress", zap.Error(err))
			return alert(c, errorText)
		}
		return h.showFlashcardStats(c, userID)
	}

	unlock := h.lockUser(userID)
	defer unlock()

	var (
		card  domain.VocabularyItem
		moved = true
		snap  quiz.FlashcardSet
	)
	err := h.quizService.Flashcards(userID, func(set *quiz.FlashcardSet) {
		switch action {
		case "flip":
			set.Flip()
		case "next":
			moved = set.Next()
		case "prev":
			moved = set.Previous()
		case "known", "learning", "review":
			card = set.Current()
			moved = set.Next()
		}
		snap = *set
	})
	if errors.Is(err, service.ErrNoFlashcards) {
		return alert(c, expiredText)
	}
	if err != nil {
		return alert(c, errorText)
	}

	if card.Word != "" {
		status := domain.FlashcardStatus(action)
		if _, err := h.flashcardService.Mark(userID, card.Word, status); err != nil {
			h.logger.Error("Failed to mark flashcard", zap.Error(err), zap.String("word", card.Word))
			return alert(c, errorText)
		}
		if !moved {
			return h.showFlashcardStats(c, userID)
		}
	} else if !moved {
		return c.Respond()
	}

	return h.showCard(c, userID, &snap)
}

func (h *Handler) showFlashcardStats(c tele.Context, userID int64) error {
	stats, err := h.flashcardService.Stats(userID)
	if err != nil {
		h.logger.Error("Failed to load flashcard stats", zap.Error(err))
		return alert(c, errorText)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🃏 Bộ thẻ mới", "fc_new"), markup.Data("🗑 Xóa tiến độ", "fc_reset")),
		markup.Row(btnMainMenu),
	)
	return h.show(c, flashcardStatsText(stats), markup)
}

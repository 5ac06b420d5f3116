package handler

import (
	"fmt"
	"strings"

	"vocadeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStats shows session scores per mode and flashcard progress
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	var b strings.Builder
	b.WriteString("📊 Điểm số phiên này\n\n")
	for _, mode := range domain.Modes {
		if mode == domain.ModeFlashcard {
			continue
		}
		score := h.quizService.Score(userID, mode)
		fmt.Fprintf(&b, "%s: %d/%d\n", modeLabel(mode), score.Correct, score.Total)
	}

	stats, err := h.flashcardService.Stats(userID)
	if err != nil {
		h.logger.Warn("Failed to load flashcard stats", zap.Error(err))
	} else {
		b.WriteString("\n" + flashcardStatsText(stats) + "\n")
	}

	b.WriteString("\n" + deckLine(h.quizService.DeckState(userID)))

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnViewDays, btnMainMenu))
	return h.show(c, b.String(), markup)
}

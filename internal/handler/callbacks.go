package handler

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"vocadeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errBadCallback = errors.New("malformed callback data")

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseQuestionData splits "<prefix><questionID>_<index>"
func parseQuestionData(data, prefix string) (string, int, error) {
	rest := strings.TrimPrefix(data, prefix)
	sep := strings.LastIndex(rest, "_")
	if sep <= 0 || sep == len(rest)-1 {
		return "", 0, errBadCallback
	}
	idx, err := strconv.Atoi(rest[sep+1:])
	if err != nil {
		return "", 0, errBadCallback
	}
	return rest[:sep], idx, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback, nothing to send
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message if triggered by a button, sends a new one otherwise
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// alert answers a callback with a popup, or sends a message for commands
func alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons with Unique that did not reach their own handler
	switch data {
	case "view_days", "back_to_days":
		return h.handleViewDays(c)
	case "main_menu":
		return h.handleStart(c)
	case "scores":
		return h.handleStats(c)
	}

	switch {
	case strings.HasPrefix(data, "mode_"):
		return h.handleMode(c, domain.QuizMode(strings.TrimPrefix(data, "mode_")))
	case strings.HasPrefix(data, "next_"):
		return h.handleMode(c, domain.QuizMode(strings.TrimPrefix(data, "next_")))
	case strings.HasPrefix(data, "ans_"):
		return h.handleAnswer(c, data)
	case strings.HasPrefix(data, "tok_"):
		return h.handleToken(c, data)
	case strings.HasPrefix(data, "undo_"):
		return h.handleUndo(c, strings.TrimPrefix(data, "undo_"))
	case strings.HasPrefix(data, "fc_"):
		return h.handleFlashcard(c, strings.TrimPrefix(data, "fc_"))
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "day_"):
		return h.handleDaySelection(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

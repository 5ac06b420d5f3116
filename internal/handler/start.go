package handler

import (
	"bytes"
	"errors"

	"vocadeck/internal/share"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const passwordPrompt = "Xin chào! Nhập mật khẩu để bắt đầu học:"

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(errorText)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(passwordPrompt)
	}

	return h.show(c, mainMenuText, mainMenuMarkup())
}

// handleShare sends a QR code with the bot link
func (h *Handler) handleShare(c tele.Context) error {
	png, err := share.QRCode(h.botLink)
	if errors.Is(err, share.ErrNoLink) {
		return c.Send("Chưa cấu hình liên kết chia sẻ.")
	}
	if err != nil {
		h.logger.Error("Failed to render QR code", zap.Error(err))
		return c.Send(errorText)
	}

	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(png)),
		Caption: "Quét mã để cùng học từ vựng: " + h.botLink,
	}
	return c.Send(photo)
}

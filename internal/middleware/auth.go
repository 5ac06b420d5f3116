package middleware

import (
	"vocadeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	errorText = "Đã xảy ra lỗi. Vui lòng thử lại sau."
	loginText = "Bạn cần nhập mật khẩu trước. Gõ /start để bắt đầu."
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			if !authorized {
				logger.Debug("Rejected unauthorized user", zap.Int64("user_id", userID))
				return reply(c, loginText)
			}

			return next(c)
		}
	}
}

// reply answers callbacks with a popup so the button stops spinning
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

package handler

import (
	"sync"

	"vocadeck/internal/domain"
	"vocadeck/internal/middleware"
	"vocadeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot              *tele.Bot
	authService      *service.AuthService
	quizService      *service.QuizService
	flashcardService *service.FlashcardService
	statsService     *service.StatsService
	botLink          string
	logger           *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-user locks so double taps don't draw twice
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	quizService *service.QuizService,
	flashcardService *service.FlashcardService,
	statsService *service.StatsService,
	botLink string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:              bot,
		authService:      authService,
		quizService:      quizService,
		flashcardService: flashcardService,
		statsService:     statsService,
		botLink:          botLink,
		logger:           logger,
		states:           make(map[int64]*domain.StateData),
		callbackLocks:    make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/share", h.handleShare)
	h.bot.Handle("/stats", h.handleStats, auth)

	// Text messages (password and typed answers)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnViewDays, h.handleViewDays, auth)
	h.bot.Handle(&btnBackToDays, h.handleViewDays, auth)
	h.bot.Handle(&btnMainMenu, h.handleStart, auth)
	h.bot.Handle(&btnScores, h.handleStats, auth)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// lockUser serialises deck-drawing callbacks of one user
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Inline keyboard buttons
var (
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📅 Lịch sử luyện tập",
	}
	btnScores = tele.Btn{
		Unique: "scores",
		Text:   "📊 Điểm số",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ Về danh sách ngày",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Trang chủ",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i := 0; i < len(domain.Modes); i += 2 {
		row := tele.Row{menu.Data(modeLabel(domain.Modes[i]), "mode_"+string(domain.Modes[i]))}
		if i+1 < len(domain.Modes) {
			row = append(row, menu.Data(modeLabel(domain.Modes[i+1]), "mode_"+string(domain.Modes[i+1])))
		}
		rows = append(rows, row)
	}
	rows = append(rows, menu.Row(btnViewDays, btnScores))
	menu.Inline(rows...)
	return menu
}

const mainMenuText = "🏠 Trang chủ\n\nChọn chế độ luyện tập:"

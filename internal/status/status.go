// Package status serves health and usage information over HTTP.
package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SessionCounter reports deck and session numbers
type SessionCounter interface {
	DeckSize() int
	ActiveSessions() int
}

// UserCounter reports the number of authorized users
type UserCounter interface {
	CountAuthorized() (int, error)
}

// Stats is the body of GET /api/stats
type Stats struct {
	DeckSize        int `json:"deckSize"`
	ActiveSessions  int `json:"activeSessions"`
	AuthorizedUsers int `json:"authorizedUsers"`
}

type server struct {
	sessions SessionCounter
	users    UserCounter
	logger   *zap.Logger
}

// NewRouter creates the status HTTP handler
func NewRouter(sessions SessionCounter, users UserCounter, logger *zap.Logger) http.Handler {
	s := &server{sessions: sessions, users: users, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.stats)
	})

	return r
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Error("Failed to write health check response", zap.Error(err))
	}
}

func (s *server) stats(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.CountAuthorized()
	if err != nil {
		s.logger.Error("Failed to count users",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	body := Stats{
		DeckSize:        s.sessions.DeckSize(),
		ActiveSessions:  s.sessions.ActiveSessions(),
		AuthorizedUsers: users,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write stats response", zap.Error(err))
	}
}

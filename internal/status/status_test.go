package status

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocadeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	size, active int
}

func (f fakeSessions) DeckSize() int       { return f.size }
func (f fakeSessions) ActiveSessions() int { return f.active }

func TestRouter_Health(t *testing.T) {
	router := NewRouter(fakeSessions{}, new(testutil.MockUserRepository), testutil.NewTestLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Stats(t *testing.T) {
	tests := []struct {
		name         string
		mockCount    int
		mockError    error
		expectedCode int
	}{
		{name: "ok", mockCount: 3, expectedCode: http.StatusOK},
		{name: "database error", mockError: fmt.Errorf("db error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			users.On("CountAuthorized").Return(tt.mockCount, tt.mockError)

			router := NewRouter(fakeSessions{size: 24, active: 2}, users, testutil.NewTestLogger())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body Stats
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, Stats{DeckSize: 24, ActiveSessions: 2, AuthorizedUsers: 3}, body)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}

			users.AssertExpectations(t)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := NewRouter(fakeSessions{}, new(testutil.MockUserRepository), testutil.NewTestLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/stats", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package get_upcoming_sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getUpcomingSessions "github.com/padelplus/booking-service/internal/usecase/get_upcoming_sessions"
)

type mockUseCase struct {
	ExecuteFunc func(ctx context.Context) (*getUpcomingSessions.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context) (*getUpcomingSessions.Response, error) {
	return m.ExecuteFunc(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &mockUseCase{
		ExecuteFunc: func(ctx context.Context) (*getUpcomingSessions.Response, error) {
			return &getUpcomingSessions.Response{
				CourtID:   "achrafieh-1",
				CourtName: "The Padelist Achrafieh",
				Sessions: []getUpcomingSessions.Session{
					{
						PackageID:   "thursday-morning",
						Name:        "Cours Collectif Jeudi",
						TimeRange:   "10:00 - 11:00",
						SessionDate: time.Date(2025, time.September, 4, 0, 0, 0, 0, time.Local),
						DateDisplay: "jeudi 4 septembre",
						SpotsLeft:   0,
						TotalSpots:  4,
					},
					{
						PackageID:   "saturday-morning-8p",
						Name:        "Match Coaching Samedi",
						TimeRange:   "10:30 - 12:00",
						SessionDate: time.Date(2025, time.September, 6, 0, 0, 0, 0, time.Local),
						DateDisplay: "samedi 6 septembre",
						SpotsLeft:   5,
						TotalSpots:  8,
					},
				},
			}, nil
		},
	}

	handler := NewHandler(uc, &mockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/upcoming", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SessionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "achrafieh-1", resp.CourtID)
	require.Len(t, resp.Sessions, 2)

	assert.Equal(t, "2025-09-04", resp.Sessions[0].SessionDate)
	assert.Equal(t, "jeudi 4 septembre", resp.Sessions[0].DateDisplay)
	assert.True(t, resp.Sessions[0].Full)

	assert.Equal(t, "2025-09-06", resp.Sessions[1].SessionDate)
	assert.Equal(t, 5, resp.Sessions[1].SpotsLeft)
	assert.False(t, resp.Sessions[1].Full)
}

func TestHandler_Handle_UseCaseError(t *testing.T) {
	uc := &mockUseCase{
		ExecuteFunc: func(ctx context.Context) (*getUpcomingSessions.Response, error) {
			return nil, errors.New("boom")
		},
	}

	handler := NewHandler(uc, &mockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/upcoming", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

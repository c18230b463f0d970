package get_upcoming_sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelplus/booking-service/internal/domain"
)

type mockBookingRepository struct {
	ListFromDateFunc func(ctx context.Context, from time.Time) ([]*domain.Booking, error)
}

func (m *mockBookingRepository) ListFromDate(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
	return m.ListFromDateFunc(ctx, from)
}

type mockCatalog struct {
	court    domain.Court
	packages []domain.SessionPackage
}

func (m *mockCatalog) Court() domain.Court               { return m.court }
func (m *mockCatalog) Packages() []domain.SessionPackage { return m.packages }

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time { return m.now }

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func testCatalog() *mockCatalog {
	return &mockCatalog{
		court: domain.Court{ID: "achrafieh-1", Name: "The Padelist Achrafieh"},
		packages: []domain.SessionPackage{
			{
				ID:             "thursday-morning",
				Name:           "Cours Collectif Jeudi",
				TimeRange:      "10:00 - 11:00",
				MaxPlayers:     4,
				PricePerPerson: 7.5,
				TargetWeekday:  time.Thursday,
				Quorum:         4,
			},
			{
				ID:             "saturday-morning-8p",
				Name:           "Match Coaching Samedi",
				TimeRange:      "10:30 - 12:00",
				MaxPlayers:     8,
				PricePerPerson: 12,
				TargetWeekday:  time.Saturday,
				Quorum:         8,
			},
		},
	}
}

func newTestUseCase(repo BookingRepository, cat Catalog, now time.Time) *UseCase {
	uc := NewUseCase(repo, cat, &mockLogger{})
	uc.timeProvider = &mockTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	// Среда 3 сентября 2025, 09:00
	now := time.Date(2025, time.September, 3, 9, 0, 0, 0, time.Local)
	thursday := time.Date(2025, time.September, 4, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2025, time.September, 6, 0, 0, 0, 0, time.Local)

	// Четверг полностью занят, суббота пуста
	repo := &mockBookingRepository{
		ListFromDateFunc: func(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
			bookings := make([]*domain.Booking, 0, 4)
			for i := 0; i < 4; i++ {
				bookings = append(bookings, &domain.Booking{
					PackageID:   "thursday-morning",
					SessionDate: thursday,
					Status:      domain.StatusConfirmed,
				})
			}
			return bookings, nil
		},
	}

	uc := newTestUseCase(repo, testCatalog(), now)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "achrafieh-1", resp.CourtID)
	assert.Equal(t, "The Padelist Achrafieh", resp.CourtName)
	require.Len(t, resp.Sessions, 2)

	thu := resp.Sessions[0]
	assert.Equal(t, "thursday-morning", thu.PackageID)
	assert.True(t, thursday.Equal(thu.SessionDate))
	assert.Equal(t, "jeudi 4 septembre", thu.DateDisplay)
	assert.Equal(t, 0, thu.SpotsLeft)
	assert.Equal(t, 4, thu.TotalSpots)
	assert.True(t, thu.IsFull())

	sat := resp.Sessions[1]
	assert.Equal(t, "saturday-morning-8p", sat.PackageID)
	assert.True(t, saturday.Equal(sat.SessionDate))
	assert.Equal(t, "samedi 6 septembre", sat.DateDisplay)
	assert.Equal(t, 8, sat.SpotsLeft)
	assert.Equal(t, 8, sat.TotalSpots)
	assert.False(t, sat.IsFull())
}

func TestUseCase_Execute_SaturdayClosedOnFridayAfternoon(t *testing.T) {
	// Пятница 5 сентября 2025, 14:00: суббота переносится на неделю вперёд
	now := time.Date(2025, time.September, 5, 14, 0, 0, 0, time.Local)
	nextSaturday := time.Date(2025, time.September, 13, 0, 0, 0, 0, time.Local)

	repo := &mockBookingRepository{
		ListFromDateFunc: func(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(repo, testCatalog(), now)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Sessions, 2)
	assert.True(t, nextSaturday.Equal(resp.Sessions[1].SessionDate))
	assert.Equal(t, "samedi 13 septembre", resp.Sessions[1].DateDisplay)
}

func TestUseCase_Execute_EmptyCatalog(t *testing.T) {
	repo := &mockBookingRepository{
		ListFromDateFunc: func(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	cat := &mockCatalog{court: domain.Court{ID: "achrafieh-1"}}

	uc := newTestUseCase(repo, cat, time.Now())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Sessions)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepository{
		ListFromDateFunc: func(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := newTestUseCase(repo, testCatalog(), time.Now())

	resp, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Неделя-якорь: среда 3 сентября 2025, четверг 4, пятница 5, суббота 6
func anchor(day, hour, minute int) time.Time {
	return time.Date(2025, time.September, day, hour, minute, 0, 0, time.Local)
}

func thursdayPackage() SessionPackage {
	return SessionPackage{
		ID:            "thursday-morning",
		MaxPlayers:    4,
		TargetWeekday: time.Thursday,
	}
}

func saturdayPackage() SessionPackage {
	return SessionPackage{
		ID:            "saturday-morning-8p",
		MaxPlayers:    8,
		TargetWeekday: time.Saturday,
	}
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		pkg      SessionPackage
		expected time.Time
	}{
		{
			name:     "midweek resolves to upcoming thursday",
			now:      anchor(3, 9, 0), // среда 09:00
			pkg:      thursdayPackage(),
			expected: anchor(4, 0, 0),
		},
		{
			name:     "midweek resolves to upcoming saturday",
			now:      anchor(3, 9, 0),
			pkg:      saturdayPackage(),
			expected: anchor(6, 0, 0),
		},
		{
			name:     "target day before noon keeps today",
			now:      anchor(4, 11, 59), // четверг 11:59
			pkg:      thursdayPackage(),
			expected: anchor(4, 0, 0),
		},
		{
			name:     "target day at noon rolls a full week",
			now:      anchor(4, 12, 0), // четверг 12:00
			pkg:      thursdayPackage(),
			expected: anchor(11, 0, 0),
		},
		{
			name:     "friday before noon keeps this saturday",
			now:      anchor(5, 11, 59),
			pkg:      saturdayPackage(),
			expected: anchor(6, 0, 0),
		},
		{
			name:     "friday at noon rolls saturday a full week",
			now:      anchor(5, 12, 0),
			pkg:      saturdayPackage(),
			expected: anchor(13, 0, 0),
		},
		{
			name:     "saturday morning rolls to next saturday",
			now:      anchor(6, 8, 0),
			pkg:      saturdayPackage(),
			expected: anchor(13, 0, 0),
		},
		{
			name:     "saturday afternoon rolls to next saturday",
			now:      anchor(6, 14, 0),
			pkg:      saturdayPackage(),
			expected: anchor(13, 0, 0),
		},
		{
			name:     "friday noon does not affect thursday package",
			now:      anchor(5, 12, 0),
			pkg:      thursdayPackage(),
			expected: anchor(11, 0, 0), // следующий четверг
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.now, tt.pkg)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestNextOccurrence_Invariants(t *testing.T) {
	packages := []SessionPackage{thursdayPackage(), saturdayPackage()}

	// Перебираем все дни недели и часы: результат всегда в целевой день
	// и не раньше полуночи текущего дня
	for day := 1; day <= 7; day++ {
		for hour := 0; hour < 24; hour++ {
			now := anchor(day, hour, 30)
			for _, pkg := range packages {
				got := NextOccurrence(now, pkg)

				require.Equal(t, pkg.TargetWeekday, got.Weekday(),
					"now=%v pkg=%s", now, pkg.ID)
				require.False(t, got.Before(DateOnly(now)),
					"occurrence %v before now %v", got, now)
				require.True(t, got.Equal(DateOnly(got)),
					"occurrence %v is not local midnight", got)
			}
		}
	}
}

func TestRemainingSpots(t *testing.T) {
	sessionDate := anchor(4, 0, 0)

	booking := func(packageID string, date time.Time, status BookingStatus) *Booking {
		return &Booking{
			PackageID:   packageID,
			SessionDate: date,
			Status:      status,
		}
	}

	tests := []struct {
		name     string
		bookings []*Booking
		expected int
	}{
		{
			name:     "empty snapshot leaves all spots",
			bookings: nil,
			expected: 4,
		},
		{
			name: "each booking takes one spot",
			bookings: []*Booking{
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusPending),
			},
			expected: 2,
		},
		{
			name: "full session leaves zero",
			bookings: []*Booking{
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
			},
			expected: 0,
		},
		{
			name: "overbooked snapshot is floored at zero",
			bookings: []*Booking{
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
				booking("thursday-morning", sessionDate, StatusConfirmed),
			},
			expected: 0,
		},
		{
			name: "other package on the same date is ignored",
			bookings: []*Booking{
				booking("saturday-morning-8p", sessionDate, StatusConfirmed),
			},
			expected: 4,
		},
		{
			name: "same package on another date is ignored",
			bookings: []*Booking{
				booking("thursday-morning", sessionDate.AddDate(0, 0, 7), StatusConfirmed),
			},
			expected: 4,
		},
		{
			name: "same calendar day with different clock time still counts",
			bookings: []*Booking{
				booking("thursday-morning", anchor(4, 15, 30), StatusConfirmed),
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingSpots(tt.bookings, "thursday-morning", sessionDate, 4)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatDateFR(t *testing.T) {
	assert.Equal(t, "jeudi 4 septembre", FormatDateFR(anchor(4, 0, 0)))
	assert.Equal(t, "samedi 6 septembre", FormatDateFR(anchor(6, 0, 0)))
	assert.Equal(t, "samedi 2 août", FormatDateFR(time.Date(2025, time.August, 2, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "dimanche 1 février", FormatDateFR(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)))
}

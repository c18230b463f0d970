package domain

import (
	"fmt"
	"time"
)

// Cutoff rules
const (
	// SameDayCutoffHour час, после которого сегодняшняя сессия считается закрытой
	SameDayCutoffHour = 12

	// SaturdayCutoffHour час пятницы, после которого закрывается запись на субботу
	SaturdayCutoffHour = 12
)

// Business validation constants
const (
	MinPlayersPerPackage = 1
	MaxPlayersPerPackage = 100
	MaxUserNameLength    = 100
	MaxUserPhoneLength   = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// weekdaysFR французские названия дней недели, индекс соответствует time.Weekday
var weekdaysFR = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// monthsFR французские названия месяцев, индекс соответствует time.Month-1
var monthsFR = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders a date the way the club displays it: lowercase weekday,
// day number and month name in French, e.g. "jeudi 4 septembre".
func FormatDateFR(t time.Time) string {
	return fmt.Sprintf("%s %d %s", weekdaysFR[t.Weekday()], t.Day(), monthsFR[t.Month()-1])
}

// SameDate returns true if both timestamps fall on the same calendar day
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates a timestamp to midnight of its calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

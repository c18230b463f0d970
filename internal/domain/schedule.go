package domain

import "time"

// NextOccurrence вычисляет ближайшее вхождение пакета относительно now.
//
// Базовое правило: daysUntil = (targetWeekday - weekday(now) + 7) mod 7.
// Дедлайны, переносящие сессию на следующую неделю:
//   - общий: если целевой день - сегодня и локальный час >= 12,
//     сегодняшняя сессия считается закрытой;
//   - субботний: запись на субботу закрывается в пятницу в 12:00;
//     в саму субботу сессия недоступна независимо от часа.
//
// Возвращает полночь локального дня вхождения. Функция тотальна и
// детерминирована: время передаётся снаружи и не перечитывается.
func NextOccurrence(now time.Time, pkg SessionPackage) time.Time {
	daysUntil := (int(pkg.TargetWeekday) - int(now.Weekday()) + 7) % 7

	if daysUntil == 0 && now.Hour() >= SameDayCutoffHour {
		daysUntil += 7
	}

	if pkg.IsSaturday() {
		switch {
		case now.Weekday() == time.Friday && now.Hour() >= SaturdayCutoffHour && daysUntil == 1:
			// Пятница после полудня: эта суббота закрыта
			daysUntil += 7
		case now.Weekday() == time.Saturday && daysUntil == 0:
			// Суббота до полудня: общее правило ещё не сработало,
			// но субботняя сессия в день проведения всегда закрыта
			daysUntil += 7
		}
	}

	return DateOnly(now).AddDate(0, 0, daysUntil)
}

// RemainingSpots вычисляет свободные места сессии по снимку бронирований.
// Занятость считается по каноническому ключу (packageID, sessionDate),
// а не по отформатированной строке даты. Результат не бывает отрицательным.
func RemainingSpots(bookings []*Booking, packageID string, sessionDate time.Time, maxPlayers int) int {
	taken := 0
	for _, b := range bookings {
		if !b.CountsTowardCapacity() {
			continue
		}
		if b.IsForSession(packageID, sessionDate) {
			taken++
		}
	}

	remaining := maxPlayers - taken
	if remaining < 0 {
		return 0
	}
	return remaining
}

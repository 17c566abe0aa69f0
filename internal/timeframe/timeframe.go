package timeframe

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// TimeFrame - именованная корзина для группировки задач по сроку.
type TimeFrame int

const (
	Overdue TimeFrame = iota
	Today
	Tomorrow
	ThisWeek
	NextWeek
	ThisMonth
	NextMonth
	AfterNextMonth
)

func (f TimeFrame) String() string {
	switch f {
	case Overdue:
		return "Overdue"
	case Today:
		return "Today"
	case Tomorrow:
		return "Tomorrow"
	case ThisWeek:
		return "This Week"
	case NextWeek:
		return "Next Week"
	case ThisMonth:
		return "This Month"
	case NextMonth:
		return "Next Month"
	case AfterNextMonth:
		return "After Next Month"
	}
	return "unknown"
}

// Frames перечисляет корзины в порядке приоритета, для отображения.
var Frames = []TimeFrame{
	Overdue, Today, Tomorrow, ThisWeek, NextWeek, ThisMonth, NextMonth, AfterNextMonth,
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent weekStart day
// at or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Classify relates date to today and picks the first matching bucket.
// Weekly buckets win over monthly ones at month boundaries: a date that
// is both "this week" and "next month" classifies as ThisWeek.
func Classify(date, today time.Time, weekStart time.Weekday) (TimeFrame, error) {
	if date.IsZero() || today.IsZero() {
		return 0, ErrInvalidDate
	}

	dayStart := StartOfDay(today)
	switch {
	case date.Before(dayStart):
		return Overdue, nil
	case sameDay(date, today):
		return Today, nil
	case sameDay(date, today.AddDate(0, 0, 1)):
		return Tomorrow, nil
	}

	weekEnd := StartOfWeek(today, weekStart).AddDate(0, 0, 7)
	if date.Before(weekEnd) {
		return ThisWeek, nil
	}
	if date.Before(weekEnd.AddDate(0, 0, 7)) {
		return NextWeek, nil
	}

	ty, tm, _ := today.Date()
	dy, dm, _ := date.Date()
	if dy == ty && dm == tm {
		return ThisMonth, nil
	}

	// Шагаем от первого числа, чтобы AddDate не перепрыгнул месяц
	// на длинных числах (31 января + месяц = 2/3 марта).
	next := time.Date(ty, tm, 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
	if dy == next.Year() && dm == next.Month() {
		return NextMonth, nil
	}
	return AfterNextMonth, nil
}

func SameWeek(a, b time.Time, weekStart time.Weekday) (bool, error) {
	if a.IsZero() || b.IsZero() {
		return false, ErrInvalidDate
	}
	return StartOfWeek(a, weekStart).Equal(StartOfWeek(b, weekStart)), nil
}

func SameMonth(a, b time.Time) (bool, error) {
	if a.IsZero() || b.IsZero() {
		return false, ErrInvalidDate
	}
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm, nil
}

package usage

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start must not be after end")

// Window is an inclusive [Start, End] time range used to bound usage
// queries.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.After(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow is the calendar day containing t, in t's location.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// MonthWindow is the calendar month containing t, in t's location.
// time.Date normalization handles month lengths and leap years.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// DaysLeftInMonth counts the days remaining in t's month, including t's
// own day.
func DaysLeftInMonth(t time.Time) int {
	return MonthWindow(t).End.Day() - t.Day() + 1
}

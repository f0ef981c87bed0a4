package services

import "time"

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodRange = "range"
)

// WeekStart is the first day of the reporting week.
var WeekStart = time.Monday

// Window is a closed time interval resolved from a period token.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveWindow turns a period token into a concrete interval. today/week/
// month run from their day boundary through the current moment; range spans
// whole days and rejects an inverted pair instead of swapping it.
func ResolveWindow(period string, from, to *time.Time, now time.Time) (Window, error) {
	switch period {
	case PeriodToday:
		return Window{Start: startOfDay(now), End: now}, nil

	case PeriodWeek:
		start := startOfDay(now)
		for start.Weekday() != WeekStart {
			start = start.AddDate(0, 0, -1)
		}
		return Window{Start: start, End: now}, nil

	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: now}, nil

	case PeriodRange:
		if from == nil || to == nil {
			return Window{}, ErrMissingRange
		}
		start := startOfDay(*from)
		end := endOfDay(*to)
		if end.Before(start) {
			return Window{}, ErrInvalidRange
		}
		return Window{Start: start, End: end}, nil
	}

	return Window{}, ErrUnknownPeriod
}

// PreviousWindow returns the interval of the same length immediately before
// w, used for period-over-period trends.
func PreviousWindow(w Window) Window {
	length := w.End.Sub(w.Start)
	end := w.Start.Add(-time.Nanosecond)
	return Window{Start: end.Add(-length), End: end}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

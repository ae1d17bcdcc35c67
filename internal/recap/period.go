package recap

import (
	"fmt"
	"math"
	"time"
)

// Resolve computes the inclusive date range, label, and subtitle for the
// period containing ref. The labels compare against now, which is the only
// place wall-clock time enters the computation.
func (p Period) Resolve(ref, now time.Time) ResolvedPeriod {
	switch p {
	case PeriodMonth:
		return resolveMonth(ref, now)
	case PeriodYear:
		return resolveYear(ref, now)
	default:
		return resolveWeek(ref, now)
	}
}

// Previous shifts date one period back.
func (p Period) Previous(date time.Time) time.Time {
	switch p {
	case PeriodMonth:
		return date.AddDate(0, -1, 0)
	case PeriodYear:
		return date.AddDate(-1, 0, 0)
	default:
		return date.AddDate(0, 0, -7)
	}
}

// Next shifts date one period forward.
func (p Period) Next(date time.Time) time.Time {
	switch p {
	case PeriodMonth:
		return date.AddDate(0, 1, 0)
	case PeriodYear:
		return date.AddDate(1, 0, 0)
	default:
		return date.AddDate(0, 0, 7)
	}
}

// CanGoNext reports whether the period bucket containing date is strictly
// earlier than the one containing now. Comparing bucket starts rather than
// raw dates keeps navigation out of not-yet-elapsed periods.
func (p Period) CanGoNext(date, now time.Time) bool {
	return p.bucketStart(date).Before(p.bucketStart(now))
}

// bucketStart returns the first instant of the period bucket containing t.
func (p Period) bucketStart(t time.Time) time.Time {
	switch p {
	case PeriodMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodYear:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default:
		return weekStart(t)
	}
}

// weekStart returns midnight of the Sunday starting the week containing t.
func weekStart(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func resolveWeek(ref, now time.Time) ResolvedPeriod {
	start := weekStart(ref)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)

	currentStart := weekStart(now)
	var label string
	switch {
	case start.Equal(currentStart):
		label = "This Week"
	case start.Equal(currentStart.AddDate(0, 0, -7)):
		label = "Last Week"
	default:
		weeks := int(math.Round(currentStart.Sub(start).Hours() / (24 * 7)))
		label = fmt.Sprintf("%d Weeks Ago", weeks)
	}

	return ResolvedPeriod{
		Range:    DateRange{Start: start, End: end},
		Label:    label,
		Subtitle: start.Format("Jan 2") + " - " + end.Format("Jan 2"),
	}
}

func resolveMonth(ref, now time.Time) ResolvedPeriod {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	var label string
	switch {
	case ref.Year() == now.Year() && ref.Month() == now.Month():
		label = "This Month"
	case ref.Year() != now.Year():
		label = start.Format("January 2006")
	default:
		label = start.Format("January")
	}

	return ResolvedPeriod{
		Range:    DateRange{Start: start, End: end},
		Label:    label,
		Subtitle: fmt.Sprintf("%d", ref.Year()),
	}
}

func resolveYear(ref, now time.Time) ResolvedPeriod {
	start := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(1, 0, 0).Add(-time.Millisecond)

	label := "This Year"
	if ref.Year() != now.Year() {
		label = fmt.Sprintf("%d", ref.Year())
	}

	return ResolvedPeriod{
		Range:    DateRange{Start: start, End: end},
		Label:    label,
		Subtitle: "Year in Review",
	}
}

// inclusiveDays counts the calendar days covered by r, both endpoints
// included. Dates are normalized to UTC midnights so daylight-saving shifts
// cannot skew the count.
func inclusiveDays(r DateRange) int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

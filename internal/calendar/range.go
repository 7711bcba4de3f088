package calendar

import "time"

// Range is an inclusive span of calendar dates.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

func (r Range) Contains(d Date) bool {
	return r.From <= d && d <= r.To
}

func (r Range) Overlaps(o Range) bool {
	return r.From <= o.To && o.From <= r.To
}

// Days lists every date in the range. An inverted range yields nothing.
// Iteration runs on time.Time so it stops at r.To even when the next day
// would leave the four-digit year range.
func (r Range) Days() []Date {
	if r.To < r.From {
		return nil
	}
	start, end := r.From.Time(), r.To.Time()
	var out []Date
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		out = append(out, FromTime(t))
	}
	return out
}

// WeekFrom is the seven-day range starting at start.
func WeekFrom(start Date) Range {
	return Range{From: start, To: start.AddDays(6)}
}

func Month(year int, month time.Month) Range {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Range{From: FromTime(first), To: FromTime(last)}
}

// IsWeekend uses the fixed locale's Friday/Saturday weekend.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

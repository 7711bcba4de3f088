package scheduling

import (
	"strings"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

// ParseDate requires raw to be a well-formed ISO date; field names it in
// the resulting validation failure.
func ParseDate(field, raw string) (calendar.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", httperr.ErrRequired(field)
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return "", httperr.ErrValidation("invalid_"+field, field)
	}
	return d, nil
}

// ParseRange resolves the list-query period. week (a start date) wins over
// from/to; with neither given the range is nil and the listing is unbounded.
func ParseRange(week, from, to string) (*calendar.Range, error) {
	if strings.TrimSpace(week) != "" {
		start, err := ParseDate("week", week)
		if err != nil {
			return nil, err
		}
		r := calendar.WeekFrom(start)
		return &r, nil
	}

	if strings.TrimSpace(from) == "" && strings.TrimSpace(to) == "" {
		return nil, nil
	}

	f, err := ParseDate("from", from)
	if err != nil {
		return nil, err
	}
	t, err := ParseDate("to", to)
	if err != nil {
		return nil, err
	}
	if t.Before(f) {
		return nil, httperr.ErrValidation("invalid_range", "to")
	}
	return &calendar.Range{From: f, To: t}, nil
}

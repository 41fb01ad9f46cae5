package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EventDay is one labeled day of the multi-day VBS event.
type EventDay string

const (
	Day1 EventDay = "day_1"
	Day2 EventDay = "day_2"
	Day3 EventDay = "day_3"
	Day4 EventDay = "day_4"
	Day5 EventDay = "day_5"
)

var eventDays = []EventDay{Day1, Day2, Day3, Day4, Day5}

// DateLayout is the configured wire format for event dates.
const DateLayout = "02-01-2006"

var (
	ErrTooManyEventDates  = errors.New("more event dates configured than event days")
	ErrDuplicateEventDate = errors.New("duplicate event date configured")
)

// Label renders the day for guardian-facing messages, e.g. "day 1".
func (d EventDay) Label() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// Calendar maps calendar dates to event days. The mapping is fixed at
// construction and is a bijection over the configured dates.
type Calendar struct {
	byDate map[string]EventDay
}

// NewCalendar builds a Calendar from an ordered list of dd-mm-yyyy dates.
// The first date becomes day_1, the second day_2, and so on.
func NewCalendar(dates []string) (*Calendar, error) {
	if len(dates) > len(eventDays) {
		return nil, ErrTooManyEventDates
	}

	byDate := make(map[string]EventDay, len(dates))
	for i, date := range dates {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("time.Parse(%q) -> %w", date, err)
		}

		key := parsed.Format(DateLayout)
		if _, ok := byDate[key]; ok {
			return nil, ErrDuplicateEventDate
		}
		byDate[key] = eventDays[i]
	}

	return &Calendar{byDate: byDate}, nil
}

// ResolveDate returns the event day for the given date, or false when the
// date is not one of the configured event dates.
func (c *Calendar) ResolveDate(t time.Time) (EventDay, bool) {
	day, ok := c.byDate[t.Format(DateLayout)]
	return day, ok
}

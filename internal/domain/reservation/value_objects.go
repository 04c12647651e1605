package reservation

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWindow    = errors.New("window start must not be after window end")
)

// DateOf drops the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateRange occupies the nights from start up to, but not including, end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = DateOf(start), DateOf(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

// NewWindow builds a closed availability window; a single day is allowed.
func NewWindow(start, end time.Time) (DateRange, error) {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidWindow
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Overlaps is the half-open booking test; touching boundaries do not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.start.Before(o.end) && r.end.After(o.start)
}

// EndsBefore reports whether the last occupied night is over by day.
func (r DateRange) EndsBefore(day time.Time) bool {
	return r.end.Before(DateOf(day))
}

func (r DateRange) String() string {
	return "[" + r.start.Format(DateLayout) + ", " + r.end.Format(DateLayout) + ")"
}

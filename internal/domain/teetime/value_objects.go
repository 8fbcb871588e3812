package teetime

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWindow    = errors.New("first tee must be before last tee")
	ErrInvalidInterval  = errors.New("interval must be positive")
)

// Date is a calendar date with no time-of-day or zone component.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// TimeOfDay is minutes from midnight. It orders correctly as an integer,
// unlike the "7:00 AM" label the clients display.
type TimeOfDay int

const labelLayout = "3:04 PM"

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts the 24h "15:04" form used in configuration.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// ParseTeeLabel accepts the "7:00 AM" label form used on the wire.
func ParseTeeLabel(s string) (TimeOfDay, error) {
	t, err := time.Parse(labelLayout, s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Label renders the fixed client-facing form, e.g. "7:00 AM".
func (t TimeOfDay) Label() string {
	ref := time.Date(0, 1, 1, int(t)/60, int(t)%60, 0, 0, time.UTC)
	return ref.Format(labelLayout)
}

// DayGrid returns the ordered tee times from first (inclusive) to last
// (exclusive) at the given interval. 07:00-19:00 at 15m yields 48 entries.
func DayGrid(first, last TimeOfDay, interval time.Duration) ([]TimeOfDay, error) {
	if first >= last {
		return nil, ErrInvalidWindow
	}
	step := int(interval.Minutes())
	if step <= 0 {
		return nil, ErrInvalidInterval
	}

	grid := make([]TimeOfDay, 0, (int(last)-int(first))/step)
	for m := int(first); m < int(last); m += step {
		grid = append(grid, TimeOfDay(m))
	}
	return grid, nil
}

type Money struct {
	cents int
}

func NewMoney(cents int) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

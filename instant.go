package zexpr

import (
	"fmt"
	"time"
)

// Horizon bounds how far ahead Next and the continuous evaluator will search
// before giving up with ErrNoMatch. It protects against expressions whose
// continuous gate is effectively (or entirely) empty, such as
// DayOfMonth(31) & Not(DayOfMonth(31)) & At(...), whose gate never holds.
const Horizon = 10 * 365 * 24 * time.Hour

// horizonDays bounds the per-leaf day-by-day boundary scan used by Weekday
// and DayOfMonth. It is generous enough that it is never expected to trigger
// for a well-formed leaf in isolation; it exists as a backstop against an
// accidental infinite scan.
const horizonDays = 3653

// Instant is a civil date-time at second precision. Arithmetic assumes 86400
// seconds per day; leap seconds are not modeled. Instant never converts
// between time zones: it carries whatever *time.Location was supplied and
// preserves it through every operation.
type Instant struct {
	t time.Time
}

// NewInstant builds an Instant from its civil components.
func NewInstant(year, month, day, hour, minute, second int, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return Instant{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)}
}

// FromTime wraps a time.Time as an Instant, truncating any sub-second
// component.
func FromTime(t time.Time) Instant {
	return Instant{t: t.Truncate(time.Second)}
}

// Time returns the underlying time.Time.
func (i Instant) Time() time.Time { return i.t }

func (i Instant) Year() int   { return i.t.Year() }
func (i Instant) Month() int  { return int(i.t.Month()) }
func (i Instant) Day() int    { return i.t.Day() }
func (i Instant) Hour() int   { return i.t.Hour() }
func (i Instant) Minute() int { return i.t.Minute() }
func (i Instant) Second() int { return i.t.Second() }

// Weekday returns the ISO weekday of i: 1 = Monday ... 7 = Sunday.
func (i Instant) Weekday() int {
	wd := int(i.t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// TimeOfDay returns the time-of-day component of i.
func (i Instant) TimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: i.Hour(), Minute: i.Minute(), Second: i.Second()}
}

// DaysInMonth returns the number of days in i's calendar month.
func (i Instant) DaysInMonth() int { return daysInMonth(i.Year(), i.Month()) }

// StartOfDay returns the midnight that begins i's calendar day.
func (i Instant) StartOfDay() Instant {
	return Instant{t: time.Date(i.Year(), time.Month(i.Month()), i.Day(), 0, 0, 0, 0, i.t.Location())}
}

// AddDays shifts i by n calendar days, preserving time-of-day.
func (i Instant) AddDays(n int) Instant { return Instant{t: i.t.AddDate(0, 0, n)} }

// WithTime returns i's calendar day combined with the given time-of-day.
func (i Instant) WithTime(tod TimeOfDay) Instant {
	return Instant{t: time.Date(i.Year(), time.Month(i.Month()), i.Day(), tod.Hour, tod.Minute, tod.Second, 0, i.t.Location())}
}

// Add advances i by the given duration.
func (i Instant) Add(d time.Duration) Instant { return Instant{t: i.t.Add(d)} }

// Sub returns i-o as a duration.
func (i Instant) Sub(o Instant) time.Duration { return i.t.Sub(o.t) }

func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }
func (i Instant) After(o Instant) bool  { return i.t.After(o.t) }
func (i Instant) Equal(o Instant) bool  { return i.t.Equal(o.t) }

// String renders i as "YYYY-MM-DD HH:MM:SS", useful for debugging and logs.
func (i Instant) String() string { return i.t.Format("2006-01-02 15:04:05") }

// daysInMonth returns the number of days in the given calendar month, using
// the "day zero of next month" trick.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// TimeOfDay is a time-of-day at second precision: hour in 0..23, minute and
// second in 0..59.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// NewTimeOfDay validates and builds a TimeOfDay.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour out of range 0..23, got %d", ErrParameter, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute out of range 0..59, got %d", ErrParameter, minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second out of range 0..59, got %d", ErrParameter, second)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on error. Intended for
// package-level variable initialization with known-good literals.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return tod
}

// SecondsInDay returns the number of seconds since midnight, in 0..86399.
func (t TimeOfDay) SecondsInDay() int { return t.Hour*3600 + t.Minute*60 + t.Second }

// FloorToMinute zeroes the seconds component.
func (t TimeOfDay) FloorToMinute() TimeOfDay { return TimeOfDay{Hour: t.Hour, Minute: t.Minute} }

// String renders t as "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Duration is a non-negative number of seconds, used for Every's period.
type Duration int64

// Seconds, Minutes and Hours build a Duration from the given unit. Go has no
// named/optional parameters, so Every takes a single Duration built from one
// of these rather than separate seconds/minutes/hours arguments.
func Seconds(n int) Duration { return Duration(n) }
func Minutes(n int) Duration { return Duration(n) * 60 }
func Hours(n int) Duration   { return Duration(n) * 3600 }

// ToStd converts d to a time.Duration.
func (d Duration) ToStd() time.Duration { return time.Duration(d) * time.Second }

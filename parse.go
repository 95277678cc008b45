package zexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimeOfDay parses a time-of-day in one of the forms HH, HH:MM, or
// HH:MM:SS (24-hour, zero-padded or not). Missing components default to
// zero: "15" means 15:00:00, "15:04" means 15:04:00.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(raw, ":")
	if len(parts) == 0 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("%w: invalid time-of-day %q", ErrParse, raw)
	}

	values := [3]int{}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: invalid time-of-day component %q: %v", ErrParse, p, err)
		}
		values[i] = v
	}

	tod, err := NewTimeOfDay(values[0], values[1], values[2])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid time-of-day %q: %v", ErrParse, raw, err)
	}
	return tod, nil
}

// instantLayouts are the accepted "YYYY-MM-DD HH:MM:SS" layouts, with either
// a space or a 'T' separator between date and time.
var instantLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseInstant parses an ISO-8601-flavored instant "YYYY-MM-DD HH:MM:SS",
// with the date/time separator being either a space or 'T'. The result is
// located in time.Local, since this package does not perform timezone
// conversion; callers needing another location should construct an Instant
// directly via NewInstant or FromTime.
func ParseInstant(raw string) (Instant, error) {
	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return FromTime(t), nil
		}
		lastErr = err
	}
	return Instant{}, fmt.Errorf("%w: invalid instant %q: %v", ErrParse, raw, lastErr)
}

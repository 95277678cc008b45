package zexpr

import "fmt"

// dayOfMonthLeaf denotes either a single day-of-month (possibly negative,
// counting back from the end of the month) or an inclusive range of
// positive days-of-month.
type dayOfMonthLeaf struct {
	isRange    bool
	single     int // used when !isRange; may be negative
	from, to   int // used when isRange; both positive, from <= to
}

// DayOfMonth builds a continuous expression matching a day-of-month. Called
// with one argument it matches a single day: d in 1..31 matches that day of
// the month directly, d in -31..-1 counts back from the last day of the
// month (-1 = last day). Called with two arguments (from, to) it matches the
// inclusive range from..to, both in 1..31 with from <= to. An index that
// does not exist in a given month (e.g. 31 in April) simply never matches
// that month; it is not an error and does not roll over.
func DayOfMonth(d ...int) (Node, error) {
	switch len(d) {
	case 1:
		v := d[0]
		if v == 0 || v < -31 || v > 31 {
			return nil, fmt.Errorf("%w: day-of-month must be in 1..31 or -31..-1, got %d", ErrParameter, v)
		}
		return &dayOfMonthLeaf{single: v}, nil

	case 2:
		from, to := d[0], d[1]
		if from < 1 || from > 31 {
			return nil, fmt.Errorf("%w: day-of-month range start must be in 1..31, got %d", ErrParameter, from)
		}
		if to < 1 || to > 31 {
			return nil, fmt.Errorf("%w: day-of-month range end must be in 1..31, got %d", ErrParameter, to)
		}
		if from > to {
			return nil, fmt.Errorf("%w: day-of-month range start %d is after end %d", ErrParameter, from, to)
		}
		return &dayOfMonthLeaf{isRange: true, from: from, to: to}, nil

	default:
		return nil, fmt.Errorf("%w: DayOfMonth expects 1 or 2 arguments, got %d", ErrParameter, len(d))
	}
}

// MustDayOfMonth is like DayOfMonth but panics on error.
func MustDayOfMonth(d ...int) Node {
	node, err := DayOfMonth(d...)
	if err != nil {
		panic(err)
	}
	return node
}

func (d *dayOfMonthLeaf) Kind() Kind { return Continuous }

func (d *dayOfMonthLeaf) contains(t Instant) bool {
	daysInMonth := t.DaysInMonth()
	day := t.Day()

	if d.isRange {
		to := d.to
		if to > daysInMonth {
			to = daysInMonth
		}
		return day >= d.from && day <= to
	}

	if d.single > 0 {
		return d.single <= daysInMonth && day == d.single
	}

	// Negative index: -1 is the last day of the month.
	resolved := daysInMonth + 1 + d.single
	return resolved >= 1 && day == resolved
}

func (d *dayOfMonthLeaf) boundaryAfter(t Instant) (Instant, bool, bool) {
	return scanDayBoundary(t, d.contains)
}

func (d *dayOfMonthLeaf) String() string {
	if d.isRange {
		return fmt.Sprintf("DayOfMonth(%d, %d)", d.from, d.to)
	}
	return fmt.Sprintf("DayOfMonth(%d)", d.single)
}

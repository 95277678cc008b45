package zexpr

import "fmt"

// timerangeLeaf denotes the set of instants whose time-of-day lies in
// [start, end). If start > end the range wraps through midnight:
// [start, 24:00) union [00:00, end). start == end denotes the empty set.
type timerangeLeaf struct {
	start, end TimeOfDay
}

// Timerange builds a continuous expression matching a half-open daily time
// window [start, end). Construction never fails: start and end are already
// validated TimeOfDay values, and start == end is a legal (if useless)
// empty set rather than an error.
func Timerange(start, end TimeOfDay) (Node, error) {
	return &timerangeLeaf{start: start, end: end}, nil
}

// MustTimerange is like Timerange but panics on error.
func MustTimerange(start, end TimeOfDay) Node {
	node, err := Timerange(start, end)
	if err != nil {
		panic(err)
	}
	return node
}

func (r *timerangeLeaf) Kind() Kind { return Continuous }

func (r *timerangeLeaf) contains(t Instant) bool {
	s, e := r.start.SecondsInDay(), r.end.SecondsInDay()
	if s == e {
		return false
	}

	cur := t.TimeOfDay().SecondsInDay()
	if s < e {
		return cur >= s && cur < e
	}

	// Wraps through midnight.
	return cur >= s || cur < e
}

func (r *timerangeLeaf) boundaryAfter(t Instant) (Instant, bool, bool) {
	if r.start.SecondsInDay() == r.end.SecondsInDay() {
		return Instant{}, false, false
	}

	day := t.StartOfDay()
	tomorrow := day.AddDays(1)
	candidates := [4]Instant{
		day.WithTime(r.start),
		day.WithTime(r.end),
		tomorrow.WithTime(r.start),
		tomorrow.WithTime(r.end),
	}

	var best Instant
	found := false
	for _, c := range candidates {
		if !c.After(t) {
			continue
		}
		if !found || c.Before(best) {
			best, found = c, true
		}
	}
	if !found {
		// Unreachable in practice: tomorrow.WithTime(r.start) is always
		// strictly after t.
		return Instant{}, false, false
	}

	return best, r.contains(best), true
}

func (r *timerangeLeaf) String() string {
	return fmt.Sprintf("Timerange(%s, %s)", r.start, r.end)
}

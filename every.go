package zexpr

import (
	"fmt"
	"time"
)

// everyLeaf denotes an evenly spaced sequence of instants separated by
// period, laid out from anchor. The spec intentionally leaves the absolute
// phase of this grid unspecified: only the spacing between consecutive
// firings is an observable contract.
type everyLeaf struct {
	period Duration
	anchor Instant
}

// Every builds a discrete expression firing every period, anchored at the
// instant of construction (truncated to the whole second). period must be
// positive.
//
// Different calls to Every produce schedules with different absolute
// phases; only the spacing between consecutive firings of a single Every
// is guaranteed. Use EveryFrom for a schedule anchored at a known instant,
// e.g. in tests.
func Every(period Duration) (Node, error) {
	return EveryFrom(period, FromTime(time.Now()))
}

// EveryFrom is like Every but anchors the grid at the given instant instead
// of the construction-time clock. Useful for deterministic tests and for
// callers who want a specific, reproducible phase.
func EveryFrom(period Duration, anchor Instant) (Node, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: Every period must be positive, got %d seconds", ErrParameter, period)
	}
	return &everyLeaf{period: period, anchor: anchor}, nil
}

// MustEvery is like Every but panics on error.
func MustEvery(period Duration) Node {
	node, err := Every(period)
	if err != nil {
		panic(err)
	}
	return node
}

func (e *everyLeaf) Kind() Kind { return Discrete }

func (e *everyLeaf) next(t Instant) (Instant, error) {
	diff := t.Sub(e.anchor)
	if diff <= 0 {
		return e.anchor, nil
	}

	period := e.period.ToStd()
	periods := int64(diff) / int64(period)
	if int64(diff)%int64(period) != 0 {
		periods++
	}

	return e.anchor.Add(time.Duration(periods) * period), nil
}

func (e *everyLeaf) String() string {
	return fmt.Sprintf("Every(%ds from %s)", e.period, e.anchor)
}

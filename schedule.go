package zexpr

import "fmt"

// Schedule wraps a discrete expression tree as the externally usable
// "when does this fire next" query. It is purely functional: Next never
// mutates the tree and holds no locks, so a Schedule may be queried
// concurrently from any number of goroutines.
type Schedule struct {
	root discreteNode
}

// New builds a Schedule from a discrete root expression. It returns
// ErrUsage if root is not discrete.
func New(root Node) (Schedule, error) {
	d, ok := root.(discreteNode)
	if !ok || root.Kind() != Discrete {
		return Schedule{}, fmt.Errorf("%w: Schedule requires a discrete root, got %s", ErrUsage, root.Kind())
	}
	return Schedule{root: d}, nil
}

// MustNew is like New but panics on error.
func MustNew(root Node) Schedule {
	s, err := New(root)
	if err != nil {
		panic(err)
	}
	return s
}

// Next returns the smallest instant s >= t that fires the schedule. It
// returns ErrNoMatch if no such instant exists within Horizon.
//
// Next is monotonic (t1 <= t2 implies Next(t1) <= Next(t2)), idempotent at
// firings (Next(Next(t)) == Next(t)), and never returns an instant before t.
func (s Schedule) Next(t Instant) (Instant, error) {
	if s.root == nil {
		return Instant{}, fmt.Errorf("%w: zero-value Schedule has no root", ErrUsage)
	}
	return s.root.next(t)
}

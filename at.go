package zexpr

import "fmt"

// atLeaf denotes the instant on every calendar day at exactly time-of-day tod.
type atLeaf struct {
	tod TimeOfDay
}

// At builds a discrete expression firing once a day, at tod.
func At(tod TimeOfDay) (Node, error) {
	return &atLeaf{tod: tod}, nil
}

// MustAt is like At but panics on error.
func MustAt(tod TimeOfDay) Node {
	node, err := At(tod)
	if err != nil {
		panic(err)
	}
	return node
}

func (a *atLeaf) Kind() Kind { return Discrete }

func (a *atLeaf) next(t Instant) (Instant, error) {
	today := t.WithTime(a.tod)
	if !t.After(today) {
		return today, nil
	}
	return t.AddDays(1).WithTime(a.tod), nil
}

func (a *atLeaf) String() string {
	return fmt.Sprintf("At(%s)", a.tod)
}

package zexpr

import "fmt"

// andFlatten and orFlatten let And/Or flatten nested same-connective
// composites at construction time: And(And(a, b), c) becomes And(a, b, c).
// andContinuous, orContinuous and orDiscrete expose these, since merging
// their children preserves meaning (andDiscrete has a single fixed
// discrete factor, so there is nothing generic to flatten into).
type andFlatten interface {
	andOperands() []Node
}

type orFlatten interface {
	orOperands() []Node
}

// And combines one or more expressions with logical AND. The result's kind
// follows the typing table for AND:
//
//   - all children continuous -> continuous
//   - exactly one discrete child, rest continuous -> discrete (the
//     continuous children are combined into a single gate)
//   - two or more discrete children -> TypingError
//
// A single child is returned unchanged (unary And reduces to its operand).
func And(children ...Node) (Node, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: And requires at least one child", ErrTyping)
	}

	flat := flattenAnd(children)
	if len(flat) == 1 {
		return flat[0], nil
	}

	var continuous []continuousNode
	var discrete []discreteNode
	for _, n := range flat {
		switch n.Kind() {
		case Continuous:
			continuous = append(continuous, n.(continuousNode))
		case Discrete:
			discrete = append(discrete, n.(discreteNode))
		}
	}

	switch {
	case len(discrete) == 0:
		return &andContinuous{children: continuous}, nil
	case len(discrete) == 1:
		return &andDiscrete{gate: combineContinuous(continuous), disc: discrete[0]}, nil
	default:
		return nil, fmt.Errorf("%w: And of two or more discrete expressions is not well-formed", ErrTyping)
	}
}

// MustAnd is like And but panics on error.
func MustAnd(children ...Node) Node {
	node, err := And(children...)
	if err != nil {
		panic(err)
	}
	return node
}

func flattenAnd(children []Node) []Node {
	var flat []Node
	for _, n := range children {
		if af, ok := n.(andFlatten); ok {
			flat = append(flat, af.andOperands()...)
		} else {
			flat = append(flat, n)
		}
	}
	return flat
}

// combineContinuous merges one or more continuous nodes into a single
// continuous gate, so the discrete And evaluator only ever has to reason
// about one continuous factor.
func combineContinuous(nodes []continuousNode) continuousNode {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &andContinuous{children: nodes}
}

// Or combines one or more expressions with logical OR. The result's kind
// follows the typing table for OR:
//
//   - all children continuous -> continuous
//   - all children discrete -> discrete (ties collapse to a single firing)
//   - a mix of continuous and discrete children -> TypingError
//
// A single child is returned unchanged (unary Or reduces to its operand).
func Or(children ...Node) (Node, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: Or requires at least one child", ErrTyping)
	}

	flat := flattenOr(children)
	if len(flat) == 1 {
		return flat[0], nil
	}

	var continuous []continuousNode
	var discrete []discreteNode
	for _, n := range flat {
		switch n.Kind() {
		case Continuous:
			continuous = append(continuous, n.(continuousNode))
		case Discrete:
			discrete = append(discrete, n.(discreteNode))
		}
	}

	switch {
	case len(discrete) == 0:
		return &orContinuous{children: continuous}, nil
	case len(continuous) == 0:
		return &orDiscrete{children: discrete}, nil
	default:
		return nil, fmt.Errorf("%w: Or of continuous and discrete expressions is not well-formed", ErrTyping)
	}
}

// MustOr is like Or but panics on error.
func MustOr(children ...Node) Node {
	node, err := Or(children...)
	if err != nil {
		panic(err)
	}
	return node
}

func flattenOr(children []Node) []Node {
	var flat []Node
	for _, n := range children {
		if of, ok := n.(orFlatten); ok {
			flat = append(flat, of.orOperands()...)
		} else {
			flat = append(flat, n)
		}
	}
	return flat
}

// Not negates a continuous expression. NOT of a discrete expression is not
// well-formed: the complement of an isolated-points set is not a sensible
// schedule.
func Not(child Node) (Node, error) {
	if child.Kind() != Continuous {
		return nil, fmt.Errorf("%w: Not requires a continuous operand", ErrTyping)
	}
	return &notContinuous{child: child.(continuousNode)}, nil
}

// MustNot is like Not but panics on error.
func MustNot(child Node) Node {
	node, err := Not(child)
	if err != nil {
		panic(err)
	}
	return node
}

// maxCompositeIterations bounds the refinement loop in andContinuous and
// orContinuous's boundaryAfter: a safety net above horizonDays so that a
// bug can never spin forever, without changing normal-case behavior (real
// schedules change value within a handful of child boundaries).
const maxCompositeIterations = horizonDays + 16

// andContinuous is the conjunction of two or more continuous nodes.
type andContinuous struct {
	children []continuousNode
}

func (a *andContinuous) Kind() Kind { return Continuous }

func (a *andContinuous) contains(t Instant) bool {
	for _, c := range a.children {
		if !c.contains(t) {
			return false
		}
	}
	return true
}

func (a *andContinuous) boundaryAfter(t Instant) (Instant, bool, bool) {
	baseline := a.contains(t)
	cur := t

	for i := 0; i < maxCompositeIterations; i++ {
		next, found := a.minChildBoundary(cur)
		if !found {
			return Instant{}, false, false
		}
		if v := a.contains(next); v != baseline {
			return next, v, true
		}
		cur = next
	}

	return Instant{}, false, false
}

func (a *andContinuous) minChildBoundary(t Instant) (Instant, bool) {
	var best Instant
	found := false
	for _, c := range a.children {
		next, _, ok := c.boundaryAfter(t)
		if !ok {
			continue
		}
		if !found || next.Before(best) {
			best, found = next, true
		}
	}
	return best, found
}

func (a *andContinuous) andOperands() []Node {
	out := make([]Node, len(a.children))
	for i, c := range a.children {
		out[i] = c
	}
	return out
}

func (a *andContinuous) String() string { return joinNodes("And", toNodes(a.children)) }

// orContinuous is the disjunction of two or more continuous nodes.
type orContinuous struct {
	children []continuousNode
}

func (o *orContinuous) Kind() Kind { return Continuous }

func (o *orContinuous) contains(t Instant) bool {
	for _, c := range o.children {
		if c.contains(t) {
			return true
		}
	}
	return false
}

func (o *orContinuous) boundaryAfter(t Instant) (Instant, bool, bool) {
	baseline := o.contains(t)
	cur := t

	for i := 0; i < maxCompositeIterations; i++ {
		next, found := o.minChildBoundary(cur)
		if !found {
			return Instant{}, false, false
		}
		if v := o.contains(next); v != baseline {
			return next, v, true
		}
		cur = next
	}

	return Instant{}, false, false
}

func (o *orContinuous) minChildBoundary(t Instant) (Instant, bool) {
	var best Instant
	found := false
	for _, c := range o.children {
		next, _, ok := c.boundaryAfter(t)
		if !ok {
			continue
		}
		if !found || next.Before(best) {
			best, found = next, true
		}
	}
	return best, found
}

func (o *orContinuous) orOperands() []Node {
	out := make([]Node, len(o.children))
	for i, c := range o.children {
		out[i] = c
	}
	return out
}

func (o *orContinuous) String() string { return joinNodes("Or", toNodes(o.children)) }

// notContinuous negates a continuous node. Its boundaries coincide exactly
// with the child's; only the membership value flips.
type notContinuous struct {
	child continuousNode
}

func (n *notContinuous) Kind() Kind { return Continuous }

func (n *notContinuous) contains(t Instant) bool { return !n.child.contains(t) }

func (n *notContinuous) boundaryAfter(t Instant) (Instant, bool, bool) {
	next, value, ok := n.child.boundaryAfter(t)
	if !ok {
		return Instant{}, false, false
	}
	return next, !value, true
}

func (n *notContinuous) String() string { return fmt.Sprintf("Not(%s)", nodeString(n.child)) }

// andDiscrete is And(gate, disc) where gate is continuous and disc is
// discrete -- the only well-formed discrete And. It walks disc's firings
// and skips whole dead intervals of gate instead of ticking second by
// second.
type andDiscrete struct {
	gate continuousNode
	disc discreteNode
}

func (a *andDiscrete) Kind() Kind { return Discrete }

func (a *andDiscrete) next(t Instant) (Instant, error) {
	limit := t.Add(Horizon)
	cur := t

	for {
		if cur.After(limit) {
			return Instant{}, fmt.Errorf("%w", ErrNoMatch)
		}

		s, err := a.disc.next(cur)
		if err != nil {
			return Instant{}, err
		}
		if s.After(limit) {
			return Instant{}, fmt.Errorf("%w", ErrNoMatch)
		}

		if a.gate.contains(s) {
			return s, nil
		}

		next, ok := nextEntry(a.gate, s)
		if !ok {
			return Instant{}, fmt.Errorf("%w", ErrNoMatch)
		}
		cur = next
	}
}

func (a *andDiscrete) String() string {
	return fmt.Sprintf("And(%s, %s)", nodeString(a.gate), nodeString(a.disc))
}

// orDiscrete is the union of two or more discrete nodes: the next firing is
// the earliest of all children's next firings. Ties (two children firing at
// the same instant) collapse to a single result.
type orDiscrete struct {
	children []discreteNode
}

func (o *orDiscrete) Kind() Kind { return Discrete }

func (o *orDiscrete) next(t Instant) (Instant, error) {
	var best Instant
	found := false
	var lastErr error

	for _, c := range o.children {
		n, err := c.next(t)
		if err != nil {
			lastErr = err
			continue
		}
		if !found || n.Before(best) {
			best, found = n, true
		}
	}

	if !found {
		if lastErr != nil {
			return Instant{}, lastErr
		}
		return Instant{}, fmt.Errorf("%w", ErrNoMatch)
	}

	return best, nil
}

func (o *orDiscrete) orOperands() []Node {
	out := make([]Node, len(o.children))
	for i, c := range o.children {
		out[i] = c
	}
	return out
}

func (o *orDiscrete) String() string { return joinNodes("Or", toNodes(o.children)) }

func toNodes[T Node](in []T) []Node {
	out := make([]Node, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func joinNodes(op string, nodes []Node) string {
	s := op + "("
	for i, n := range nodes {
		if i > 0 {
			s += ", "
		}
		s += nodeString(n)
	}
	return s + ")"
}

// nodeString renders n via its String method if it implements fmt.Stringer,
// falling back to its kind otherwise.
func nodeString(n Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return n.Kind().String()
}

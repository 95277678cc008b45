package zexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnd_NoChildren(t *testing.T) {
	_, err := And()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTyping)
}

func TestAnd_UnaryReducesToOperand(t *testing.T) {
	node, err := And(Monday)
	require.NoError(t, err)
	assert.Same(t, Monday, node)
}

func TestAnd_AllContinuous(t *testing.T) {
	tr := MustTimerange(MustTimeOfDay(9, 0, 0), MustTimeOfDay(17, 0, 0))
	node, err := And(Monday, tr)
	require.NoError(t, err)
	assert.Equal(t, Continuous, node.Kind())
}

func TestAnd_OneDiscreteIsDiscrete(t *testing.T) {
	at := MustAt(MustTimeOfDay(12, 0, 0))
	node, err := And(Monday, at)
	require.NoError(t, err)
	assert.Equal(t, Discrete, node.Kind())

	ad, ok := node.(*andDiscrete)
	require.True(t, ok)
	assert.Same(t, Monday, ad.gate)
}

// At(10) & At(12) has no sensible meaning (two isolated-point sets can
// never coincide generically) and must be rejected at construction time.
func TestAnd_TwoDiscreteIsTypingError(t *testing.T) {
	a := MustAt(MustTimeOfDay(10, 0, 0))
	b := MustAt(MustTimeOfDay(12, 0, 0))
	_, err := And(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTyping)
}

func TestAnd_FlattensNestedContinuous(t *testing.T) {
	inner := MustAnd(Monday, Tuesday)
	node, err := And(inner, Wednesday)
	require.NoError(t, err)

	ac, ok := node.(*andContinuous)
	require.True(t, ok)
	assert.Len(t, ac.children, 3)
}

func TestOr_NoChildren(t *testing.T) {
	_, err := Or()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTyping)
}

func TestOr_UnaryReducesToOperand(t *testing.T) {
	node, err := Or(Saturday)
	require.NoError(t, err)
	assert.Same(t, Saturday, node)
}

func TestOr_AllContinuous(t *testing.T) {
	node, err := Or(Saturday, Sunday)
	require.NoError(t, err)
	assert.Equal(t, Continuous, node.Kind())
}

func TestOr_AllDiscrete(t *testing.T) {
	a := MustAt(MustTimeOfDay(10, 0, 0))
	b := MustAt(MustTimeOfDay(18, 0, 0))
	node, err := Or(a, b)
	require.NoError(t, err)
	assert.Equal(t, Discrete, node.Kind())
}

func TestOr_MixedKindsIsTypingError(t *testing.T) {
	at := MustAt(MustTimeOfDay(10, 0, 0))
	_, err := Or(Monday, at)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTyping)
}

func TestOr_FlattensNestedContinuous(t *testing.T) {
	inner := MustOr(Saturday, Sunday)
	node, err := Or(inner, Monday)
	require.NoError(t, err)

	oc, ok := node.(*orContinuous)
	require.True(t, ok)
	assert.Len(t, oc.children, 3)
}

func TestNot_RequiresContinuousOperand(t *testing.T) {
	node, err := Not(Monday)
	require.NoError(t, err)
	assert.Equal(t, Continuous, node.Kind())
}

// ~At(10) has no sensible meaning (the complement of an isolated-point set)
// and must be rejected at construction time.
func TestNot_DiscreteOperandIsTypingError(t *testing.T) {
	at := MustAt(MustTimeOfDay(10, 0, 0))
	_, err := Not(at)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTyping)
}

func TestNot_ComplementsChild(t *testing.T) {
	node := MustNot(Monday)
	nc := node.(*notContinuous)

	monday := FromTime(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	tuesday := FromTime(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC))

	assert.False(t, nc.contains(monday))
	assert.True(t, nc.contains(tuesday))
}

func TestAndDiscrete_SkipsDeadRegions(t *testing.T) {
	// Monday & At(12:00). Jan 1 2024 is a Monday; the second firing should
	// skip the entire dead week and land on the following Monday at noon.
	gate := Monday
	at := MustAt(MustTimeOfDay(12, 0, 0))
	node := MustAnd(gate, at)
	sched := node.(*andDiscrete)

	from := FromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	first, err := sched.next(from)
	require.NoError(t, err)
	assert.Equal(t, NewInstant(2024, 1, 1, 12, 0, 0, time.UTC), first)

	second, err := sched.next(first.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, NewInstant(2024, 1, 8, 12, 0, 0, time.UTC), second)
}

func TestOrDiscrete_TakesEarliest(t *testing.T) {
	a := MustAt(MustTimeOfDay(10, 0, 0))
	b := MustAt(MustTimeOfDay(18, 0, 0))
	node := MustOr(a, b)
	od := node.(*orDiscrete)

	// Friday 2024-01-05: (Sat|Sun) gate combined with the two At firings.
	gate := MustOr(Saturday, Sunday)
	full := MustAnd(gate, node)
	sched := full.(*andDiscrete)
	_ = od

	from := FromTime(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	first, err := sched.next(from)
	require.NoError(t, err)
	assert.Equal(t, NewInstant(2024, 1, 6, 10, 0, 0, time.UTC), first)

	second, err := sched.next(first.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, NewInstant(2024, 1, 6, 18, 0, 0, time.UTC), second)
}

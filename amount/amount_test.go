package amount_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/amount"
)

func TestAddSub(t *testing.T) {
	a := amount.FromUint64(10)
	b := amount.FromUint64(3)
	require.True(t, a.Add(b).Equal(amount.FromUint64(13)))
	require.True(t, a.Sub(b).Equal(amount.FromUint64(7)))
}

func TestSubSaturates(t *testing.T) {
	a := amount.FromUint64(3)
	b := amount.FromUint64(10)
	require.True(t, a.Sub(b).IsZero())
}

func TestMin(t *testing.T) {
	a := amount.FromUint64(5)
	b := amount.FromUint64(9)
	require.True(t, a.Min(b).Equal(a))
	require.True(t, b.Min(a).Equal(a))
}

func TestMax256IsGreaterThanMaxUint64(t *testing.T) {
	m := amount.Max256()
	require.True(t, m.Greater(amount.FromUint64(math.MaxUint64)))
}

func TestAddCheckedOverflow(t *testing.T) {
	m := amount.Max256()
	_, overflow := m.AddChecked(amount.FromUint64(1))
	require.True(t, overflow)

	sum, overflow := amount.FromUint64(1).AddChecked(amount.FromUint64(2))
	require.False(t, overflow)
	require.True(t, sum.Equal(amount.FromUint64(3)))
}

func TestCmp(t *testing.T) {
	a := amount.FromUint64(1)
	b := amount.FromUint64(2)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}

func TestStringDecimal(t *testing.T) {
	require.Equal(t, "42", amount.FromUint64(42).String())
}

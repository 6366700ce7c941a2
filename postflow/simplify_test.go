package postflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/postflow"
	"github.com/circlesnet/flowengine/transfer"
)

func TestSimplifyCollapsesChain(t *testing.T) {
	a, b, c, tok := addrN(1), addrN(2), addrN(3), addrN(9)
	eight := amount.FromUint64(8)

	out := postflow.Simplify([]transfer.Edge{
		{From: a, To: b, Token: tok, Capacity: eight},
		{From: b, To: c, Token: tok, Capacity: eight},
	})
	require.Equal(t, []transfer.Edge{{From: a, To: c, Token: tok, Capacity: eight}}, out)
}

func TestSimplifyLeavesDistinctTokensAlone(t *testing.T) {
	a, b, c, t1, t2 := addrN(1), addrN(2), addrN(3), addrN(4), addrN(5)
	eight := amount.FromUint64(8)

	in := []transfer.Edge{
		{From: a, To: b, Token: t1, Capacity: eight},
		{From: b, To: c, Token: t2, Capacity: eight},
	}
	out := postflow.Simplify(in)
	require.Equal(t, in, out)
}

func TestSimplifyIsIdempotent(t *testing.T) {
	a, b, c, tok := addrN(1), addrN(2), addrN(3), addrN(9)
	eight := amount.FromUint64(8)

	first := postflow.Simplify([]transfer.Edge{
		{From: a, To: b, Token: tok, Capacity: eight},
		{From: b, To: c, Token: tok, Capacity: eight},
	})
	second := postflow.Simplify(first)
	require.Equal(t, first, second)
}

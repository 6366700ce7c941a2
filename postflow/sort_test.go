package postflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/postflow"
	"github.com/circlesnet/flowengine/transfer"
)

func TestSortOrdersReceiveBeforeSend(t *testing.T) {
	a, b, c, tok := addrN(1), addrN(2), addrN(3), addrN(9)
	five := amount.FromUint64(5)

	// Fed in reverse of the only valid order: b can't dispatch to c until
	// it has received from a.
	in := []transfer.Edge{
		{From: b, To: c, Token: tok, Capacity: five},
		{From: a, To: b, Token: tok, Capacity: five},
	}
	out := postflow.Sort(in)
	require.Equal(t, []transfer.Edge{
		{From: a, To: b, Token: tok, Capacity: five},
		{From: b, To: c, Token: tok, Capacity: five},
	}, out)
}

func TestSortLeavesIndependentTransfersInInputOrder(t *testing.T) {
	a, b, c, d, tok := addrN(1), addrN(2), addrN(3), addrN(4), addrN(9)
	five := amount.FromUint64(5)

	in := []transfer.Edge{
		{From: a, To: b, Token: tok, Capacity: five},
		{From: c, To: d, Token: tok, Capacity: five},
	}
	out := postflow.Sort(in)
	require.Equal(t, in, out)
}

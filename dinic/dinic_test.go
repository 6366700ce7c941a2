package dinic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/adjacency"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/dinic"
	"github.com/circlesnet/flowengine/edgedb"
	"github.com/circlesnet/flowengine/flownode"
)

func addrN(n int) address.Address {
	var a address.Address
	a[19] = byte(n)
	return a
}

func TestDirect(t *testing.T) {
	a, b, tok := addrN(1), addrN(2), addrN(3)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: tok, Capacity: amount.FromUint64(10)},
	})
	adj := adjacency.New(db)
	flow, _, err := dinic.Run(context.Background(), adj, flownode.Plain(a), flownode.Plain(b), nil)
	require.NoError(t, err)
	require.True(t, flow.Equal(amount.FromUint64(10)))
}

func TestOneHop(t *testing.T) {
	a, b, c, t1, t2 := addrN(1), addrN(2), addrN(3), addrN(4), addrN(5)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: t1, Capacity: amount.FromUint64(10)},
		{From: b, To: c, Token: t2, Capacity: amount.FromUint64(8)},
	})
	adj := adjacency.New(db)
	flow, _, err := dinic.Run(context.Background(), adj, flownode.Plain(a), flownode.Plain(c), nil)
	require.NoError(t, err)
	require.True(t, flow.Equal(amount.FromUint64(8)))
}

func TestDiamondMaxFlow(t *testing.T) {
	a, b, c, d, t1, t2 := addrN(1), addrN(2), addrN(3), addrN(4), addrN(5), addrN(6)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: t1, Capacity: amount.FromUint64(10)},
		{From: a, To: c, Token: t2, Capacity: amount.FromUint64(7)},
		{From: b, To: d, Token: t2, Capacity: amount.FromUint64(9)},
		{From: c, To: d, Token: t1, Capacity: amount.FromUint64(8)},
	})
	adj := adjacency.New(db)
	flow, _, err := dinic.Run(context.Background(), adj, flownode.Plain(a), flownode.Plain(d), nil)
	require.NoError(t, err)
	require.True(t, flow.Equal(amount.FromUint64(16)))
}

func TestTrustTransferLimit(t *testing.T) {
	a, b, c, d := addrN(1), addrN(2), addrN(3), addrN(4)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: a, Capacity: amount.FromUint64(10)},
		{From: a, To: c, Token: a, Capacity: amount.FromUint64(11)},
		{From: b, To: d, Token: a, Capacity: amount.FromUint64(9)},
		{From: c, To: d, Token: a, Capacity: amount.FromUint64(8)},
	})
	adj := adjacency.New(db)
	flow, _, err := dinic.Run(context.Background(), adj, flownode.Plain(a), flownode.Plain(d), nil)
	require.NoError(t, err)
	require.True(t, flow.Equal(amount.FromUint64(9)))
}

func TestUnreachable(t *testing.T) {
	a, b, c, t1 := addrN(1), addrN(2), addrN(3), addrN(4)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: t1, Capacity: amount.FromUint64(5)},
	})
	adj := adjacency.New(db)
	flow, flowDist, err := dinic.Run(context.Background(), adj, flownode.Plain(a), flownode.Plain(c), nil)
	require.NoError(t, err)
	require.True(t, flow.IsZero())
	require.Equal(t, 0, flowDist.EdgeCount())
}

func TestCanceledContextReturnsPartial(t *testing.T) {
	a, b, tok := addrN(1), addrN(2), addrN(3)
	db := edgedb.New([]edgedb.CapacityEdge{
		{From: a, To: b, Token: tok, Capacity: amount.FromUint64(10)},
	})
	adj := adjacency.New(db)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dinic.Run(ctx, adj, flownode.Plain(a), flownode.Plain(b), nil)
	require.Error(t, err)
}

package flownode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/flownode"
)

func addrs() (a, b address.Address) {
	return address.MustParse("0x1100000000000000000000000000000000000000"),
		address.MustParse("0x2200000000000000000000000000000000000000")
}

func TestVariantOrderingByKind(t *testing.T) {
	a, _ := addrs()
	p := flownode.Plain(a)
	bal := flownode.Balance(a, a)
	tr := flownode.Trust(a, a)
	require.True(t, p.Less(bal))
	require.True(t, bal.Less(tr))
	require.False(t, tr.Less(p))
}

func TestOrderingByAddressWithinKind(t *testing.T) {
	a, b := addrs()
	require.True(t, flownode.Plain(a).Less(flownode.Plain(b)))
	require.True(t, flownode.Balance(a, a).Less(flownode.Balance(a, b)))
}

func TestEqualityAsMapKey(t *testing.T) {
	a, b := addrs()
	n1 := flownode.Trust(a, b)
	n2 := flownode.Trust(a, b)
	m := map[flownode.LiftedNode]int{n1: 7}
	require.Equal(t, 7, m[n2])
}

func TestTokenPanicsOnPlain(t *testing.T) {
	a, _ := addrs()
	require.Panics(t, func() { flownode.Plain(a).Token() })
}

func TestAccessors(t *testing.T) {
	a, b := addrs()
	n := flownode.Balance(a, b)
	require.Equal(t, a, n.Address())
	require.Equal(t, b, n.Token())
	require.True(t, n.IsBalance())
	require.False(t, n.IsPlain())
	require.False(t, n.IsTrust())
}

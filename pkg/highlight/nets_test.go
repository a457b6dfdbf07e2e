package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rr_view/pkg/rrgraph"
)

func aggFixture(t *testing.T) (*rrgraph.Graph, *rrgraph.Net) {
	t.Helper()
	b := rrgraph.NewBuilder()
	ids := make([]rrgraph.NodeID, 0, 5)
	kinds := []rrgraph.NodeKind{
		rrgraph.KindSource, rrgraph.KindOpin, rrgraph.KindChanX,
		rrgraph.KindIpin, rrgraph.KindSink,
	}
	for _, k := range kinds {
		ids = append(ids, b.AddNode(rrgraph.Node{Kind: k}))
	}
	net := &rrgraph.Net{ID: 0, Name: "agg", Terminals: []rrgraph.NodeID{ids[0], ids[4]}, Traceback: ids}
	return b.Build(), net
}

func TestAggregateAdoptsFirstSpecialMark(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 1)

	s.SetNode(net.Traceback[2], Drives)
	s.SetNode(net.Traceback[3], Selected)
	s.AggregateNets([]*rrgraph.Net{net})

	assert.Equal(t, Drives, s.NetMark(0))
	assert.True(t, s.NetHighlighted(0))
}

// The scan is deliberately asymmetric, reproducing long-standing view
// behavior: a special mark is adopted without stopping, so a Deselected
// node later in the traceback still clears the net; but a Deselected
// node found first stops the scan immediately.
func TestAggregateDeselectAfterSpecialClearsNet(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 1)

	s.SetNode(net.Traceback[1], Selected)
	s.SetNode(net.Traceback[3], Deselected)
	s.AggregateNets([]*rrgraph.Net{net})

	assert.Equal(t, Default, s.NetMark(0))
}

func TestAggregateDeselectFirstStopsScan(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 1)

	s.SetNode(net.Traceback[1], Deselected)
	// A special mark after the deselect must never be reached.
	s.SetNode(net.Traceback[3], Selected)
	s.AggregateNets([]*rrgraph.Net{net})

	assert.Equal(t, Default, s.NetMark(0))
}

func TestAggregateSkipsGlobalAndUnrouted(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 2)

	s.SetNode(net.Traceback[1], Selected)

	global := *net
	global.ID = 1
	global.IsGlobal = true
	s.AggregateNets([]*rrgraph.Net{&global})
	assert.Equal(t, Default, s.NetMark(1))

	unrouted := *net
	unrouted.ID = 1
	unrouted.IsGlobal = false
	unrouted.Traceback = nil
	s.AggregateNets([]*rrgraph.Net{&unrouted})
	assert.Equal(t, Default, s.NetMark(1))
}

func TestRepaintNet(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 1)

	s.SetNode(net.Traceback[2], Selected)
	s.AggregateNets([]*rrgraph.Net{net})
	require.Equal(t, Selected, s.NetMark(0))

	s.RepaintNet(net)
	for _, id := range net.Traceback {
		assert.Equal(t, Selected, s.Node(id))
	}
}

func TestRepaintNetLeavesDefaultNetsAlone(t *testing.T) {
	g, net := aggFixture(t)
	s := NewState(g.NumNodes(), 1)

	s.RepaintNet(net)
	for _, id := range net.Traceback {
		assert.Equal(t, Default, s.Node(id))
	}
}

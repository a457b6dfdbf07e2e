package trace

import (
	"testing"

	"rr_view/pkg/rrgraph"
)

// fabric is a hand-routed two-branch net over a tiny device:
//
//	S0 ─ O1 ─ X2 ─ Y3 ─ X4 ─ I5 ─ K6     (branch 1)
//	           │
//	           X7 ─ I8 ─ K9              (branch 2, forks at X2)
//
// S=SOURCE, O=OPIN, I=IPIN, K=SINK, X=CHANX, Y=CHANY. The traceback
// repeats the branch point X2 after the first SINK, the way the router
// emits it.
type fabric struct {
	g                              *rrgraph.Graph
	s0, o1, x2, y3, x4, i5, k6     rrgraph.NodeID
	x7, i8, k9                     rrgraph.NodeID
	traceback                      []rrgraph.NodeID
	swPin, swDrive, swTurn, swPass rrgraph.SwitchID
}

func buildFabric(t *testing.T) *fabric {
	t.Helper()
	b := rrgraph.NewBuilder()
	f := &fabric{}

	f.s0 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindSource, XLow: 1, XHigh: 1, YLow: 1, YHigh: 1})
	f.o1 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindOpin, XLow: 1, XHigh: 1, YLow: 1, YHigh: 1, Index: 0})
	f.x2 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanX, XLow: 1, XHigh: 2, YLow: 0, YHigh: 0, Index: 3, Dir: rrgraph.DirInc})
	f.y3 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanY, XLow: 2, XHigh: 2, YLow: 1, YHigh: 1, Index: 1, Dir: rrgraph.DirInc})
	f.x4 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanX, XLow: 2, XHigh: 2, YLow: 1, YHigh: 1, Index: 5, Dir: rrgraph.DirDec})
	f.i5 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindIpin, XLow: 2, XHigh: 2, YLow: 2, YHigh: 2, Index: 1})
	f.k6 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindSink, XLow: 2, XHigh: 2, YLow: 2, YHigh: 2})
	f.x7 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanX, XLow: 2, XHigh: 3, YLow: 0, YHigh: 0, Index: 2, Dir: rrgraph.DirInc})
	f.i8 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindIpin, XLow: 3, XHigh: 3, YLow: 1, YHigh: 1, Index: 4})
	f.k9 = b.AddNode(rrgraph.Node{Kind: rrgraph.KindSink, XLow: 3, XHigh: 3, YLow: 1, YHigh: 1})

	f.swPin = b.AddSwitch(true)
	f.swDrive = b.AddSwitch(true)
	f.swTurn = b.AddSwitch(false)
	f.swPass = b.AddSwitch(false)

	b.AddEdge(f.s0, f.o1, f.swPin)
	b.AddEdge(f.o1, f.x2, f.swDrive)
	b.AddEdge(f.x2, f.y3, f.swTurn)
	b.AddEdge(f.y3, f.x4, f.swTurn)
	b.AddEdge(f.x4, f.i5, f.swDrive)
	b.AddEdge(f.i5, f.k6, f.swPin)
	b.AddEdge(f.x2, f.x7, f.swPass)
	b.AddEdge(f.x7, f.i8, f.swDrive)
	b.AddEdge(f.i8, f.k9, f.swPin)

	f.g = b.Build()
	f.traceback = []rrgraph.NodeID{
		f.s0, f.o1, f.x2, f.y3, f.x4, f.i5, f.k6,
		f.x2, f.x7, f.i8, f.k9,
	}
	return f
}

func (f *fabric) net() *rrgraph.Net {
	return &rrgraph.Net{
		ID:        0,
		Name:      "demo",
		Terminals: []rrgraph.NodeID{f.s0, f.k6, f.k9},
		Traceback: f.traceback,
	}
}

package trace

import (
	"rr_view/pkg/rrgraph"
)

// ConnKind names the connection between two adjacent traceback nodes.
type ConnKind uint8

const (
	// PinEntry is a direct pin-to-pin hop (OPIN into IPIN, or the
	// virtual source/sink end of such a hop).
	PinEntry ConnKind = iota
	// PinToFabric connects a pin to a channel wire in either direction.
	PinToFabric
	// FabricTurn switches between a horizontal and a vertical channel.
	FabricTurn
	// FabricStraight continues along channels of the same direction.
	FabricStraight
)

var connNames = [...]string{"PIN_ENTRY", "PIN_TO_FABRIC", "FABRIC_TURN", "FABRIC_STRAIGHT"}

func (k ConnKind) String() string {
	if int(k) < len(connNames) {
		return connNames[k]
	}
	return "UNKNOWN"
}

// Classify names the connection for the ordered node pair prev→cur.
// Every kind combination maps: the four classes partition pin-like and
// channel nodes, so an unconnected pair surfaces later through
// FindSwitch rather than here.
func Classify(prevKind, curKind rrgraph.NodeKind) ConnKind {
	switch {
	case prevKind.IsPin() && curKind.IsPin():
		return PinEntry
	case prevKind.IsPin() || curKind.IsPin():
		return PinToFabric
	case prevKind == curKind:
		return FabricStraight
	default:
		return FabricTurn
	}
}

// Hop is one classified connection within a segment. Track is the track
// number of To when To is a channel node, and PrevTrack the track of
// From for fabric turns; both are -1 otherwise, matching what a
// renderer needs to place the hop.
type Hop struct {
	From, To  rrgraph.NodeID
	Kind      ConnKind
	Switch    rrgraph.SwitchID
	Track     int32
	PrevTrack int32
}

// ClassifySegment classifies every adjacent pair of one segment,
// resolving each hop's switch and assigning track numbers through the
// pass context. Channel nodes are visited (counter-advancing in Global
// mode) exactly once, in segment order, as each becomes the hop target;
// the previous node of a turn is peeked, not revisited.
//
// A missing edge wraps rrgraph.ErrEdgeNotFound: fatal, the segment came
// from a traceback that must be adjacency-consistent.
func ClassifySegment(g *rrgraph.Graph, seg []rrgraph.NodeID, pass *TrackPass) ([]Hop, error) {
	if len(seg) < 2 {
		return nil, nil
	}

	hops := make([]Hop, 0, len(seg)-1)
	for i := 1; i < len(seg); i++ {
		prev, cur := seg[i-1], seg[i]
		sw, err := g.FindSwitch(prev, cur)
		if err != nil {
			return nil, err
		}

		prevKind := g.Nodes[prev].Kind
		curKind := g.Nodes[cur].Kind
		kind := Classify(prevKind, curKind)

		track := int32(-1)
		if curKind.IsChan() {
			track = pass.Visit(g, cur)
		}
		prevTrack := int32(-1)
		if kind == FabricTurn {
			prevTrack = pass.Peek(g, prev)
		}

		hops = append(hops, Hop{
			From:      prev,
			To:        cur,
			Kind:      kind,
			Switch:    sw,
			Track:     track,
			PrevTrack: prevTrack,
		})
	}
	return hops, nil
}

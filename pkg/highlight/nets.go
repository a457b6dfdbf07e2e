package highlight

import (
	"rr_view/pkg/rrgraph"
)

// AggregateNets recomputes every net's aggregate mark from its
// traceback nodes. Global and unrouted nets are skipped.
//
// Scanning a net stops the moment a Deselected node is the first
// non-default mark found: the net is forced back to Default. A special
// mark, by contrast, is adopted without stopping the scan, so a
// Deselected node later in the traceback still clears the net. This
// asymmetry is long-standing observed behavior of the view and is kept
// on purpose; see the aggregation tests.
func (s *State) AggregateNets(nets []*rrgraph.Net) {
	for _, net := range nets {
		if !net.Routed() {
			continue
		}
		s.aggregateNet(net)
	}
}

func (s *State) aggregateNet(net *rrgraph.Net) {
	adopted := false
	for _, id := range net.Traceback {
		m := s.node[id]
		switch {
		case m.Special():
			if !adopted {
				s.net[net.ID] = m
				adopted = true
			}
		case m == Deselected:
			s.net[net.ID] = Default
			return
		}
	}
}

// RepaintNet pushes a highlighted net's aggregate mark back onto every
// node of its traceback, so the whole net renders in one state. Nodes
// of non-highlighted nets are left alone.
func (s *State) RepaintNet(net *rrgraph.Net) {
	if !net.Routed() || !s.net[net.ID].Special() {
		return
	}
	m := s.net[net.ID]
	for _, id := range net.Traceback {
		s.node[id] = m
	}
}

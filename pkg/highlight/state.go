// Package highlight keeps the interactive selection state of the view:
// which routing resource nodes and nets are highlighted, and how a
// selection spreads to its fan-in, fan-out and whole nets.
package highlight

import (
	"rr_view/pkg/rrgraph"
)

// Mark is the highlight state of one node or one net.
type Mark uint8

const (
	// Default: not highlighted.
	Default Mark = iota
	// Selected: the primary clicked node.
	Selected
	// Deselected: explicitly un-clicked; clears derived highlights on
	// the next propagation and forces its net back to Default.
	Deselected
	// Driven marks fan-out of a selected node.
	Driven
	// Drives marks fan-in of a selected node.
	Drives
	// CritHead marks the first node of a displayed critical path.
	CritHead
	// CritTail marks the remaining nodes of a displayed critical path.
	CritTail
)

var markNames = [...]string{"DEFAULT", "SELECTED", "DESELECTED", "DRIVEN", "DRIVES", "CRIT_HEAD", "CRIT_TAIL"}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return "UNKNOWN"
}

// Special reports whether the mark counts as a highlight when a net
// aggregates its traceback nodes. Deselected is deliberately not
// special: it clears, never highlights.
func (m Mark) Special() bool {
	switch m {
	case Selected, Driven, Drives, CritHead, CritTail:
		return true
	}
	return false
}

// State holds the per-node and per-net marks. It is the only mutable
// state of the engine; a single interacting caller mutates it, and
// embeddings with more than one caller must serialize access
// themselves. Never persisted.
type State struct {
	node []Mark
	net  []Mark
}

// NewState returns a State with every node and net at Default.
func NewState(numNodes, numNets int32) *State {
	return &State{
		node: make([]Mark, numNodes),
		net:  make([]Mark, numNets),
	}
}

// Reset returns every node and net to Default.
func (s *State) Reset() {
	for i := range s.node {
		s.node[i] = Default
	}
	for i := range s.net {
		s.net[i] = Default
	}
}

// Node returns the mark of one node.
func (s *State) Node(id rrgraph.NodeID) Mark { return s.node[id] }

// SetNode sets the mark of one node.
func (s *State) SetNode(id rrgraph.NodeID, m Mark) { s.node[id] = m }

// NetMark returns the aggregate mark of one net.
func (s *State) NetMark(netID int32) Mark { return s.net[netID] }

// NetHighlighted reports whether a net carries any special mark.
func (s *State) NetHighlighted(netID int32) bool { return s.net[netID].Special() }

// Toggle flips the clicked node: an unselected node becomes Selected,
// a Selected one becomes Deselected. Returns the new mark.
func (s *State) Toggle(id rrgraph.NodeID) Mark {
	if s.node[id] != Selected {
		s.node[id] = Selected
	} else {
		s.node[id] = Deselected
	}
	return s.node[id]
}

// PropagateFanout spreads the hit node's state to every node it drives:
// a Selected hit marks them Driven, a Deselected hit returns them to
// Default. Other hit states leave the fan-out untouched.
func (s *State) PropagateFanout(g *rrgraph.Graph, hit rrgraph.NodeID) {
	mark := s.node[hit]
	g.FanOut(hit, func(v rrgraph.NodeID) {
		switch mark {
		case Selected:
			s.node[v] = Driven
		case Deselected:
			s.node[v] = Default
		}
	})
}

// PropagateFanin mirrors PropagateFanout onto every node driving the
// hit node, marking them Drives. Without a reverse index on the graph
// this scans all edges; behavior is identical either way.
func (s *State) PropagateFanin(g *rrgraph.Graph, hit rrgraph.NodeID) {
	mark := s.node[hit]
	g.FanIn(hit, func(v rrgraph.NodeID) {
		switch mark {
		case Selected:
			s.node[v] = Drives
		case Deselected:
			s.node[v] = Default
		}
	})
}

// MarkPath paints a reconstructed source→sink path: the first node
// CritHead, the rest CritTail. Used to show a timing arc's physical
// route.
func (s *State) MarkPath(path []rrgraph.NodeID) {
	for i, id := range path {
		if i == 0 {
			s.node[id] = CritHead
		} else {
			s.node[id] = CritTail
		}
	}
}

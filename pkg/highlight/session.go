package highlight

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"rr_view/pkg/rrgraph"
)

// Hitter resolves a world coordinate to a routing resource node.
// Satisfied by both hittest.Tester and hittest.Index.
type Hitter interface {
	Hit(pt r2.Vec) (rrgraph.NodeID, bool)
}

// Session ties hit testing, selection state and net aggregation into
// the click flow the interactive view drives. Single-threaded: each
// click runs to completion before the next one is processed.
type Session struct {
	g      *rrgraph.Graph
	nets   []*rrgraph.Net
	hitter Hitter
	state  *State

	defaultStatus string
}

// NewSession creates a session over finalized routing. nets is indexed
// by net id.
func NewSession(g *rrgraph.Graph, nets []*rrgraph.Net, hitter Hitter) *Session {
	return &Session{
		g:             g,
		nets:          nets,
		hitter:        hitter,
		state:         NewState(g.NumNodes(), int32(len(nets))),
		defaultStatus: "Click on a routing resource to highlight it",
	}
}

// State exposes the session's selection state.
func (s *Session) State() *State { return s.state }

// ClickResult reports what one click changed.
type ClickResult struct {
	// Hit is the node under the click, or rrgraph.NoNode.
	Hit rrgraph.NodeID
	// Mark is the hit node's state after the click.
	Mark Mark
	// Nets lists the ids of nets whose aggregate is now highlighted.
	Nets []int32
	// Status is the human-readable status line for the click.
	Status string
}

// Click processes one point query: wipe the previous selection, hit
// test, toggle the hit node, spread the change to its fan-in and
// fan-out, and refresh net aggregates. A miss still wipes and reports
// the default status; it is a normal outcome, not an error.
func (s *Session) Click(pt r2.Vec) ClickResult {
	return s.click(pt, false)
}

// ClickCtrl is the modifier-click variant: the previous selection
// stays, so clicks accumulate and re-clicking a selected node
// deselects it.
func (s *Session) ClickCtrl(pt r2.Vec) ClickResult {
	return s.click(pt, true)
}

func (s *Session) click(pt r2.Vec, keep bool) ClickResult {
	if !keep {
		s.state.Reset()
	}
	hit, ok := s.hitter.Hit(pt)
	if !ok {
		return ClickResult{Hit: rrgraph.NoNode, Status: s.defaultStatus}
	}

	mark := s.state.Toggle(hit)
	s.state.PropagateFanout(s.g, hit)
	s.state.PropagateFanin(s.g, hit)
	s.state.AggregateNets(s.nets)

	res := ClickResult{Hit: hit, Mark: mark}
	res.Status = s.describe(hit)
	for _, net := range s.nets {
		if !net.Routed() || !s.state.NetHighlighted(net.ID) {
			continue
		}
		res.Nets = append(res.Nets, net.ID)
		if mark == Selected && tracebackContains(net, hit) {
			res.Status = fmt.Sprintf("%s  ||  Net: %d (%s)", res.Status, net.ID, net.Name)
		}
	}
	return res
}

// Clear wipes all selection state, as the view's explicit deselect-all.
func (s *Session) Clear() {
	s.state.Reset()
}

// ShowConnection highlights a reconstructed driver→sink path as a
// critical-path arc. The path comes from trace.Connection.
func (s *Session) ShowConnection(path []rrgraph.NodeID) {
	s.state.MarkPath(path)
	s.state.AggregateNets(s.nets)
}

func (s *Session) describe(id rrgraph.NodeID) string {
	n := &s.g.Nodes[id]
	return fmt.Sprintf("Selected node #%d: %s (%d,%d) -> (%d,%d) track: %d, %d edges",
		id, n.Kind, n.XLow, n.YLow, n.XHigh, n.YHigh, n.Index, s.g.Degree(id))
}

func tracebackContains(net *rrgraph.Net, id rrgraph.NodeID) bool {
	for _, t := range net.Traceback {
		if t == id {
			return true
		}
	}
	return false
}

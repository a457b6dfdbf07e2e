package rrgraph

// Net is one routed signal. Terminals[0] is the driver's SOURCE node;
// the remaining terminals are SINK nodes, in pin order.
//
// Traceback is the net's realized physical route, flattened from the
// router's pre-order walk of the routed tree. Branches are implicit: a
// SINK node always terminates a branch, and the entry following a SINK
// (if any) is the branch point the next branch continues from, repeated
// verbatim. A non-empty traceback starts at the SOURCE and has length
// of at least two.
type Net struct {
	ID       int32
	Name     string
	IsGlobal bool

	Terminals []NodeID
	Traceback []NodeID
}

// Routed reports whether the net carries a traceback. Global nets are
// never considered routed here: they are excluded from every query.
func (n *Net) Routed() bool {
	return !n.IsGlobal && len(n.Traceback) > 0
}

// Driver returns the net's SOURCE terminal, or NoNode for a net with no
// terminals.
func (n *Net) Driver() NodeID {
	if len(n.Terminals) == 0 {
		return NoNode
	}
	return n.Terminals[0]
}

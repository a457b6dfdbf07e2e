package trace

import (
	"rr_view/pkg/rrgraph"
)

// RouteType selects how track numbers are produced.
type RouteType uint8

const (
	// Detailed routing: every channel node carries its real track index.
	Detailed RouteType = iota
	// Global routing: tracks are abstract; ids are synthesized per
	// channel cell as nodes are visited.
	Global
)

// TrackPass assigns track numbers for one classification pass. In
// Detailed mode it simply reads each node's intrinsic index. In Global
// mode it keeps one counter per channel cell, starting at -1; visiting
// a node bumps its (XLow, YLow) cell's counter and returns it, so the
// first wire seen in a cell gets track 0, the next 1, and so on. That
// keeps distinct abstracted wires sharing a cell from landing on the
// same track.
//
// A TrackPass is valid for exactly one pass over one or more nets'
// segments. Construct a fresh one (or call Reset) at every pass start;
// counters must never leak across passes.
type TrackPass struct {
	routeType RouteType
	width     int16 // grid x extent, cells 0..width
	height    int16 // grid y extent, cells 0..height

	chanx []int32 // (width+1)*(height+1), row-major
	chany []int32
}

// NewTrackPass returns a pass context for a width×height grid. Global
// route graphs have unit-length channel segments only, so (XLow, YLow)
// fully identifies a node's cell.
func NewTrackPass(routeType RouteType, width, height int16) *TrackPass {
	p := &TrackPass{routeType: routeType, width: width, height: height}
	if routeType == Global {
		n := (int(width) + 1) * (int(height) + 1)
		p.chanx = make([]int32, n)
		p.chany = make([]int32, n)
		p.Reset()
	}
	return p
}

// Reset reinitializes every cell counter. Equivalent to constructing a
// fresh pass.
func (p *TrackPass) Reset() {
	for i := range p.chanx {
		p.chanx[i] = -1
	}
	for i := range p.chany {
		p.chany[i] = -1
	}
}

func (p *TrackPass) cell(n *rrgraph.Node) int {
	return int(n.XLow)*(int(p.height)+1) + int(n.YLow)
}

// Visit returns the track number for a channel node being processed,
// advancing its cell counter first in Global mode.
func (p *TrackPass) Visit(g *rrgraph.Graph, id rrgraph.NodeID) int32 {
	n := &g.Nodes[id]
	if p.routeType == Detailed {
		return n.Index
	}
	switch n.Kind {
	case rrgraph.KindChanX:
		c := p.cell(n)
		p.chanx[c]++
		return p.chanx[c]
	case rrgraph.KindChanY:
		c := p.cell(n)
		p.chany[c]++
		return p.chany[c]
	}
	return -1
}

// Peek returns the track number last assigned to the node's cell
// without advancing it. Used for the already-visited end of a turn.
func (p *TrackPass) Peek(g *rrgraph.Graph, id rrgraph.NodeID) int32 {
	n := &g.Nodes[id]
	if p.routeType == Detailed {
		return n.Index
	}
	switch n.Kind {
	case rrgraph.KindChanX:
		return p.chanx[p.cell(n)]
	case rrgraph.KindChanY:
		return p.chany[p.cell(n)]
	}
	return -1
}

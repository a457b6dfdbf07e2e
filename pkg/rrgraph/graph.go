package rrgraph

import (
	"errors"
	"fmt"
)

// ErrEdgeNotFound is returned by FindSwitch when the assumed adjacency
// does not exist. This is a fatal consistency failure, not a runtime
// condition: segmenters and path finders only ever present node pairs
// they took from a traceback, so a miss means the traceback or the
// graph is corrupt upstream.
var ErrEdgeNotFound = errors.New("rrgraph: edge not found")

// Graph is the device routing resource graph in CSR (Compressed Sparse
// Row) format. It is immutable once built: routing is finalized before
// any query runs, so all accessors are safe for repeated reads.
type Graph struct {
	Nodes []Node

	// Forward adjacency. FirstOut[i]..FirstOut[i+1] index EdgeHead and
	// EdgeSwitch with the ordered outgoing edges of node i. Duplicate
	// edges to the same target are tolerated; the first match is
	// authoritative.
	FirstOut   []int32
	EdgeHead   []NodeID
	EdgeSwitch []SwitchID

	Switches []Switch

	// Reverse adjacency, built on demand by BuildReverse. Optional:
	// FanIn falls back to a full forward scan when absent.
	revFirstOut []int32
	revHead     []NodeID
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int32 { return int32(len(g.Nodes)) }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int32 { return int32(len(g.EdgeHead)) }

// EdgesFrom returns the range of edge indices for edges leaving node u.
func (g *Graph) EdgesFrom(u NodeID) (start, end int32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// Degree returns the out-degree of node u.
func (g *Graph) Degree(u NodeID) int32 {
	return g.FirstOut[u+1] - g.FirstOut[u]
}

// FindSwitch returns the switch of the first edge from→to, scanning
// from's outgoing edges in order. The caller guarantees the edge exists;
// a miss wraps ErrEdgeNotFound and must be treated as fatal.
func (g *Graph) FindSwitch(from, to NodeID) (SwitchID, error) {
	start, end := g.EdgesFrom(from)
	for e := start; e < end; e++ {
		if g.EdgeHead[e] == to {
			return g.EdgeSwitch[e], nil
		}
	}
	return -1, fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, from, to)
}

// FanOut calls fn for every target of an edge leaving u, in edge order.
func (g *Graph) FanOut(u NodeID, fn func(v NodeID)) {
	start, end := g.EdgesFrom(u)
	for e := start; e < end; e++ {
		fn(g.EdgeHead[e])
	}
}

// FanIn calls fn for every node with an edge into u, in ascending source
// id order, once per edge. Uses the reverse index when BuildReverse has
// run; otherwise scans every edge in the graph. Both paths visit the
// same nodes in the same order.
func (g *Graph) FanIn(u NodeID, fn func(v NodeID)) {
	if g.revFirstOut != nil {
		start, end := g.revFirstOut[u], g.revFirstOut[u+1]
		for e := start; e < end; e++ {
			fn(g.revHead[e])
		}
		return
	}
	for v := NodeID(0); v < g.NumNodes(); v++ {
		start, end := g.EdgesFrom(v)
		for e := start; e < end; e++ {
			if g.EdgeHead[e] == u {
				fn(v)
			}
		}
	}
}

// HasReverse reports whether the reverse adjacency index is built.
func (g *Graph) HasReverse() bool { return g.revFirstOut != nil }

// BuildReverse constructs the reverse adjacency index via counting sort.
// One-time cost linear in the edge count; turns FanIn from O(edges) to
// O(in-degree). Observable FanIn behavior is unchanged.
func (g *Graph) BuildReverse() {
	n := g.NumNodes()
	firstOut := make([]int32, n+1)
	for _, h := range g.EdgeHead {
		firstOut[h+1]++
	}
	for i := int32(1); i <= n; i++ {
		firstOut[i] += firstOut[i-1]
	}

	head := make([]NodeID, len(g.EdgeHead))
	next := make([]int32, n)
	copy(next, firstOut[:n])
	// Sources visited in ascending order, so each target's reverse list
	// comes out in ascending source order, matching the scan fallback.
	for v := NodeID(0); v < n; v++ {
		start, end := g.EdgesFrom(v)
		for e := start; e < end; e++ {
			h := g.EdgeHead[e]
			head[next[h]] = v
			next[h]++
		}
	}

	g.revFirstOut = firstOut
	g.revHead = head
}

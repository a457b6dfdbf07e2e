package trace

import (
	"errors"
	"fmt"

	"rr_view/pkg/rrgraph"
)

// ErrPathNotFound is returned when a path query's target is not part of
// the route tree. Recoverable: callers fall back to an unrouted
// indicator.
var ErrPathNotFound = errors.New("trace: path not found in route tree")

// treeNode is one arena entry. Children are arena indices, giving a
// cycle-free recursive traversal regardless of what the traceback
// contained.
type treeNode struct {
	id       rrgraph.NodeID
	children []int32
}

// RouteTree is an explicit tree reconstruction of a traceback's branch
// structure, rooted at the net's SOURCE. Nodes live in an arena indexed
// by insertion order; a traceback node appears once no matter how many
// branches repeat it.
type RouteTree struct {
	nodes []treeNode
	index map[rrgraph.NodeID]int32
}

// Root returns the tree's root node id, or rrgraph.NoNode for an empty
// tree.
func (t *RouteTree) Root() rrgraph.NodeID {
	if len(t.nodes) == 0 {
		return rrgraph.NoNode
	}
	return t.nodes[0].id
}

// Len returns the number of distinct nodes in the tree.
func (t *RouteTree) Len() int { return len(t.nodes) }

// Contains reports whether the node is part of the tree.
func (t *RouteTree) Contains(id rrgraph.NodeID) bool {
	_, ok := t.index[id]
	return ok
}

func (t *RouteTree) intern(id rrgraph.NodeID) int32 {
	if i, ok := t.index[id]; ok {
		return i
	}
	i := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{id: id})
	t.index[id] = i
	return i
}

// BuildRouteTree reconstructs the routed tree from a traceback. The
// first segment chains down from the SOURCE; every later segment opens
// at a branch point the traceback repeats verbatim, so its first node
// already exists and the rest of the segment attaches beneath it. A
// branch whose opening node is unknown (a traceback the router left
// incomplete) attaches at the root.
func BuildRouteTree(g *rrgraph.Graph, traceback []rrgraph.NodeID) *RouteTree {
	t := &RouteTree{index: make(map[rrgraph.NodeID]int32)}
	if len(traceback) == 0 {
		return t
	}

	for _, seg := range Segments(g, traceback) {
		var parent int32
		if len(t.nodes) == 0 {
			parent = t.intern(seg[0])
		} else if i, ok := t.index[seg[0]]; ok {
			parent = i
		} else {
			parent = 0
			child := t.intern(seg[0])
			t.nodes[parent].children = append(t.nodes[parent].children, child)
			parent = child
		}
		for _, id := range seg[1:] {
			if i, ok := t.index[id]; ok {
				parent = i
				continue
			}
			child := t.intern(id)
			t.nodes[parent].children = append(t.nodes[parent].children, child)
			parent = child
		}
	}
	return t
}

// FindPath returns the ordered root→sink node list for a terminal in
// the tree. All-or-nothing: on a miss it returns nil and
// ErrPathNotFound, never a partial path.
func (t *RouteTree) FindPath(sink rrgraph.NodeID) ([]rrgraph.NodeID, error) {
	if len(t.nodes) == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrPathNotFound)
	}

	var path []rrgraph.NodeID
	if !t.findPathRecur(0, sink, &path) {
		return nil, fmt.Errorf("%w: node %d", ErrPathNotFound, sink)
	}

	// The DFS collects nodes on the unwind, sink first. Reverse to get
	// root→sink order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// findPathRecur reports whether the subtree at arena index i contains
// sink, appending the nodes linking sink back up to i as it unwinds.
func (t *RouteTree) findPathRecur(i int32, sink rrgraph.NodeID, path *[]rrgraph.NodeID) bool {
	n := &t.nodes[i]
	if n.id == sink {
		*path = append(*path, sink)
		return true
	}
	for _, c := range n.children {
		if t.findPathRecur(c, sink, path) {
			*path = append(*path, n.id)
			return true
		}
	}
	return false
}

// Connection reconstructs the physical path a net takes from its driver
// to one sink terminal, for timing-arc display. Convenience wrapper:
// builds the net's route tree and runs the path query.
func Connection(g *rrgraph.Graph, net *rrgraph.Net, sink rrgraph.NodeID) ([]rrgraph.NodeID, error) {
	if !net.Routed() {
		return nil, fmt.Errorf("%w: net %d is unrouted", ErrPathNotFound, net.ID)
	}
	return BuildRouteTree(g, net.Traceback).FindPath(sink)
}

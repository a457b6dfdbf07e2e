// Package trace decomposes a net's routed traceback into drawable
// segments and answers path queries over its branch structure.
package trace

import (
	"rr_view/pkg/rrgraph"
)

// Segments splits a traceback into its branches. Each segment is an
// ordered run of node ids from a branch start (the SOURCE, or a branch
// point repeated in the traceback) to a SINK inclusive. The walk never
// invents a branch point: the entry following a SINK seeds the next
// segment directly. A trailing run that does not end in a SINK is still
// emitted so partially complete routings stay visible; callers must
// treat such a segment as incomplete.
//
// Concatenating the returned segments reproduces the traceback exactly.
func Segments(g *rrgraph.Graph, traceback []rrgraph.NodeID) [][]rrgraph.NodeID {
	if len(traceback) == 0 {
		return nil
	}

	var segs [][]rrgraph.NodeID
	cur := []rrgraph.NodeID{traceback[0]}

	for _, id := range traceback[1:] {
		cur = append(cur, id)
		if g.Nodes[id].Kind == rrgraph.KindSink {
			segs = append(segs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

package hittest

import (
	"github.com/tidwall/rtree"
	"gonum.org/v1/gonum/spatial/r2"

	"rr_view/pkg/geom"
	"rr_view/pkg/rrgraph"
)

// Index is an R-tree backed hit tester. It is built once per graph and
// layout (both immutable while routing is finalized) and answers point
// queries in the candidate set under the point instead of scanning
// every node. Results match the linear Tester exactly.
type Index struct {
	tr rtree.RTree
}

// NewIndex builds the spatial index. Hit rectangles are stored with
// their tolerances already applied, so a query degenerates to a point
// lookup.
func NewIndex(g *rrgraph.Graph, layout Layout, cfg Config) *Index {
	ix := &Index{}
	for id := rrgraph.NodeID(0); id < g.NumNodes(); id++ {
		var box r2.Box
		switch g.Nodes[id].Kind {
		case rrgraph.KindOpin, rrgraph.KindIpin:
			anchor, ok := layout.PinAnchor(id)
			if !ok {
				continue
			}
			box = geom.Square(anchor, cfg.PinHalfWidth)
		case rrgraph.KindChanX, rrgraph.KindChanY:
			box = geom.Expand(layout.ChanBounds(id), cfg.WireTolerance)
		default:
			continue
		}
		ix.tr.Insert(
			[2]float64{box.Min.X, box.Min.Y},
			[2]float64{box.Max.X, box.Max.Y},
			candidate{id: id, pin: g.Nodes[id].Kind.IsPin()},
		)
	}
	return ix
}

type candidate struct {
	id  rrgraph.NodeID
	pin bool
}

// Hit returns the node at pt, or (NoNode, false). The R-tree yields
// candidates in an internal order, so the pin-before-wire priority and
// lowest-id tie-break are applied over the full candidate set.
func (ix *Index) Hit(pt r2.Vec) (rrgraph.NodeID, bool) {
	bestPin := rrgraph.NoNode
	bestChan := rrgraph.NoNode

	p := [2]float64{pt.X, pt.Y}
	ix.tr.Search(p, p, func(_, _ [2]float64, value interface{}) bool {
		c := value.(candidate)
		if c.pin {
			if bestPin == rrgraph.NoNode || c.id < bestPin {
				bestPin = c.id
			}
		} else {
			if bestChan == rrgraph.NoNode || c.id < bestChan {
				bestChan = c.id
			}
		}
		return true
	})

	if bestPin != rrgraph.NoNode {
		return bestPin, true
	}
	if bestChan != rrgraph.NoNode {
		return bestChan, true
	}
	return rrgraph.NoNode, false
}

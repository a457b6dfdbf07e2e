// Package hittest maps a 2-D world coordinate to the routing resource
// node under it. Geometry comes from an externally supplied layout
// provider; this package only decides what was hit.
package hittest

import (
	"gonum.org/v1/gonum/spatial/r2"

	"rr_view/pkg/geom"
	"rr_view/pkg/rrgraph"
)

// Layout supplies world-space geometry for routing resource nodes. The
// surrounding tool computes it from the device grid; the hit tester
// consumes it opaquely.
type Layout interface {
	// PinAnchor returns the drawn center of a pin node. ok is false
	// when the layout has no position for the node (it is then not
	// hit-testable).
	PinAnchor(id rrgraph.NodeID) (r2.Vec, bool)
	// ChanBounds returns the drawn bounding rectangle of a channel
	// node.
	ChanBounds(id rrgraph.NodeID) r2.Box
}

// Config holds the hit tolerances.
type Config struct {
	// PinHalfWidth is half the side of the square hit area centered on
	// a pin's anchor.
	PinHalfWidth float64
	// WireTolerance expands a channel node's bounding rectangle on
	// every side before testing.
	WireTolerance float64
}

// DefaultConfig returns the tolerances the interactive view uses.
func DefaultConfig() Config {
	return Config{
		PinHalfWidth:  0.15,
		WireTolerance: 0.3,
	}
}

// Tester answers point queries against one graph and layout. Pins take
// precedence over overlapping wires: OPIN and IPIN nodes are inspected
// before CHANX and CHANY, and within the winning class the lowest node
// id wins. SOURCE and SINK nodes are virtual and never hit-testable.
type Tester struct {
	g      *rrgraph.Graph
	layout Layout
	cfg    Config
}

// New returns a linear-scan Tester. For large graphs, wrap the same
// arguments in NewIndex instead; results are identical.
func New(g *rrgraph.Graph, layout Layout, cfg Config) *Tester {
	return &Tester{g: g, layout: layout, cfg: cfg}
}

// Hit returns the node at pt, or (NoNode, false) when nothing is there.
// A miss is the normal "nothing selected" outcome, not an error.
func (t *Tester) Hit(pt r2.Vec) (rrgraph.NodeID, bool) {
	for id := rrgraph.NodeID(0); id < t.g.NumNodes(); id++ {
		kind := t.g.Nodes[id].Kind
		if kind != rrgraph.KindOpin && kind != rrgraph.KindIpin {
			continue
		}
		if t.hitPin(id, pt) {
			return id, true
		}
	}
	for id := rrgraph.NodeID(0); id < t.g.NumNodes(); id++ {
		if !t.g.Nodes[id].Kind.IsChan() {
			continue
		}
		if t.hitChan(id, pt) {
			return id, true
		}
	}
	return rrgraph.NoNode, false
}

func (t *Tester) hitPin(id rrgraph.NodeID, pt r2.Vec) bool {
	anchor, ok := t.layout.PinAnchor(id)
	if !ok {
		return false
	}
	return geom.Contains(geom.Square(anchor, t.cfg.PinHalfWidth), pt)
}

func (t *Tester) hitChan(id rrgraph.NodeID, pt r2.Vec) bool {
	return geom.Contains(geom.Expand(t.layout.ChanBounds(id), t.cfg.WireTolerance), pt)
}

package rrgraph

// NodeID identifies a routing resource node. IDs are dense and stable
// for the lifetime of a Graph.
type NodeID = int32

// NoNode is the sentinel for "no node".
const NoNode NodeID = -1

// NodeKind is the routing resource class of a node.
type NodeKind uint8

const (
	KindSource NodeKind = iota // virtual net driver
	KindSink                   // virtual net receiver
	KindOpin                   // block output pin
	KindIpin                   // block input pin
	KindChanX                  // horizontal channel wire
	KindChanY                  // vertical channel wire
)

var kindNames = [...]string{"SOURCE", "SINK", "OPIN", "IPIN", "CHANX", "CHANY"}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsPin reports whether the node class is pin-like (attached to a block
// rather than routed through the fabric). Virtual sources and sinks count
// as pin-like: they sit at the same block position as the pins they feed.
func (k NodeKind) IsPin() bool {
	return k == KindSource || k == KindSink || k == KindOpin || k == KindIpin
}

// IsChan reports whether the node is a channel wire.
func (k NodeKind) IsChan() bool {
	return k == KindChanX || k == KindChanY
}

// Direction is the signal direction of a channel wire.
type Direction uint8

const (
	DirBidir Direction = iota
	DirInc
	DirDec
)

// Node holds the per-node metadata of the routing resource graph.
// Spatial extent is in grid coordinates; pins degenerate to a point
// (XLow==XHigh, YLow==YHigh). Index is the position within the node's
// class: track number for channel wires, pin number for pins.
type Node struct {
	Kind                     NodeKind
	Dir                      Direction // channel wires only
	XLow, XHigh, YLow, YHigh int16
	Index                    int32
}

// SwitchID identifies a switch type in Graph.Switches.
type SwitchID = int16

// Switch describes a programmable connection between two nodes.
// Buffered distinguishes a unidirectional buffer from a bidirectional
// pass element; the engine carries it through untouched.
type Switch struct {
	ID       SwitchID
	Buffered bool
}

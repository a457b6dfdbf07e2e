package main

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"rr_view/pkg/geom"
	"rr_view/pkg/rrgraph"
)

// fabric is a synthetic island-style device. Tiles sit at integer grid
// positions (1..width, 1..height); each tile carries a SOURCE, an OPIN,
// an IPIN and a SINK. A horizontal channel with the configured track
// count runs above each tile row, a vertical channel to the right of
// each column.
//
// Connectivity per tile, enough to route one tile diagonally:
//
//	SRC -> OPIN -> CHANX(x,y,t) -> CHANX(x+1,y,t)      straight hop
//	                  └─> CHANY(x,y,t) -> IPIN(x,y+1) -> SINK
type fabric struct {
	g      *rrgraph.Graph
	nets   []*rrgraph.Net
	layout *fabricLayout
}

type tileNodes struct {
	src, opin, ipin, sink rrgraph.NodeID
}

type fabricLayout struct {
	pins  map[rrgraph.NodeID]r2.Vec
	chans map[rrgraph.NodeID]r2.Box
}

func (l *fabricLayout) PinAnchor(id rrgraph.NodeID) (r2.Vec, bool) {
	v, ok := l.pins[id]
	return v, ok
}

func (l *fabricLayout) ChanBounds(id rrgraph.NodeID) r2.Box {
	return l.chans[id]
}

func buildFabric(width, height, tracks int) *fabric {
	b := rrgraph.NewBuilder()
	layout := &fabricLayout{
		pins:  make(map[rrgraph.NodeID]r2.Vec),
		chans: make(map[rrgraph.NodeID]r2.Box),
	}

	swBuf := b.AddSwitch(true)
	swPass := b.AddSwitch(false)

	tile := make(map[[2]int]tileNodes)
	chanx := make(map[[3]int]rrgraph.NodeID) // x, y, track
	chany := make(map[[3]int]rrgraph.NodeID)

	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			gx, gy := int16(x), int16(y)
			tn := tileNodes{
				src:  b.AddNode(rrgraph.Node{Kind: rrgraph.KindSource, XLow: gx, XHigh: gx, YLow: gy, YHigh: gy}),
				opin: b.AddNode(rrgraph.Node{Kind: rrgraph.KindOpin, XLow: gx, XHigh: gx, YLow: gy, YHigh: gy, Index: 0}),
				ipin: b.AddNode(rrgraph.Node{Kind: rrgraph.KindIpin, XLow: gx, XHigh: gx, YLow: gy, YHigh: gy, Index: 1}),
				sink: b.AddNode(rrgraph.Node{Kind: rrgraph.KindSink, XLow: gx, XHigh: gx, YLow: gy, YHigh: gy}),
			}
			tile[[2]int{x, y}] = tn
			layout.pins[tn.opin] = r2.Vec{X: float64(x) + 0.25, Y: float64(y)}
			layout.pins[tn.ipin] = r2.Vec{X: float64(x) + 0.75, Y: float64(y)}

			for t := 0; t < tracks; t++ {
				cx := b.AddNode(rrgraph.Node{
					Kind: rrgraph.KindChanX, Dir: rrgraph.DirInc,
					XLow: gx, XHigh: gx, YLow: gy, YHigh: gy, Index: int32(t),
				})
				chanx[[3]int{x, y, t}] = cx
				layout.chans[cx] = r2.Box{
					Min: r2.Vec{X: float64(x), Y: float64(y) + 0.3 + 0.04*float64(t)},
					Max: r2.Vec{X: float64(x) + 1, Y: float64(y) + 0.32 + 0.04*float64(t)},
				}

				cy := b.AddNode(rrgraph.Node{
					Kind: rrgraph.KindChanY, Dir: rrgraph.DirInc,
					XLow: gx, XHigh: gx, YLow: gy, YHigh: gy, Index: int32(t),
				})
				chany[[3]int{x, y, t}] = cy
				layout.chans[cy] = r2.Box{
					Min: r2.Vec{X: float64(x) + 0.3 + 0.04*float64(t), Y: float64(y)},
					Max: r2.Vec{X: float64(x) + 0.32 + 0.04*float64(t), Y: float64(y) + 1},
				}
			}
		}
	}

	// Wire it up.
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			tn := tile[[2]int{x, y}]
			b.AddEdge(tn.src, tn.opin, swBuf)
			b.AddEdge(tn.ipin, tn.sink, swBuf)
			for t := 0; t < tracks; t++ {
				cx := chanx[[3]int{x, y, t}]
				cy := chany[[3]int{x, y, t}]
				b.AddEdge(tn.opin, cx, swBuf)
				b.AddEdge(cx, cy, swPass)
				if next, ok := chanx[[3]int{x + 1, y, t}]; ok {
					b.AddEdge(cx, next, swPass)
				}
				if up, ok := tile[[2]int{x, y + 1}]; ok {
					b.AddEdge(cy, up.ipin, swBuf)
				}
			}
		}
	}

	g := b.Build()

	// Hand-route one net per tile that has a diagonal neighbor:
	// (x,y) drives (x+1,y+1) through a straight hop and a turn.
	var nets []*rrgraph.Net
	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			t := (x + y) % tracks
			from := tile[[2]int{x, y}]
			to := tile[[2]int{x + 1, y + 1}]
			net := &rrgraph.Net{
				ID:        int32(len(nets)),
				Name:      fmt.Sprintf("n_%d_%d", x, y),
				Terminals: []rrgraph.NodeID{from.src, to.sink},
				Traceback: []rrgraph.NodeID{
					from.src, from.opin,
					chanx[[3]int{x, y, t}],
					chanx[[3]int{x + 1, y, t}],
					chany[[3]int{x + 1, y, t}],
					to.ipin, to.sink,
				},
			}
			nets = append(nets, net)
		}
	}

	return &fabric{g: g, nets: nets, layout: layout}
}

// center reports where a node sits on the canvas: the pin anchor for
// pins, the channel bbox midpoint for wires.
func (f *fabric) center(id rrgraph.NodeID) r2.Vec {
	if v, ok := f.layout.pins[id]; ok {
		return v
	}
	return geom.Center(f.layout.chans[id])
}

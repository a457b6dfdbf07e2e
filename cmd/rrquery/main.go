// rrquery is a developer smoke tool: it builds a synthetic routing
// resource graph with hand-routed nets, then runs the same queries the
// interactive view issues (segmentation, classification, path
// reconstruction, click selection) and prints what came back.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"rr_view/pkg/highlight"
	"rr_view/pkg/hittest"
	"rr_view/pkg/rrgraph"
	"rr_view/pkg/trace"
)

func main() {
	width := flag.Int("width", 8, "Fabric width in tiles")
	height := flag.Int("height", 8, "Fabric height in tiles")
	tracks := flag.Int("tracks", 4, "Tracks per channel")
	routeType := flag.String("route-type", "detailed", "Track numbering: detailed or global")
	clickAt := flag.String("click", "2.5,1.7", "Simulated click point, x,y")
	flag.Parse()

	var rt trace.RouteType
	switch *routeType {
	case "detailed":
		rt = trace.Detailed
	case "global":
		rt = trace.Global
	default:
		log.Fatalf("Unknown route type %q", *routeType)
	}

	start := time.Now()
	fab := buildFabric(*width, *height, *tracks)
	fab.g.BuildReverse()
	log.Printf("Fabric %dx%d: %d nodes, %d edges, %d nets (built in %s)",
		*width, *height, fab.g.NumNodes(), fab.g.NumEdges(), len(fab.nets),
		time.Since(start).Round(time.Microsecond))

	// Segment and classify every routed net, the way a redraw does.
	pass := trace.NewTrackPass(rt, int16(*width)+1, int16(*height)+1)
	hopCounts := map[trace.ConnKind]int{}
	segments := 0
	for _, net := range fab.nets {
		if !net.Routed() {
			continue
		}
		for _, seg := range trace.Segments(fab.g, net.Traceback) {
			segments++
			hops, err := trace.ClassifySegment(fab.g, seg, pass)
			if err != nil {
				log.Fatalf("Traceback of net %d is corrupt: %v", net.ID, err)
			}
			for _, h := range hops {
				hopCounts[h.Kind]++
			}
		}
	}
	log.Printf("Segmented %d branches: %d pin entries, %d pin-fabric, %d turns, %d straights",
		segments, hopCounts[trace.PinEntry], hopCounts[trace.PinToFabric],
		hopCounts[trace.FabricTurn], hopCounts[trace.FabricStraight])

	// Reconstruct the driver→sink path of every net.
	paths := 0
	for _, net := range fab.nets {
		for _, sink := range net.Terminals[1:] {
			path, err := trace.Connection(fab.g, net, sink)
			if err != nil {
				log.Fatalf("Net %d has no path to sink %d: %v", net.ID, sink, err)
			}
			paths++
			if paths == 1 {
				log.Printf("Sample path for net %d: %s", net.ID, formatPath(fab.g, path))
			}
		}
	}
	log.Printf("Reconstructed %d source-to-sink paths", paths)

	// Simulate a click.
	var pt r2.Vec
	if _, err := fmt.Sscanf(*clickAt, "%f,%f", &pt.X, &pt.Y); err != nil {
		log.Fatalf("Bad -click %q: %v", *clickAt, err)
	}
	index := hittest.NewIndex(fab.g, fab.layout, hittest.DefaultConfig())
	sess := highlight.NewSession(fab.g, fab.nets, index)

	res := sess.Click(pt)
	log.Printf("Click at (%g,%g): %s", pt.X, pt.Y, res.Status)
	if res.Hit != rrgraph.NoNode {
		c := fab.center(res.Hit)
		log.Printf("Hit node %d centered at (%g,%g)", res.Hit, c.X, c.Y)
		st := sess.State()
		marked := 0
		for id := rrgraph.NodeID(0); id < fab.g.NumNodes(); id++ {
			if st.Node(id) != highlight.Default {
				marked++
			}
		}
		log.Printf("Selection touched %d nodes, %d nets highlighted", marked, len(res.Nets))
	}
}

func formatPath(g *rrgraph.Graph, path []rrgraph.NodeID) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprintf("%s#%d", g.Nodes[id].Kind, id)
	}
	return strings.Join(parts, " -> ")
}

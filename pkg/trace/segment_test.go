package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rr_view/pkg/rrgraph"
)

func TestSegmentsSplitsAtSinks(t *testing.T) {
	f := buildFabric(t)

	segs := Segments(f.g, f.traceback)
	require.Len(t, segs, 2)
	assert.Equal(t, []rrgraph.NodeID{f.s0, f.o1, f.x2, f.y3, f.x4, f.i5, f.k6}, segs[0])
	assert.Equal(t, []rrgraph.NodeID{f.x2, f.x7, f.i8, f.k9}, segs[1])
}

func TestSegmentsConcatenationReproducesTraceback(t *testing.T) {
	f := buildFabric(t)

	var concat []rrgraph.NodeID
	for _, seg := range Segments(f.g, f.traceback) {
		concat = append(concat, seg...)
	}
	assert.Equal(t, f.traceback, concat)
}

func TestSegmentsSinkOnlyLast(t *testing.T) {
	f := buildFabric(t)

	for _, seg := range Segments(f.g, f.traceback) {
		for i, id := range seg {
			if f.g.Nodes[id].Kind == rrgraph.KindSink {
				assert.Equal(t, len(seg)-1, i, "SINK must terminate its segment")
			}
		}
	}
}

// Scenario: a traceback whose tail never reaches a SINK (routing left
// incomplete) still yields the trailing partial segment.
func TestSegmentsEmitsTrailingPartial(t *testing.T) {
	f := buildFabric(t)

	tb := []rrgraph.NodeID{f.s0, f.o1, f.x2, f.y3, f.x4, f.i5, f.k6, f.x2, f.x7}
	segs := Segments(f.g, tb)
	require.Len(t, segs, 2)
	assert.Equal(t, []rrgraph.NodeID{f.x2, f.x7}, segs[1])
}

func TestSegmentsTwoBranchScenario(t *testing.T) {
	// traceback [S, A(CHANX), T1(SINK), B(CHANX), T2(SINK)] must give
	// two segments, not one continuous path: the entry after a SINK
	// seeds a new branch as-is.
	b := rrgraph.NewBuilder()
	s := b.AddNode(rrgraph.Node{Kind: rrgraph.KindSource})
	a := b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanX})
	t1 := b.AddNode(rrgraph.Node{Kind: rrgraph.KindSink})
	bb := b.AddNode(rrgraph.Node{Kind: rrgraph.KindChanX})
	t2 := b.AddNode(rrgraph.Node{Kind: rrgraph.KindSink})
	g := b.Build()

	segs := Segments(g, []rrgraph.NodeID{s, a, t1, bb, t2})
	require.Len(t, segs, 2)
	assert.Equal(t, []rrgraph.NodeID{s, a, t1}, segs[0])
	assert.Equal(t, []rrgraph.NodeID{bb, t2}, segs[1])
}

func TestSegmentsEmpty(t *testing.T) {
	f := buildFabric(t)
	assert.Nil(t, Segments(f.g, nil))
}

package rrgraph

// Builder accumulates nodes and edges and assembles the CSR Graph.
// Edge order per source node is insertion order: the routing engine
// hands edges over already ordered, and FindSwitch's first-match rule
// depends on that order surviving.
type Builder struct {
	nodes    []Node
	switches []Switch

	edgeFrom   []NodeID
	edgeTo     []NodeID
	edgeSwitch []SwitchID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode appends a node and returns its id.
func (b *Builder) AddNode(n Node) NodeID {
	b.nodes = append(b.nodes, n)
	return NodeID(len(b.nodes) - 1)
}

// AddSwitch registers a switch type and returns its id.
func (b *Builder) AddSwitch(buffered bool) SwitchID {
	id := SwitchID(len(b.switches))
	b.switches = append(b.switches, Switch{ID: id, Buffered: buffered})
	return id
}

// AddEdge appends an outgoing edge from→to using switch sw. Duplicates
// are accepted; FindSwitch resolves them to the first occurrence.
func (b *Builder) AddEdge(from, to NodeID, sw SwitchID) {
	b.edgeFrom = append(b.edgeFrom, from)
	b.edgeTo = append(b.edgeTo, to)
	b.edgeSwitch = append(b.edgeSwitch, sw)
}

// Build assembles the CSR arrays. Grouping by source node is done with
// a counting sort so that each node's edges keep their insertion order.
func (b *Builder) Build() *Graph {
	numNodes := int32(len(b.nodes))
	numEdges := int32(len(b.edgeFrom))

	firstOut := make([]int32, numNodes+1)
	for _, f := range b.edgeFrom {
		firstOut[f+1]++
	}
	for i := int32(1); i <= numNodes; i++ {
		firstOut[i] += firstOut[i-1]
	}

	head := make([]NodeID, numEdges)
	sw := make([]SwitchID, numEdges)
	next := make([]int32, numNodes)
	copy(next, firstOut[:numNodes])
	for i := int32(0); i < numEdges; i++ {
		f := b.edgeFrom[i]
		head[next[f]] = b.edgeTo[i]
		sw[next[f]] = b.edgeSwitch[i]
		next[f]++
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	switches := make([]Switch, len(b.switches))
	copy(switches, b.switches)

	return &Graph{
		Nodes:      nodes,
		FirstOut:   firstOut,
		EdgeHead:   head,
		EdgeSwitch: sw,
		Switches:   switches,
	}
}

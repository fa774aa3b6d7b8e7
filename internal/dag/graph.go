package dag

import "errors"

var (
	// ErrEmptyGraph is returned by Validate when the graph has no nodes.
	ErrEmptyGraph = errors.New("graph is empty")
	// ErrEmptyChain is returned by BuildLinearChain for an empty filter list.
	ErrEmptyChain = errors.New("filter chain is empty")
)

// Graph owns the nodes and connections of one filter chain. Insertion order
// is pipeline order: the first node is the INPUT sentinel and the last node
// is the OUTPUT sentinel.
//
// Node ids are not checked for duplicates; supplying two filters with the
// same ID is a caller error.
type Graph struct {
	nodes       []Node
	connections []Connection
}

// AddNode appends a node.
func (g *Graph) AddNode(node Node) {
	g.nodes = append(g.nodes, node)
}

// AddConnection appends a connection.
func (g *Graph) AddConnection(conn Connection) {
	g.connections = append(g.connections, conn)
}

// BuildLinearChain replaces the graph with one node per filter, in order,
// wired main_out → main_in between each adjacent pair.
func (g *Graph) BuildLinearChain(filters []Filter) error {
	g.Clear()
	if len(filters) == 0 {
		return ErrEmptyChain
	}

	for _, f := range filters {
		g.AddNode(NodeFromFilter(f))
	}
	for i := 0; i+1 < len(g.nodes); i++ {
		g.AddConnection(Connection{
			SourceNodeID:   g.nodes[i].NodeID,
			SourcePortName: MainOutputName,
			DestNodeID:     g.nodes[i+1].NodeID,
			DestPortName:   MainInputName,
		})
	}
	return nil
}

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Connections returns a copy of the connections in insertion order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

// Len reports the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// TopologicalOrder returns node ids in processing order. For the linear
// chain model this is insertion order; connections are not analysed.
// TODO: replace with Kahn's algorithm over connections once sidechain and
// branch ports are wired by a non-linear builder.
func (g *Graph) TopologicalOrder() []int {
	order := make([]int, 0, len(g.nodes))
	for _, node := range g.nodes {
		order = append(order, node.NodeID)
	}
	return order
}

// FindNode returns the first node with the given id.
func (g *Graph) FindNode(nodeID int) (Node, bool) {
	for _, node := range g.nodes {
		if node.NodeID == nodeID {
			return node, true
		}
	}
	return Node{}, false
}

// Validate reports structural problems. The only fatal condition is an
// empty graph.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}
	return nil
}

// Clear resets the graph to empty.
func (g *Graph) Clear() {
	g.nodes = nil
	g.connections = nil
}

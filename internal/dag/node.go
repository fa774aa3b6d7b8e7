package dag

// Filter is the capability contract every node payload satisfies.
type Filter interface {
	// Fragment returns the filter's tool syntax, possibly empty. It is either
	// bare (no labels) or self-labelled (starts with "[" or references [0:a]).
	Fragment() string
	// ID is the filter's stable identity. It doubles as the node id and seeds
	// minted stream labels.
	ID() int
	// ProducesAdditionalOutputs reports whether the filter yields streams
	// beyond the main one (splits, sidechain taps). Such filters never feed
	// the final sink and never become the next chain input.
	ProducesAdditionalOutputs() bool
	// ManualOutputLabels reports whether the filter opts out of automatic
	// output label management.
	ManualOutputLabels() bool
}

// Connection is one directed wire between two node ports.
type Connection struct {
	SourceNodeID   int
	SourcePortName string
	DestNodeID     int
	DestPortName   string
}

// Node wraps one filter and its declared ports. NodeID equals the filter's
// own ID.
type Node struct {
	NodeID  int
	Filter  Filter
	Inputs  []PortDescriptor
	Outputs []PortDescriptor
}

// NodeFromFilter builds a node with one main input and one main output.
func NodeFromFilter(f Filter) Node {
	return Node{
		NodeID:  f.ID(),
		Filter:  f,
		Inputs:  []PortDescriptor{MainInput()},
		Outputs: []PortDescriptor{MainOutput()},
	}
}

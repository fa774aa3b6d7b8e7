// Package dag models an audio filter chain as a graph of filter nodes.
//
// Nodes wrap a Filter payload and declare typed input/output ports;
// connections wire one node's port to another's. Today the only construction
// path is BuildLinearChain, which turns an ordered filter list into
// INPUT → filters → OUTPUT with one main_out → main_in connection per
// adjacent pair. Sidechain and branch-output port kinds are reserved for
// non-linear graphs.
//
// The graph holds no derived state: callers rebuild it from scratch whenever
// the ordered filter list changes and hand it to the filtercomplex builder.
package dag

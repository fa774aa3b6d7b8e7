// Package chain holds the user's ordered filter list and turns it into an
// ffmpeg invocation.
//
// A Chain always starts with the INPUT sentinel and ends with the OUTPUT
// sentinel. Middle filters receive stable ids from a per-chain counter; mute
// state is tracked by position and follows filters through Add, Remove, and
// Move. Every call to Graph or FilterComplex rebuilds the dag.Graph from the
// current list, so no derived state survives between builds.
//
// Args assembles the full argument vector (log flags, input, the
// -filter_complex expression, sink mapping, output encoding). Running ffmpeg
// is left to the caller.
package chain

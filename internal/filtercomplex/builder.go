package filtercomplex

import (
	"fmt"
	"strings"

	"ffab/internal/dag"
)

// Options carries the runtime chain state for one build.
type Options struct {
	// Muted lists original chain positions to skip.
	Muted []int
	// Positions maps node id → original chain position. Nodes absent from
	// the map are never muted.
	Positions map[int]int
	// Mint produces label tokens for non-final outputs. Defaults to HexLabel.
	Mint LabelFunc
}

// Warning reports a graph inconsistency that Build degraded around.
type Warning struct {
	NodeID  int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("node %d: %s", w.NodeID, w.Message)
}

// Result is the compiled expression plus any warnings collected on the way.
type Result struct {
	Expression string
	Fragments  []string
	Warnings   []Warning
}

// Empty reports whether the build produced no fragments.
func (r Result) Empty() bool {
	return r.Expression == ""
}

// stage is one surviving filter with its raw fragment.
type stage struct {
	filter   dag.Filter
	fragment string
}

// chainState is the accumulator threaded through the fold.
type chainState struct {
	input string
}

// Build compiles the graph into a filter_complex expression. Graphs with
// fewer than three nodes (INPUT, at least one filter, OUTPUT) yield an empty
// result.
func Build(g *dag.Graph, opts Options) Result {
	if g == nil || g.Len() <= 2 {
		return Result{}
	}
	mint := opts.Mint
	if mint == nil {
		mint = HexLabel
	}

	stages, warnings := surviving(g, opts)

	state := chainState{input: PrimaryInput}
	fragments := make([]string, 0, len(stages))
	for i, s := range stages {
		var fragment string
		state, fragment = state.advance(s, i == len(stages)-1, mint)
		fragments = append(fragments, fragment)
	}

	return Result{
		Expression: strings.Join(fragments, ";"),
		Fragments:  fragments,
		Warnings:   warnings,
	}
}

// surviving returns the filters that will emit, in topological order.
// Sentinels, muted positions, missing nodes, and empty fragments are dropped,
// so the last element is exactly the filter that receives the sink label.
func surviving(g *dag.Graph, opts Options) ([]stage, []Warning) {
	order := g.TopologicalOrder()
	first, last := order[0], order[len(order)-1]

	muted := make(map[int]struct{}, len(opts.Muted))
	for _, pos := range opts.Muted {
		muted[pos] = struct{}{}
	}

	var (
		stages   []stage
		warnings []Warning
	)
	for _, id := range order {
		if id == first || id == last {
			continue
		}
		if pos, ok := opts.Positions[id]; ok {
			if _, skip := muted[pos]; skip {
				continue
			}
		}
		node, ok := g.FindNode(id)
		if !ok || node.Filter == nil {
			warnings = append(warnings, Warning{NodeID: id, Message: "node not found in graph; skipped"})
			continue
		}
		fragment := node.Filter.Fragment()
		if fragment == "" {
			continue
		}
		stages = append(stages, stage{filter: node.Filter, fragment: fragment})
	}
	return stages, warnings
}

// advance emits one stage and returns the next state.
func (s chainState) advance(st stage, isLast bool, mint LabelFunc) (chainState, string) {
	fragment := rewriteInput(st.fragment, s.input)

	if st.filter.ManualOutputLabels() {
		return s, fragment
	}

	branching := st.filter.ProducesAdditionalOutputs()
	output := Sink
	if branching || !isLast {
		output = bracket(mint(st.filter.ID()))
	}

	fragment = stripTrailingLabel(fragment) + output

	next := s
	if !branching && !isLast {
		next.input = output
	}
	return next, fragment
}

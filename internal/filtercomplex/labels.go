package filtercomplex

import (
	"fmt"
	"strings"
)

const (
	// PrimaryInput is the stream label of the first input's audio.
	PrimaryInput = "[0:a]"
	// Sink is the label of the final output stream mapped by the command.
	Sink = "[out]"
)

// LabelFunc mints the bare token (no brackets) for a filter id. It must be
// deterministic and collision-free across one build.
type LabelFunc func(filterID int) string

// HexLabel renders a filter id as four upper-case hex digits (42 → "002A").
func HexLabel(filterID int) string {
	return fmt.Sprintf("%04X", filterID)
}

// bracket wraps a token as a stream label.
func bracket(token string) string {
	return "[" + token + "]"
}

// rewriteInput threads the chain input into a fragment. Self-labelled
// fragments get every [0:a] replaced; bare fragments get the label prefixed.
func rewriteInput(fragment, input string) string {
	if strings.Contains(fragment, PrimaryInput) || strings.HasPrefix(fragment, "[") {
		return strings.ReplaceAll(fragment, PrimaryInput, input)
	}
	return input + fragment
}

// stripTrailingLabel drops a label a filter appended after its last
// parameter separator ('=' or ':').
func stripTrailingLabel(fragment string) string {
	lastParam := max(strings.LastIndexByte(fragment, '='), strings.LastIndexByte(fragment, ':'))
	if lastParam < 0 {
		return fragment
	}
	if open := strings.IndexByte(fragment[lastParam:], '['); open >= 0 {
		return fragment[:lastParam+open]
	}
	return fragment
}

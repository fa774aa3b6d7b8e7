package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"ffab/internal/filtercomplex"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type renderJSON struct {
	Chain      string   `json:"chain"`
	Expression string   `json:"expression"`
	Fragments  []string `json:"fragments"`
	Muted      []int    `json:"muted"`
	Warnings   []string `json:"warnings,omitempty"`
}

func newRenderJSON(path string, muted []int, result filtercomplex.Result) renderJSON {
	out := renderJSON{
		Chain:      path,
		Expression: result.Expression,
		Fragments:  result.Fragments,
		Muted:      muted,
	}
	if out.Fragments == nil {
		out.Fragments = []string{}
	}
	if out.Muted == nil {
		out.Muted = []int{}
	}
	for _, w := range result.Warnings {
		out.Warnings = append(out.Warnings, w.String())
	}
	return out
}

type filterJSON struct {
	Position int    `json:"position"`
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Fragment string `json:"fragment,omitempty"`
	Muted    bool   `json:"muted"`
	Branch   bool   `json:"additional_outputs,omitempty"`
	Manual   bool   `json:"manual_output_labels,omitempty"`
}

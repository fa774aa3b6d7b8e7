package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ffab/internal/chain"
	"ffab/internal/filters"
)

func newGraphCommand(ctx *commandContext) *cobra.Command {
	var mutes []int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "graph CHAIN",
		Short: "Show the filters of a chain in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, path, err := ctx.loadChain(args[0])
			if err != nil {
				return err
			}
			if err := applyMutes(ctx, ch, mutes); err != nil {
				return err
			}

			rows := describeChain(ch)
			if jsonOutput {
				return writeJSON(cmd, rows)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Chain", statusInfo, path, colorize))

			active := 0
			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				if !row.Muted && row.Fragment != "" {
					active++
				}
				table = append(table, []string{
					strconv.Itoa(row.Position),
					filterIDLabel(row.ID),
					row.Name,
					yesNo(row.Muted),
					flagSummary(row),
					row.Fragment,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Pos", "ID", "Filter", "Muted", "Flags", "Fragment"},
				table,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			kind := statusOK
			if active == 0 {
				kind = statusWarn
			}
			summary := fmt.Sprintf("%d active, %d muted", active, len(ch.Muted()))
			fmt.Fprintln(out, renderStatusLine("Filters", kind, summary, colorize))

			result := ch.FilterComplex()
			for _, w := range result.Warnings {
				fmt.Fprintln(out, renderStatusLine("Graph", statusError, w.String(), colorize))
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&mutes, "mute", "m", nil, "Additionally mute the filter at this position (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func describeChain(ch *chain.Chain) []filterJSON {
	list := ch.Filters()
	rows := make([]filterJSON, 0, len(list))
	for pos, f := range list {
		rows = append(rows, filterJSON{
			Position: pos,
			ID:       f.ID(),
			Type:     f.Type(),
			Name:     f.DisplayName(),
			Fragment: f.Fragment(),
			Muted:    ch.IsMuted(pos),
			Branch:   f.ProducesAdditionalOutputs(),
			Manual:   f.ManualOutputLabels(),
		})
	}
	return rows
}

func filterIDLabel(id int) string {
	switch id {
	case filters.InputID:
		return "in"
	case filters.OutputID:
		return "out"
	}
	return strconv.Itoa(id)
}

func flagSummary(row filterJSON) string {
	var flags []string
	if row.Branch {
		flags = append(flags, "branch")
	}
	if row.Manual {
		flags = append(flags, "manual labels")
	}
	return strings.Join(flags, ", ")
}

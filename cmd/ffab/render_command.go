package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffab/internal/chain"
	"ffab/internal/logging"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var mutes []int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "render CHAIN",
		Short: "Print the -filter_complex expression for a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, path, err := ctx.loadChain(args[0])
			if err != nil {
				return err
			}
			if err := applyMutes(ctx, ch, mutes); err != nil {
				return err
			}

			result := ch.FilterComplex()
			if jsonOutput {
				return writeJSON(cmd, newRenderJSON(path, ch.Muted(), result))
			}
			if result.Empty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "No active filters; ffmpeg would pass audio through unchanged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Expression)
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&mutes, "mute", "m", nil, "Additionally mute the filter at this position (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// applyMutes mutes each position on top of what the chain file declares.
func applyMutes(ctx *commandContext, ch *chain.Chain, positions []int) error {
	for _, pos := range positions {
		if err := ch.SetMuted(pos, true); err != nil {
			return fmt.Errorf("--mute %d: %w (valid positions are 1..%d)", pos, err, ch.Len()-2)
		}
		ctx.sessionLogger().Debug("filter muted from command line", logging.Int(logging.FieldPosition, pos))
	}
	return nil
}

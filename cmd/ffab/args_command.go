package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ffab/internal/chain"
	"ffab/internal/config"
)

func newArgsCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string
	var mutes []int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "args CHAIN",
		Short: "Print the full ffmpeg command for rendering a file through a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.ExpandPath(strings.TrimSpace(inputPath))
			if err != nil {
				return fmt.Errorf("resolve input: %w", err)
			}
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if _, err := os.Stat(input); err != nil {
				return fmt.Errorf("inspect input %q: %w", input, err)
			}
			output, err := config.ExpandPath(strings.TrimSpace(outputPath))
			if err != nil {
				return fmt.Errorf("resolve output: %w", err)
			}

			ch, _, err := ctx.loadChain(args[0])
			if err != nil {
				return err
			}
			if err := applyMutes(ctx, ch, mutes); err != nil {
				return err
			}

			cfg := ctx.configValue()
			settings := chain.LogSettingsFromConfig(cfg)
			binary := "ffmpeg"
			if cfg != nil && cfg.FFmpeg.Binary != "" {
				binary = cfg.FFmpeg.Binary
			}

			if jsonOutput {
				argv, err := ch.Args(input, output, settings)
				if err != nil {
					return err
				}
				return writeJSON(cmd, append([]string{binary}, argv...))
			}

			line, err := ch.CommandLine(binary, input, output, settings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Source audio file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination audio file")
	cmd.Flags().IntSliceVarP(&mutes, "mute", "m", nil, "Additionally mute the filter at this position (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the argument vector as JSON")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

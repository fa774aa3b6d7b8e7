package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ffab/internal/chainfile"
	"ffab/internal/config"
	"ffab/internal/filters"
)

const defaultChainName = "default.toml"

func newChainCommand(ctx *commandContext) *cobra.Command {
	chainCmd := &cobra.Command{
		Use:   "chain",
		Short: "Chain file utilities",
	}

	chainCmd.AddCommand(newChainInitCommand(ctx))
	chainCmd.AddCommand(newChainValidateCommand(ctx))
	chainCmd.AddCommand(newChainListCommand(ctx))
	chainCmd.AddCommand(newChainTypesCommand())

	return chainCmd
}

func newChainInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [NAME]",
		Short: "Create a sample chain file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				cfg := ctx.configValue()
				if cfg == nil {
					return errors.New("no chain directory configured; pass --path")
				}
				name := defaultChainName
				if len(args) == 1 {
					name = chainfile.FileName(args[0])
					if name == "" {
						return fmt.Errorf("invalid chain name %q", args[0])
					}
				}
				target = filepath.Join(cfg.Paths.ChainDir, name)
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve chain path: %w", err)
				}
				target = expanded
			}

			if err := chainfile.WriteSample(target, overwrite); err != nil {
				if !overwrite {
					return fmt.Errorf("%w (use --overwrite to replace it)", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample chain to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the chain file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing chain file if present")
	return cmd
}

func newChainValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate CHAIN",
		Short: "Validate a chain file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, path, err := ctx.loadChain(args[0])
			if err != nil {
				return fmt.Errorf("load chain: %w", err)
			}
			g, err := ch.Graph()
			if err != nil {
				return err
			}
			result := ch.FilterComplex()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Chain", statusInfo, path, colorize))
			fmt.Fprintln(out, renderStatusLine("Graph", statusOK,
				fmt.Sprintf("%d nodes, %d connections", g.Len(), len(g.Connections())), colorize))
			if len(result.Warnings) > 0 {
				for _, w := range result.Warnings {
					fmt.Fprintln(out, renderStatusLine("Graph", statusWarn, w.String(), colorize))
				}
			}
			if result.Empty() {
				fmt.Fprintln(out, renderStatusLine("Output", statusWarn, "no active filters", colorize))
			}
			fmt.Fprintln(out, "Chain valid")
			return nil
		},
	}
}

func newChainListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chains in the configured chain directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cfg == nil {
				return errors.New("configuration unavailable")
			}
			matches, err := filepath.Glob(filepath.Join(cfg.Paths.ChainDir, "*.toml"))
			if err != nil {
				return fmt.Errorf("list chains: %w", err)
			}
			sort.Strings(matches)

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No chains in %s\n", cfg.Paths.ChainDir)
				return nil
			}

			rows := make([][]string, 0, len(matches))
			for _, path := range matches {
				name := strings.TrimSuffix(filepath.Base(path), ".toml")
				ch, err := chainfile.Load(path)
				if err != nil {
					rows = append(rows, []string{name, "-", "-", "invalid: " + firstLine(err.Error())})
					continue
				}
				rows = append(rows, []string{
					name,
					strconv.Itoa(ch.Len() - 2),
					strconv.Itoa(len(ch.Muted())),
					"ok",
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Chain", "Filters", "Muted", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newChainTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "types",
		Short:       "List filter types accepted in chain files",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, name := range filters.Types() {
				f, err := filters.New(name)
				if err != nil {
					return err
				}
				if filters.IsSentinel(f) {
					continue
				}
				rows = append(rows, []string{name, f.DisplayName()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Type", "Filter"}, rows, nil))
			return nil
		},
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

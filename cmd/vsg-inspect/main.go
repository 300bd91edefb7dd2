// Command vsg-inspect is a small developer convenience (SPEC_FULL.md
// DOMAIN STACK): it loads a .dot capture file produced by a prior run and
// reports its node and edge counts per kind. It never invokes the
// external graph-rendering binary itself (spec §1 out-of-scope #4) — this
// is inspection tooling, not visualization.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vsg-inspect [path]",
		Short:        "Inspect a sync-graph .dot capture file",
		Long:         "vsg-inspect validates and pretty-prints the node and edge counts of a .dot capture file written by the vsa synchronization capture layer.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
	return root
}

func runInspect(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vsg-inspect: read %s: %w", path, err)
	}

	report := inspect(string(data))

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  nodes: %d\n", report.NodeCount)
	fmt.Fprintf(cmd.OutOrStdout(), "  edges: %d\n", report.EdgeCount)
	for _, k := range report.sortedEdgeColorKeys() {
		fmt.Fprintf(cmd.OutOrStdout(), "    %-10s %d\n", k, report.EdgesByColor[k])
	}
	if !report.Valid {
		return fmt.Errorf("vsg-inspect: %s does not look like a digraph produced by this layer", path)
	}
	return nil
}

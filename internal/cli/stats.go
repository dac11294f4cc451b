package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/dfs"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and skipped-line counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			s := g.Stats()
			comps, err := dfs.Components(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			heading(out, "Graph")
			fmt.Fprintf(out, "  %-14s %s\n", "policy", a.cfg.Policy)
			fmt.Fprintf(out, "  %-14s %d\n", "nodes", s.Nodes)
			fmt.Fprintf(out, "  %-14s %d\n", "source edges", s.SourceEdges)
			fmt.Fprintf(out, "  %-14s %d\n", "adjacency", s.Entries)
			fmt.Fprintf(out, "  %-14s %d\n", "isolated", s.Isolated)
			fmt.Fprintf(out, "  %-14s %d\n", "max degree", s.MaxDegree)
			fmt.Fprintf(out, "  %-14s %d\n", "components", len(comps))
			fmt.Fprintf(out, "  %-14s %d\n", "largest", dfs.Largest(comps))
			fmt.Fprintf(out, "  %-14s %d\n", "skipped lines", a.skipped)

			return nil
		},
	}
}

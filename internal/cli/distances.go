package cli

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/core"
	"github.com/katalvlaran/edgegraph/dijkstra"
)

func newDistancesCmd(a *app) *cobra.Command {
	var (
		start uint64
		limit int
	)
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Hop distances from a source node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			dist, _, err := dijkstra.Dijkstra(g, core.NodeID(start), dijkstra.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			type row struct {
				id core.NodeID
				d  int64
			}
			rows := make([]row, 0, len(dist))
			var farthest int64
			for id, d := range dist {
				if !dijkstra.Reachable(d) {
					continue
				}
				rows = append(rows, row{id, d})
				farthest = max(farthest, d)
			}
			slices.SortFunc(rows, func(x, y row) int {
				if c := cmp.Compare(x.d, y.d); c != 0 {
					return c
				}
				return cmp.Compare(x.id, y.id)
			})

			out := cmd.OutOrStdout()
			heading(out, fmt.Sprintf("Distances from %d", start))
			fmt.Fprintf(out, "reachable %d of %d, max distance %d\n", len(rows), len(dist), farthest)
			shown := rows
			if limit > 0 && len(rows) > limit {
				shown = rows[:limit]
			}
			for _, r := range shown {
				fmt.Fprintf(out, "  %d\t%d\n", uint64(r.id), r.d)
			}
			if rest := len(rows) - len(shown); rest > 0 {
				fmt.Fprintf(out, "  ... (%d more)\n", rest)
			}

			return nil
		},
	}
	cmd.Flags().Uint64Var(&start, "start", 0, "source node")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "rows to print (0 = all)")

	return cmd
}

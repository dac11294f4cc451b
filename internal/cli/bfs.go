package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/bfs"
	"github.com/katalvlaran/edgegraph/core"
)

// defaultLimit is how many nodes traversal listings show.
const defaultLimit = 20

func newBFSCmd(a *app) *cobra.Command {
	var (
		start    uint64
		limit    int
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first traversal order from a start node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, core.NodeID(start),
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
				bfs.WithOnVisit(func(id core.NodeID, hops int) error {
					a.log.Debug("bfs visit", "node", uint64(id), "hops", hops)
					return nil
				}),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			heading(out, fmt.Sprintf("BFS from %d", start))
			fmt.Fprintf(out, "visited %d nodes\n", len(res.Order))
			writeIDs(out, res.Order, limit)

			return nil
		},
	}
	cmd.Flags().Uint64Var(&start, "start", 0, "start node")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "nodes to print (0 = all)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding beyond this depth (0 = unlimited)")

	return cmd
}

// writeIDs prints up to limit ids on one line, noting how many were cut.
func writeIDs(w io.Writer, ids []core.NodeID, limit int) {
	shown := ids
	if limit > 0 && len(ids) > limit {
		shown = ids[:limit]
	}
	for i, id := range shown {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, uint64(id))
	}
	if rest := len(ids) - len(shown); rest > 0 {
		fmt.Fprintf(w, " ... (%d more)", rest)
	}
	fmt.Fprintln(w)
}

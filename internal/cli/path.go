package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/bfs"
	"github.com/katalvlaran/edgegraph/core"
	"github.com/katalvlaran/edgegraph/internal/prompt"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		start, end  uint64
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Fewest-hop path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !interactive && (!flags.Changed("start") || !flags.Changed("end")) {
				return errors.New("path needs --start and --end, or --interactive")
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			from, to := core.NodeID(start), core.NodeID(end)
			if interactive {
				p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				if from, to, err = p.Endpoints(g); err != nil {
					return err
				}
			}

			path, err := bfs.ShortestPath(g, from, to, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			heading(out, fmt.Sprintf("Path %d -> %d", uint64(from), uint64(to)))
			if len(path) == 0 {
				fmt.Fprintln(out, "no path")
				return nil
			}
			fmt.Fprintf(out, "%d hops\n", len(path)-1)
			writeIDs(out, path, 0)

			return nil
		},
	}
	cmd.Flags().Uint64Var(&start, "start", 0, "start node")
	cmd.Flags().Uint64Var(&end, "end", 0, "end node")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for start and end")
	cmd.MarkFlagsMutuallyExclusive("interactive", "start")
	cmd.MarkFlagsMutuallyExclusive("interactive", "end")

	return cmd
}

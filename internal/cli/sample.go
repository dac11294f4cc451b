package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/core"
	"github.com/katalvlaran/edgegraph/edgelist"
	"github.com/katalvlaran/edgegraph/sample"
)

func newSampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Shrink the graph to a sample",
	}
	// config keys sample.* and output bind to these names
	cmd.PersistentFlags().Int("budget", 100, "number of nodes to sample")
	cmd.PersistentFlags().String("out", "", "write the sampled edge list to this file")

	cmd.AddCommand(newSampleConnectedCmd(a), newSampleTopNCmd(a), newSampleRandomCmd(a))

	return cmd
}

func (a *app) sampleOptions() []sample.Option {
	opts := []sample.Option{sample.WithLogger(a.log)}
	if a.cfg.Sample.Seed != 0 {
		opts = append(opts, sample.WithSeed(a.cfg.Sample.Seed))
	}

	return opts
}

func newSampleConnectedCmd(a *app) *cobra.Command {
	var start uint64
	cmd := &cobra.Command{
		Use:   "connected",
		Short: "Connected sample grown breadth-first from a start node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			set, err := sample.Connected(g, core.NodeID(start), a.cfg.Sample.Budget, a.sampleOptions()...)
			if err != nil {
				return err
			}

			return a.reportSet(cmd.OutOrStdout(), fmt.Sprintf("Connected sample from %d", start), g, set)
		},
	}
	cmd.Flags().Uint64Var(&start, "start", 0, "seed node")

	return cmd
}

func newSampleRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Uniform random node sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			set, err := sample.Random(g, a.cfg.Sample.Budget, a.sampleOptions()...)
			if err != nil {
				return err
			}

			return a.reportSet(cmd.OutOrStdout(), "Random sample", g, set)
		},
	}
	cmd.Flags().Int64("seed", 0, "random seed (0 = unseeded)")

	return cmd
}

func newSampleTopNCmd(a *app) *cobra.Command {
	var (
		n        int
		sorted   bool
		noAnchor bool
	)
	cmd := &cobra.Command{
		Use:   "topn",
		Short: "First n nodes with their full neighbor lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			opts := append(a.sampleOptions(), sample.WithAnchor(core.NodeID(a.cfg.Sample.Anchor)))
			if sorted {
				opts = append(opts, sample.WithSortedNeighbors())
			}
			if noAnchor {
				opts = append(opts, sample.WithoutAnchor())
			}
			sub, err := sample.TopN(g, n, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, fmt.Sprintf("Top %d", n))
			for _, id := range sub.Nodes() {
				nbrs, _ := sub.Neighbors(id)
				fmt.Fprintf(out, "  %d:", uint64(id))
				for _, v := range nbrs {
					fmt.Fprintf(out, " %d", uint64(v))
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d nodes, %d dangling neighbors\n", sub.Len(), len(sub.Dangling()))

			return a.save(out, sub.Edges())
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of keys to take")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "sort neighbor lists ascending")
	cmd.Flags().Uint64("anchor", 0, "node always included")
	cmd.Flags().BoolVar(&noAnchor, "no-anchor", false, "do not force-include the anchor")

	return cmd
}

// reportSet prints a sampled node set and its induced edge count, then
// saves the induced edges when an output path is configured.
func (a *app) reportSet(out io.Writer, title string, g *core.Graph, set sample.NodeSet) error {
	edges := sample.InducedEdges(g, set)

	heading(out, title)
	fmt.Fprintf(out, "%d nodes, %d induced edges\n", set.Len(), len(edges))
	writeIDs(out, set.Sorted(), defaultLimit)

	return a.save(out, edges)
}

func (a *app) save(out io.Writer, edges []core.Edge) error {
	if a.cfg.Output == "" {
		return nil
	}
	if err := edgelist.WriteFile(a.cfg.Output, edges); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d edges to %s\n", len(edges), a.cfg.Output)

	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/builder"
	"github.com/katalvlaran/edgegraph/edgelist"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		p    builder.Params
		seed int64
	)
	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Write a synthetic edge list (" + strings.Join(builder.Kinds(), ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := builder.ByName(args[0], p)
			if err != nil {
				return err
			}
			edges, err := builder.Generate([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			a.log.Debug("generated", "kind", args[0], "edges", len(edges))

			if a.cfg.Output == "" {
				return edgelist.Write(cmd.OutOrStdout(), edges)
			}
			if err = edgelist.WriteFile(a.cfg.Output, edges); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d edges to %s\n", len(edges), a.cfg.Output)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.N, "n", 10, "node count (path, cycle, star, complete, random)")
	f.IntVar(&p.Rows, "rows", 3, "grid rows")
	f.IntVar(&p.Cols, "cols", 3, "grid columns")
	f.Float64Var(&p.P, "p", 0.1, "edge probability (random)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.String("out", "", "write to this file instead of stdout")

	return cmd
}

// Package cli wires the edgegraph library into a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgegraph/core"
	"github.com/katalvlaran/edgegraph/edgelist"
	"github.com/katalvlaran/edgegraph/internal/config"
	"github.com/katalvlaran/edgegraph/internal/logging"
)

// app is the per-invocation state shared by subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger

	skipped int
}

// NewRootCmd builds the edgegraph command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "edgegraph",
		Short: "Explore large edge-list graphs",
		Long: `edgegraph loads a whitespace-separated edge list and runs
breadth-first search, hop distances, shortest paths and sampling on it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./"+config.DefaultFile+")")
	pf.StringP("input", "i", "", "edge-list file")
	pf.String("policy", "symmetric", "orientation policy: symmetric or directed")
	pf.Bool("strict", false, "fail on unparsable node ids instead of skipping the line")
	pf.String("comment", "", `comment prefix, e.g. "#" for SNAP headers`)
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")

	root.AddCommand(
		newStatsCmd(a),
		newBFSCmd(a),
		newDistancesCmd(a),
		newPathCmd(a),
		newSampleCmd(a),
		newConfigCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "edgegraph:", err)
		return 1
	}

	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l

	return nil
}

// loadGraph reads the configured input, counting skipped lines.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Input == "" {
		return nil, fmt.Errorf("no input file: set --input, EDGEGRAPH_INPUT or input in %s", config.DefaultFile)
	}
	opts, err := a.cfg.ReadOptions(a.log)
	if err != nil {
		return nil, err
	}
	a.skipped = 0
	opts = append(opts, edgelist.WithOnSkip(func(s edgelist.Skip) {
		if s.Reason == edgelist.SkipMalformed || s.Reason == edgelist.SkipParse {
			a.skipped++
		}
	}))

	g, err := edgelist.ReadFile(a.cfg.Input, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded", "input", a.cfg.Input, "nodes", g.NodeCount(), "skipped", a.skipped)

	return g, nil
}

// heading renders a section title; plain text when w is not a terminal.
func heading(w io.Writer, title string) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99"))
	fmt.Fprintln(w, style.Render(title))
}

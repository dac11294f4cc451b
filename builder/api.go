// SPDX-License-Identifier: MIT
// Package: edgegraph/builder
//
// api.go - public entry points and the constructor registry.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/edgegraph/core"
)

// Constructor allocates its IDs from cfg and emits edges in a stable order.
type Constructor func(cfg *builderConfig, emit func(u, v core.NodeID)) error

// Generate resolves bopts and runs every constructor in order, returning
// the emitted edges. Any constructor error is wrapped and returned at once.
//
// Complexity: Σ cost of each constructor.
func Generate(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var edges []core.Edge
	emit := func(u, v core.NodeID) { edges = append(edges, core.Edge{From: u, To: v}) }
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cfg, emit); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return edges, nil
}

// BuildGraph is Generate followed by core.FromEdges with gopts.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	edges, err := Generate(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.FromEdges(edges, gopts...), nil
}

// Params carries the size knobs used by ByName.
type Params struct {
	N    int
	Rows int
	Cols int
	P    float64
}

var kinds = map[string]func(Params) Constructor{
	"path":     func(p Params) Constructor { return Path(p.N) },
	"cycle":    func(p Params) Constructor { return Cycle(p.N) },
	"star":     func(p Params) Constructor { return Star(p.N) },
	"complete": func(p Params) Constructor { return Complete(p.N) },
	"grid":     func(p Params) Constructor { return Grid(p.Rows, p.Cols) },
	"random":   func(p Params) Constructor { return RandomSparse(p.N, p.P) },
}

// Kinds lists the names ByName accepts, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// ByName returns the constructor registered under kind.
func ByName(kind string, p Params) (Constructor, error) {
	mk, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrConstructFailed, kind)
	}

	return mk(p), nil
}

// SPDX-License-Identifier: MIT
// Package: edgegraph/builder
//
// Package builder generates deterministic synthetic edge lists: paths,
// cycles, stars, complete graphs, grids and Erdős–Rényi-like random graphs.
// They serve as fixtures for tests and benchmarks and back the
// "edgegraph generate" command, whose output the edge-list loader reads back.
//
// Design contract:
//   - One orchestrator: Generate(bopts, cons...) runs constructors in order
//     and returns the emitted edges; BuildGraph feeds them to core.Builder.
//   - Node IDs are allocated consecutively from WithOffset (default 0). Each
//     constructor takes the next block of IDs, so composing constructors
//     yields disjoint pieces.
//   - Determinism: same constructors, options and seed give the same edges
//     in the same order.
//   - Constructors validate parameters and return sentinel errors; option
//     constructors panic on meaningless input.
//
// Isolated nodes cannot be expressed in an edge list, so a random graph may
// leave some allocated IDs unused.
package builder

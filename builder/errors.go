// SPDX-License-Identifier: MIT
// Package: edgegraph/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates n (or rows*cols) is below the topology minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a nil constructor or unknown kind.
	ErrConstructFailed = errors.New("builder: construction failed")
)

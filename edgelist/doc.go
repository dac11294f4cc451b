// Package edgelist reads and writes graphs in the flat edge-list format:
// UTF-8 text, one edge per line, two whitespace-separated non-negative
// integers.
//
// What
//
//   - Read / ReadFile build an immutable core.Graph from an edge list.
//   - ReadEdges returns the raw []core.Edge without building adjacency.
//   - Write / WriteFile emit "u v\n" per edge with no header.
//
// Line policy
//
//	Exactly two tokens   → an edge; both tokens must parse as NodeID.
//	Any other count      → skipped (SkipMalformed). Never an error.
//	Blank line           → skipped (SkipBlank).
//	Longer than 1 MiB    → skipped (SkipMalformed, Err wraps ErrLineTooLong);
//	                       fatal in ParseStrict.
//	Comment prefix       → skipped (SkipComment), only when WithCommentPrefix is set.
//
// A UTF-8 byte-order mark at the start of the input is dropped. Line
// terminators may be "\n" or "\r\n".
//
// With a comment prefix configured (the header-aware variant) a malformed
// non-comment line is reported at Warn level; without one it is skipped at
// Debug level, since headers are expected in real datasets.
//
// Parse modes
//
//	ParseTolerant (default): a token that is not a NodeID skips its line and
//	                         logs a Warn record; loading continues.
//	ParseStrict:             the first bad token aborts the load with a
//	                         *ParseError (errors.Is(err, ErrParse)).
//
// Orientation policies
//
//	PolicySymmetric (default): both directions are recorded for every edge.
//	PolicyDirected:            only source→target is recorded; the target
//	                           still receives an entry, possibly empty.
//
// Self-loops and repeated edges are kept. Under PolicySymmetric a line "v v"
// adds v to N(v) once, not twice, so Graph.EdgeCount grows by 1 for it and
// by 2 for any other edge. Graph.SourceEdgeCount counts every accepted line.
//
// Errors
//
//   - ErrIO              the source could not be opened or read (fatal).
//   - ErrParse           strict mode met a non-numeric token.
//   - ErrLineTooLong     strict mode met a line over 1 MiB.
//   - ErrOptionViolation an invalid Option was supplied.
//
// Usage
//
//	g, err := edgelist.ReadFile("amazon0302.txt",
//	    edgelist.WithCommentPrefix("#"),
//	    edgelist.WithLogger(logger),
//	)
package edgelist

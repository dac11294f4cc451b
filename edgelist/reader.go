package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/edgegraph/core"
)

const (
	// maxLineBytes bounds a single input line; real edge lists are far shorter.
	maxLineBytes = 1 << 20

	// skipPreviewBytes is how much of an over-long line Skip.Text keeps.
	skipPreviewBytes = 64

	byteOrderMark = "\ufeff"
)

// Read parses an edge list from r and builds an immutable Graph under the
// configured Policy. Lines that do not describe an edge are skipped as
// documented in the package overview.
//
// Errors: ErrOptionViolation, ErrIO (read failure), and in strict mode
// *ParseError or ErrLineTooLong.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	b := core.NewBuilder(core.WithDirected(o.Policy == PolicyDirected))
	if err = scan(r, o, b.AddEdge); err != nil {
		return nil, err
	}
	g := b.Build()
	o.Logger.Debug("edge list loaded",
		"policy", o.Policy.String(),
		"nodes", g.NodeCount(),
		"edges", g.SourceEdgeCount(),
		"entries", g.EdgeCount(),
	)

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// ReadEdges parses r into the raw edge sequence, in input order, without
// building adjacency. Policy has no effect here.
func ReadEdges(r io.Reader, opts ...Option) ([]core.Edge, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var edges []core.Edge
	err = scan(r, o, func(from, to core.NodeID) {
		edges = append(edges, core.Edge{From: from, To: to})
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// scan walks r line by line and calls emit for every well-formed edge.
func scan(r io.Reader, o Options, emit func(from, to core.NodeID)) error {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		lineNo   int
		skipped  int
		text     string
		long     bool
		from, to core.NodeID
		err      error
	)
	for {
		text, long, err = readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrIO, lineNo+1, err)
		}
		lineNo++
		if long {
			lerr := fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, lineNo, maxLineBytes)
			if o.Mode == ParseStrict {
				return lerr
			}
			o.Logger.Warn("skipping over-long line", "line", lineNo, "limit", maxLineBytes)
			o.OnSkip(Skip{Line: lineNo, Text: text, Reason: SkipMalformed, Err: lerr})
			skipped++
			continue
		}
		if lineNo == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}

		fields := strings.Fields(text)
		switch {
		case len(fields) == 0:
			o.OnSkip(Skip{Line: lineNo, Text: text, Reason: SkipBlank})
			skipped++
			continue
		case o.CommentPrefix != "" && strings.HasPrefix(fields[0], o.CommentPrefix):
			o.OnSkip(Skip{Line: lineNo, Text: text, Reason: SkipComment})
			skipped++
			continue
		case len(fields) != 2:
			if o.CommentPrefix != "" {
				o.Logger.Warn("skipping malformed line", "line", lineNo, "text", text)
			} else {
				o.Logger.Debug("skipping line", "line", lineNo, "tokens", len(fields))
			}
			o.OnSkip(Skip{Line: lineNo, Text: text, Reason: SkipMalformed})
			skipped++
			continue
		}

		if from, err = parseNodeID(lineNo, fields[0]); err == nil {
			to, err = parseNodeID(lineNo, fields[1])
		}
		if err != nil {
			if o.Mode == ParseStrict {
				return err
			}
			o.Logger.Warn("skipping unparsable line", "line", lineNo, "text", text, "error", err)
			o.OnSkip(Skip{Line: lineNo, Text: text, Reason: SkipParse, Err: err})
			skipped++
			continue
		}

		emit(from, to)
	}
	if skipped > 0 {
		o.Logger.Debug("edge list lines skipped", "count", skipped, "lines", lineNo)
	}

	return nil
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// A line longer than maxLineBytes is consumed to its end and reported with
// long set; text then holds only its first skipPreviewBytes bytes.
// The final line need not be terminated. io.EOF is returned only when no
// bytes remain.
func readLine(br *bufio.Reader) (text string, long bool, err error) {
	chunk, more, err := br.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !more {
		return string(chunk), false, nil
	}

	buf := append([]byte(nil), chunk...)
	for more {
		if chunk, more, err = br.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", false, err
		}
		if long {
			continue
		}
		if len(buf)+len(chunk) > maxLineBytes {
			long = true
			buf = buf[:min(len(buf), skipPreviewBytes)]
			continue
		}
		buf = append(buf, chunk...)
	}

	return string(buf), long, nil
}

func parseNodeID(line int, tok string) (core.NodeID, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Token: tok, Err: err}
	}

	return core.NodeID(v), nil
}

// Package prompt asks the user for path endpoints on a line-based terminal
// and validates each answer against the loaded graph before any search runs.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/edgegraph/core"
)

var (
	// ErrNotNumeric is returned for an answer that is not a non-negative integer.
	ErrNotNumeric = errors.New("prompt: not a node id")

	// ErrUnknownNode is returned for a well-formed id with no entry in the graph.
	ErrUnknownNode = errors.New("prompt: node not in graph")

	// ErrNoInput is returned when the input ends before a valid answer.
	ErrNoInput = errors.New("prompt: input closed")
)

// DefaultMaxAttempts bounds re-prompting for a single answer.
const DefaultMaxAttempts = 3

// Prompter reads answers line by line from in and writes prompts to out.
type Prompter struct {
	MaxAttempts int

	in    *bufio.Reader
	out   io.Writer
	label lipgloss.Style
	bad   lipgloss.Style
}

// New returns a Prompter. Styling adapts to out: plain text unless out is a
// color-capable terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)

	return &Prompter{
		MaxAttempts: DefaultMaxAttempts,
		in:          bufio.NewReader(in),
		out:         out,
		label:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("#874BFD")),
		bad:         r.NewStyle().Foreground(lipgloss.Color("#FF0055")),
	}
}

// Endpoints asks for a start node, then an end node.
func (p *Prompter) Endpoints(g *core.Graph) (start, end core.NodeID, err error) {
	if start, err = p.Node(g, "Start node"); err != nil {
		return 0, 0, err
	}
	if end, err = p.Node(g, "End node"); err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

// Node asks for one node id. Rejected answers are reported on out and the
// question is repeated up to MaxAttempts times; the last rejection is then
// returned.
func (p *Prompter) Node(g *core.Graph, question string) (core.NodeID, error) {
	attempts := max(p.MaxAttempts, 1)
	var (
		lastErr error
		tried   int
	)
	for tried < attempts {
		tried++
		fmt.Fprintf(p.out, "%s: ", p.label.Render(question))

		line, readErr := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" && readErr != nil {
			fmt.Fprintln(p.out)
			return 0, ErrNoInput
		}

		id, err := check(g, answer)
		if err == nil {
			return id, nil
		}
		lastErr = err
		fmt.Fprintln(p.out, p.bad.Render(err.Error()))
		if readErr != nil {
			break
		}
	}

	return 0, fmt.Errorf("%w (gave up after %d of %d attempts)", lastErr, tried, attempts)
}

func check(g *core.Graph, answer string) (core.NodeID, error) {
	n, err := strconv.ParseUint(answer, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, answer)
	}
	id := core.NodeID(n)
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return id, nil
}

package edgelist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for edge-list I/O.
var (
	// ErrIO wraps failures to open, read or write the underlying source.
	ErrIO = errors.New("edgelist: i/o failure")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("edgelist: invalid node id")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")

	// ErrLineTooLong marks a line over the 1 MiB limit. Strict mode returns
	// it; tolerant mode attaches it to the SkipMalformed report.
	ErrLineTooLong = errors.New("edgelist: line too long")
)

// Policy selects how a parsed pair is recorded in the graph.
type Policy int

const (
	// PolicySymmetric records both directions of every edge.
	PolicySymmetric Policy = iota
	// PolicyDirected records source→target only; the target still gets an entry.
	PolicyDirected
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicySymmetric:
		return "symmetric"
	case PolicyDirected:
		return "directed"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "symmetric", "undirected", "":
		return PolicySymmetric, nil
	case "directed":
		return PolicyDirected, nil
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, s)
}

// ParseMode decides what happens to a line whose tokens are not NodeIDs.
type ParseMode int

const (
	// ParseTolerant skips the offending line and keeps loading.
	ParseTolerant ParseMode = iota
	// ParseStrict aborts the load with a *ParseError.
	ParseStrict
)

// SkipReason classifies a line that did not produce an edge.
type SkipReason int

const (
	SkipBlank SkipReason = iota
	SkipComment
	SkipMalformed
	SkipParse
)

func (r SkipReason) String() string {
	switch r {
	case SkipBlank:
		return "blank"
	case SkipComment:
		return "comment"
	case SkipMalformed:
		return "malformed"
	case SkipParse:
		return "parse"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// Skip describes one ignored input line. Line is 1-based.
type Skip struct {
	Line   int
	Text   string
	Reason SkipReason
	Err    error // set for SkipParse
}

// ParseError reports a token that could not be parsed as a NodeID.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d: invalid node id %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the underlying strconv error.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Option configures Read, ReadFile and ReadEdges.
// Invalid options are recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options holds the ingestion configuration.
type Options struct {
	Policy        Policy
	Mode          ParseMode
	CommentPrefix string
	Logger        *slog.Logger
	OnSkip        func(Skip)

	err error
}

// DefaultOptions returns symmetric, tolerant, no comment prefix, a discarding
// logger and a no-op OnSkip.
func DefaultOptions() Options {
	return Options{
		Policy:        PolicySymmetric,
		Mode:          ParseTolerant,
		CommentPrefix: "",
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnSkip:        func(Skip) {},
	}
}

// WithPolicy selects the orientation policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != PolicySymmetric && p != PolicyDirected {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithParseMode selects tolerant or strict token parsing.
func WithParseMode(m ParseMode) Option {
	return func(o *Options) {
		if m != ParseTolerant && m != ParseStrict {
			o.err = fmt.Errorf("%w: unknown parse mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithStrict is shorthand for WithParseMode(ParseStrict).
func WithStrict() Option { return WithParseMode(ParseStrict) }

// WithCommentPrefix enables the header-aware variant. An empty prefix
// disables comment recognition.
func WithCommentPrefix(prefix string) Option {
	return func(o *Options) { o.CommentPrefix = prefix }
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSkip registers an observer called for every skipped line.
func WithOnSkip(fn func(Skip)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

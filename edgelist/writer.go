package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/edgegraph/core"
)

// Write emits one "from to" line per edge, in order, with no header.
func Write(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 48)
	for _, e := range edges {
		buf = strconv.AppendUint(buf[:0], uint64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(e.To), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes edges to it.
func WriteFile(path string, edges []core.Edge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	return Write(f, edges)
}

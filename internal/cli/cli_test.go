package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgegraph/builder"
	"github.com/katalvlaran/edgegraph/internal/cli"
)

// run executes the command tree against testdata/graph.txt with SNAP
// comment handling and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := cli.NewRootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--input", "testdata/graph.txt", "--comment", "#"))

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestGolden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"stats", []string{"stats"}},
		{"bfs", []string{"bfs", "--start", "0"}},
		{"bfs_limit", []string{"bfs", "--start", "0", "--limit", "2"}},
		{"distances", []string{"distances", "--start", "3"}},
		{"path", []string{"path", "--start", "0", "--end", "4"}},
		{"path_none", []string{"path", "--start", "0", "--end", "5"}},
		{"topn", []string{"sample", "topn", "--n", "2", "--sorted"}},
		{"sample_connected", []string{"sample", "connected", "--start", "0", "--budget", "3"}},
	}
	gold := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, "", tc.args...)
			require.NoError(t, err)
			gold.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestStats_WarnsOnMalformedLines(t *testing.T) {
	_, stderr, err := run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, stderr, "skipping malformed line")
	assert.Contains(t, stderr, "skipping unparsable line")
}

func TestBFS_LogsVisitsAtDebug(t *testing.T) {
	_, stderr, err := run(t, "", "bfs", "--start", "0", "--max-depth", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=\"bfs visit\" node=0 hops=0")

	_, stderr, err = run(t, "", "bfs", "--start", "0")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "bfs visit")
}

func TestStrictFailsOnBadToken(t *testing.T) {
	_, _, err := run(t, "", "stats", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 10")
}

func TestMissingInput(t *testing.T) {
	root := cli.NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats", "--input", filepath.Join(t.TempDir(), "none.txt")})
	assert.Error(t, root.Execute())
}

func TestPath_Interactive(t *testing.T) {
	out, _, err := run(t, "x\n0\n4\n", "path", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, `not a node id: "x"`)
	assert.Contains(t, out, "Path 0 -> 4\n3 hops\n0 1 3 4\n")
}

func TestPath_InteractiveUnknownNode(t *testing.T) {
	_, _, err := run(t, "42\n42\n42\n", "path", "--interactive")
	assert.ErrorContains(t, err, "node not in graph")
}

func TestPath_NeedsEndpoints(t *testing.T) {
	_, _, err := run(t, "", "path", "--start", "1")
	assert.Error(t, err)
}

func TestSampleConnected_WritesInducedEdges(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sample.txt")
	out, _, err := run(t, "", "sample", "connected", "--start", "0", "--budget", "3", "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 4 edges to "+dest)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "0 1\n0 2\n1 0\n2 0\n", string(raw))
}

func TestSampleRandom_Seeded(t *testing.T) {
	a, _, err := run(t, "", "sample", "random", "--budget", "3", "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "sample", "random", "--budget", "3", "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, a, "3 nodes")
}

func TestConfigShow(t *testing.T) {
	out, _, err := run(t, "", "config", "show", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "input: testdata/graph.txt\n")
	assert.Contains(t, out, "level: debug\n")
	assert.Contains(t, out, "policy: symmetric\n")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "stats", "--log-level", "loud")
	assert.Error(t, err)
}

func TestGenerate_RoundTrip(t *testing.T) {
	out, _, err := run(t, "", "generate", "cycle", "--n", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n2 3\n3 0\n", out)

	dest := filepath.Join(t.TempDir(), "grid.txt")
	_, _, err = run(t, "", "generate", "grid", "--rows", "2", "--cols", "3", "--out", dest)
	require.NoError(t, err)

	root := cli.NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats", "--input", dest})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "source edges   7\n")
	assert.Contains(t, buf.String(), "components     1\n")
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, _, err := run(t, "", "generate", "torus")
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

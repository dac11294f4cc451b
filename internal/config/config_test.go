package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgegraph/edgelist"
	"github.com/katalvlaran/edgegraph/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edgegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("input: web.txt\n"), 0o644))
	chdir(t, dir)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "web.txt", cfg.Input)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"input: file.txt",
		"policy: directed",
		"comment: '#'",
		"log:",
		"  level: debug",
		"sample:",
		"  budget: 7",
		"  anchor: 3",
	}, "\n"))

	t.Setenv("EDGEGRAPH_SAMPLE_BUDGET", "9")
	t.Setenv("EDGEGRAPH_LOG_FORMAT", "json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("input", "", "")
	fs.Int("budget", 0, "")
	require.NoError(t, fs.Parse([]string{"--input", "flag.txt"}))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "flag.txt", cfg.Input, "flag beats file")
	assert.Equal(t, 9, cfg.Sample.Budget, "env beats file when flag unset")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "directed", cfg.Policy)
	assert.Equal(t, "#", cfg.Comment)
	assert.EqualValues(t, 3, cfg.Sample.Anchor)
}

func TestLoad_EnumsAreCaseInsensitive(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EDGEGRAPH_LOG_LEVEL", "DEBUG")
	t.Setenv("EDGEGRAPH_LOG_FORMAT", " Json")
	t.Setenv("EDGEGRAPH_POLICY", "Directed")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "directed", cfg.Policy)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorIs(t, err, config.ErrLoad)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "policy: sideways\nlog:\n  format: xml\n")

	_, err := config.Load(path, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Config.Policy")
	assert.Contains(t, err.Error(), "Config.Log.Format")
}

func TestValidate_NegativeBudget(t *testing.T) {
	cfg := config.Default()
	cfg.Sample.Budget = -1
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestMarshal(t *testing.T) {
	cfg := config.Default()
	cfg.Input = "g.txt"

	out, err := cfg.Marshal()
	require.NoError(t, err)

	var back config.Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg, back)
	assert.Contains(t, string(out), "policy: symmetric")
}

func TestReadOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "directed"
	cfg.Strict = true

	opts, err := cfg.ReadOptions(nil)
	require.NoError(t, err)

	g, err := edgelist.Read(strings.NewReader("1 2\n"), opts...)
	require.NoError(t, err)
	assert.True(t, g.Directed())

	_, err = edgelist.Read(strings.NewReader("1 x\n"), opts...)
	assert.ErrorIs(t, err, edgelist.ErrParse)
}

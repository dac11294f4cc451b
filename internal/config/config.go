// Package config loads edgegraph settings from, in increasing precedence,
// built-in defaults, an optional YAML file, EDGEGRAPH_* environment
// variables and command-line flags.
//
//	input: graph.txt
//	policy: symmetric        # or directed
//	strict: false
//	comment: "#"
//	log:
//	  level: info            # debug | info | warn | error
//	  format: text           # text | json
//	sample:
//	  budget: 100
//	  seed: 0                # 0 = process-wide randomness
//	  anchor: 0
//	output: ""
//
// Nested keys map to environment variables with "_" in place of ".",
// e.g. EDGEGRAPH_LOG_LEVEL or EDGEGRAPH_SAMPLE_BUDGET.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgegraph/edgelist"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "EDGEGRAPH"

// DefaultFile is looked up in the working directory when no explicit
// config path is given. A missing default file is not an error.
const DefaultFile = "edgegraph.yaml"

var (
	// ErrLoad wraps failures to read or decode the configuration sources.
	ErrLoad = errors.New("config: load failed")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the effective edgegraph configuration.
type Config struct {
	Input   string `mapstructure:"input" yaml:"input"`
	Policy  string `mapstructure:"policy" yaml:"policy" validate:"oneof=symmetric undirected directed"`
	Strict  bool   `mapstructure:"strict" yaml:"strict"`
	Comment string `mapstructure:"comment" yaml:"comment"`

	Log    Log    `mapstructure:"log" yaml:"log"`
	Sample Sample `mapstructure:"sample" yaml:"sample"`

	Output string `mapstructure:"output" yaml:"output"`
}

// Log selects the CLI logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// Sample holds defaults for the sample subcommands.
type Sample struct {
	Budget int    `mapstructure:"budget" yaml:"budget" validate:"gte=0"`
	Seed   int64  `mapstructure:"seed" yaml:"seed"`
	Anchor uint64 `mapstructure:"anchor" yaml:"anchor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Policy: "symmetric",
		Log:    Log{Level: "info", Format: "text"},
		Sample: Sample{Budget: 100},
	}
}

// FlagNames maps configuration keys to the flags that override them.
// Keys whose flag is not registered on the FlagSet are left alone.
var FlagNames = map[string]string{
	"input":         "input",
	"policy":        "policy",
	"strict":        "strict",
	"comment":       "comment",
	"log.level":     "log-level",
	"log.format":    "log-format",
	"sample.budget": "budget",
	"sample.seed":   "seed",
	"sample.anchor": "anchor",
	"output":        "out",
}

var validate = validator.New()

// Load resolves the configuration. path names an explicit YAML file, which
// must exist; when empty, DefaultFile is tried in the working directory.
// fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range FlagNames {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("%w: bind %s: %w", ErrLoad, name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("%w: %w", ErrLoad, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("input", d.Input)
	v.SetDefault("policy", d.Policy)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("comment", d.Comment)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("sample.budget", d.Sample.Budget)
	v.SetDefault("sample.seed", d.Sample.Seed)
	v.SetDefault("sample.anchor", d.Sample.Anchor)
	v.SetDefault("output", d.Output)
}

// normalize lower-cases the enumerated settings so that DEBUG or JSON from
// the environment pass the oneof checks the same way the parsers accept them.
func (c *Config) normalize() {
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate checks the struct tags. Every failing field is listed.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ReadOptions translates the loader settings into edgelist options.
func (c *Config) ReadOptions(logger *slog.Logger) ([]edgelist.Option, error) {
	p, err := edgelist.ParsePolicy(c.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	opts := []edgelist.Option{
		edgelist.WithPolicy(p),
		edgelist.WithCommentPrefix(c.Comment),
		edgelist.WithLogger(logger),
	}
	if c.Strict {
		opts = append(opts, edgelist.WithStrict())
	}

	return opts, nil
}

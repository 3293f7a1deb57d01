package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Config holds every tunable a command may read. Values come from
// defaultConfig, then the --config file, then explicitly set flags.
type Config struct {
	Directed          bool   `toml:"directed"`
	Format            string `toml:"format"`
	Header            bool   `toml:"header"`
	Source            uint64 `toml:"source"`
	K                 int    `toml:"k"`
	HammingDistance   int    `toml:"hamming_distance"`
	StackBudgetMB     int    `toml:"stack_budget_mb"`
	RecursiveLabeling bool   `toml:"recursive_labeling"`
	Top               int    `toml:"top"`
}

const (
	formatEdges     = "edges"
	formatAdjacency = "adjacency"
)

func defaultConfig() Config {
	return Config{
		Format:          formatEdges,
		Source:          1,
		K:               4,
		HammingDistance: 2,
		StackBudgetMB:   1024,
		Top:             5,
	}
}

// loadConfig decodes the TOML file at path over cfg. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func loadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// validate rejects values no command can work with.
func (c Config) validate() error {
	switch c.Format {
	case formatEdges, formatAdjacency:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, formatEdges, formatAdjacency)
	}
	if c.StackBudgetMB < 1 {
		return fmt.Errorf("stack budget must be at least 1 MB, got %d", c.StackBudgetMB)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must be non-negative, got %d", c.Top)
	}
	return nil
}

// stackBudget returns the recursive labeling budget in bytes.
func (c Config) stackBudget() int {
	return c.StackBudgetMB << 20
}

// flagValues mirrors Config for flag binding; only flags the user set are
// copied over the file configuration.
type flagValues struct {
	configPath string
	verbose    bool
	Config
}

func (f *flagValues) bindPersistent(cmd *cobra.Command) {
	d := defaultConfig()
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML file with default settings")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&f.Directed, "directed", d.Directed, "treat edges as one-way")
	pf.StringVar(&f.Format, "format", d.Format, "input format: edges or adjacency")
	pf.BoolVar(&f.Header, "header", d.Header, "first line is a \"n [m]\" header")
}

// resolve merges defaults, the config file and changed flags for cmd.
func (f *flagValues) resolve(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()
	if f.configPath != "" {
		if err := loadConfig(f.configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("directed", func() { cfg.Directed = f.Directed })
	set("format", func() { cfg.Format = f.Format })
	set("header", func() { cfg.Header = f.Header })
	set("source", func() { cfg.Source = f.Source })
	set("k", func() { cfg.K = f.K })
	set("distance", func() { cfg.HammingDistance = f.HammingDistance })
	set("stack-budget", func() { cfg.StackBudgetMB = f.StackBudgetMB })
	set("recursive", func() { cfg.RecursiveLabeling = f.RecursiveLabeling })
	set("top", func() { cfg.Top = f.Top })

	return cfg, cfg.validate()
}

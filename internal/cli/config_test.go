package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "graphkit.toml", `
directed = true
source = 7
k = 3
hamming_distance = 1
stack_budget_mb = 64
recursive_labeling = true
top = 2
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))
	assert.True(t, cfg.Directed)
	assert.Equal(t, uint64(7), cfg.Source)
	assert.Equal(t, 3, cfg.K)
	assert.Equal(t, 1, cfg.HammingDistance)
	assert.Equal(t, 64<<20, cfg.stackBudget())
	assert.True(t, cfg.RecursiveLabeling)
	assert.Equal(t, 2, cfg.Top)
	assert.Equal(t, formatEdges, cfg.Format, "untouched keys keep defaults")
}

func TestLoadConfig_Errors(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, loadConfig(filepath.Join(t.TempDir(), "none.toml"), &cfg))

	path := writeFile(t, "typo.toml", "drected = true\n")
	assert.ErrorContains(t, loadConfig(path, &cfg), `unknown key "drected"`)

	path = writeFile(t, "bad.toml", "k = \"four\"\n")
	assert.Error(t, loadConfig(path, &cfg))
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validate())

	cfg.Format = "xml"
	assert.ErrorContains(t, cfg.validate(), "unknown format")

	cfg = defaultConfig()
	cfg.StackBudgetMB = 0
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Top = -1
	assert.Error(t, cfg.validate())
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	graph := writeFile(t, "scc.txt", "1 2\n2 3\n3 1\n3 4\n")
	conf := writeFile(t, "graphkit.toml", "directed = true\ntop = 1\n")

	out, _, err := run(t, "", "scc", "--config", conf, graph)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 1 sizes")

	out, _, err = run(t, "", "scc", "--config", conf, "--top", "2", graph)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 2 sizes")

	_, _, err = run(t, "", "scc", "--config", conf, "--directed=false", graph)
	assert.ErrorContains(t, err, "needs --directed")
}

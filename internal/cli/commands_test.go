package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/dfs"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const diamondDAG = "1 2\n1 3\n2 4\n3 4\n"

func TestToposort(t *testing.T) {
	path := writeFile(t, "dag.txt", diamondDAG)

	out, _, err := run(t, "", "toposort", "--directed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 2 3 4")
	assert.Contains(t, out, "4 vertices · 4 edges · directed")

	out, _, err = run(t, "", "toposort", "--directed", "--strategy", "dfs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 3 2 4")

	out, _, err = run(t, "", "toposort", "--directed", "--strategy", "dfs", "--recursive", "--stack-budget", "8", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 3 2 4")
}

func TestToposort_Errors(t *testing.T) {
	path := writeFile(t, "dag.txt", diamondDAG)
	_, _, err := run(t, "", "toposort", path)
	assert.ErrorContains(t, err, "needs --directed")

	cyclic := writeFile(t, "cyclic.txt", "1 2\n2 3\n3 1\n")
	_, _, err = run(t, "", "toposort", "--directed", cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	_, _, err = run(t, "", "toposort", "--directed", "--strategy", "dfs", cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, _, err = run(t, "", "toposort", "--directed", "--strategy", "bogus", path)
	assert.ErrorContains(t, err, "unknown strategy")

	_, _, err = run(t, "", "toposort", "--directed", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "open input")
}

func TestSCC(t *testing.T) {
	path := writeFile(t, "scc.txt", "1 2\n2 3\n3 1\n3 4\n4 5\n5 4\n5 6\n")
	out, _, err := run(t, "", "scc", "--directed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Components")
	assert.Contains(t, out, "3 2 1")

	out, _, err = run(t, "", "scc", "--directed", "--top", "1", "--recursive", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 1 sizes")
}

func TestDijkstra(t *testing.T) {
	path := writeFile(t, "roads.txt", "1 2 1\n2 3 2\n1 3 4\n5 6 1\n")
	for _, method := range []string{"naive", "heap"} {
		out, _, err := run(t, "", "dijkstra", "--method", method, "--targets", "3,5", "--paths", path)
		require.NoError(t, err, method)
		assert.Contains(t, out, "3", method)
		assert.Contains(t, out, "1 → 2 → 3", method)
		assert.Contains(t, out, "unreachable", method)
		assert.Contains(t, out, "2 vertices unreachable", method)
	}

	_, _, err := run(t, "", "dijkstra", "--method", "fib", path)
	assert.ErrorContains(t, err, "unknown method")
	_, _, err = run(t, "", "dijkstra", "--targets", "1,x", path)
	assert.ErrorContains(t, err, "invalid target")
}

func TestDijkstra_AdjacencyFromStdin(t *testing.T) {
	in := "1\t2,1\t3,4\n2\t1,1\t3,2\n3\t1,4\t2,2\n"
	out, _, err := run(t, in, "dijkstra", "--format", "adjacency", "--source", "1", "--targets", "3", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest distances from 1")
	assert.NotContains(t, out, "unreachable")
}

func TestMST(t *testing.T) {
	path := writeFile(t, "square.txt", "4 4\n1 2 1\n2 3 2\n3 4 3\n4 1 4\n")
	for _, method := range []string{"kruskal", "prim"} {
		out, _, err := run(t, "", "mst", "--header", "--method", method, "--edges", path)
		require.NoError(t, err, method)
		assert.Contains(t, out, "Total", method)
		assert.Contains(t, out, "6", method)
	}
	_, _, err := run(t, "", "mst", "--header", "--method", "boruvka", path)
	assert.ErrorContains(t, err, "unknown method")
}

func TestCluster(t *testing.T) {
	path := writeFile(t, "clustering.txt", "1 2 1\n3 4 2\n2 3 3\n1 4 5\n")
	out, _, err := run(t, "", "cluster", "--k", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Spacing")
	assert.Contains(t, out, "3")

	out, _, err = run(t, "", "cluster", "--k", "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "none (single cluster)")
}

func TestHamming(t *testing.T) {
	path := writeFile(t, "labels.txt", "4 3\n0 0 0\n0 0 1\n0 1 1\n1 1 1\n")
	out, _, err := run(t, "", "hamming", "--distance", "1", path)
	require.NoError(t, err)
	assert.Regexp(t, `Clusters\s+1`, out)

	out, _, err = run(t, "", "hamming", "--distance", "0", path)
	require.NoError(t, err)
	assert.Regexp(t, `Clusters\s+4`, out)

	bad := writeFile(t, "bad.txt", "2 3\n0 0 1\n")
	_, _, err = run(t, "", "hamming", bad)
	assert.ErrorContains(t, err, "header declares 2 labels")
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "", "generate", "--shape", "path", "--n", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2 1\n2 3 1\n3 4 1\n", out)

	out, _, err = run(t, "", "generate", "--shape", "grid", "--rows", "2", "--cols", "2", "--offset", "0", "--stride", "10")
	require.NoError(t, err)
	assert.Equal(t, "0 10 1\n0 20 1\n10 30 1\n20 30 1\n", out)

	_, _, err = run(t, "", "generate", "--shape", "wheel")
	assert.ErrorContains(t, err, "unknown shape")
	_, _, err = run(t, "", "generate", "--min-weight", "5", "--max-weight", "2")
	assert.ErrorContains(t, err, "weights need")
	_, _, err = run(t, "", "generate", "--shape", "random", "--p", "2")
	assert.Error(t, err)
}

// TestGenerate_FeedsToposort pipes a generated DAG into toposort.
func TestGenerate_FeedsToposort(t *testing.T) {
	dag, _, err := run(t, "", "generate", "--shape", "dag", "--n", "50", "--p", "0.1", "--seed", "3", "--directed")
	require.NoError(t, err)

	out, _, err := run(t, dag, "toposort", "--directed", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Topological order")
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeFile(t, "dag.txt", diamondDAG)
	_, errOut, err := run(t, "", "toposort", "--directed", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "graph loaded")
	assert.Contains(t, errOut, "ordered vertices")
	assert.Contains(t, errOut, "step=toposort")
	assert.Contains(t, errOut, "strategy=kahn")
	assert.Contains(t, errOut, "step=load")

	_, errOut, err = run(t, "", "toposort", "--directed", path)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "graph loaded")
}

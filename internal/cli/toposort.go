package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

const (
	strategyKahn = "kahn"
	strategyDFS  = "dfs"
)

func (a *app) toposortCommand() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "toposort <file>",
		Short: "Print a topological order of a directed acyclic graph",
		Long: `Print a topological order of a directed acyclic graph.

The kahn strategy repeatedly removes sources, lowest id first. The dfs
strategy prints the reverse postorder of a depth-first search; with
--recursive it runs a recursive search on an enlarged stack bounded by
--stack-budget.`,
		Example: `  graphkit toposort --directed deps.txt
  graphkit toposort --directed --strategy dfs --recursive deps.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			if !g.Directed() {
				return fmt.Errorf("toposort needs --directed")
			}

			prog := newProgress(loggerFromContext(cmd.Context()), "toposort")
			var order []core.VertexID
			switch strategy {
			case strategyKahn:
				order, err = dfs.TopologicalSort(g)
			case strategyDFS:
				order, err = reversePostorder(cmd, g, cfg)
			default:
				return fmt.Errorf("unknown strategy %q (want %s or %s)", strategy, strategyKahn, strategyDFS)
			}
			if err != nil {
				return err
			}
			prog.done("ordered vertices", "strategy", strategy, "vertices", len(order))

			p := printer{cmd.OutOrStdout()}
			p.success("Topological order (%s)", strategy)
			p.stats(g.VertexCount(), g.EdgeCount(), true)
			p.keyValue("Order", joinIDs(order))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", strategyKahn, "kahn or dfs")
	a.bindLabelingFlags(cmd)

	return cmd
}

// reversePostorder rejects cyclic graphs, then labels g by finish time.
func reversePostorder(cmd *cobra.Command, g *core.Graph, cfg Config) ([]core.VertexID, error) {
	cyclic, err := dfs.HasCycle(g)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, fmt.Errorf("%w: reverse postorder is not a topological order", dfs.ErrCycleDetected)
	}
	opts := []dfs.Option{dfs.WithContext(cmd.Context())}
	if cfg.RecursiveLabeling {
		opts = append(opts, dfs.WithRecursive(), dfs.WithStackBudget(cfg.stackBudget()))
	}
	lab, err := dfs.ReversePostorder(g, opts...)
	if err != nil {
		return nil, err
	}
	return lab.Order, nil
}

// bindLabelingFlags adds the recursion knobs shared by toposort and scc.
func (a *app) bindLabelingFlags(cmd *cobra.Command) {
	d := defaultConfig()
	cmd.Flags().BoolVar(&a.flags.RecursiveLabeling, "recursive", d.RecursiveLabeling, "label with a recursive search on an enlarged stack")
	cmd.Flags().IntVar(&a.flags.StackBudgetMB, "stack-budget", d.StackBudgetMB, "stack budget in MB for --recursive")
}

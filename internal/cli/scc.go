package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/scc"
)

func (a *app) sccCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scc <file>",
		Short: "Count strongly connected components and list the largest",
		Example: `  graphkit scc --directed --top 5 SCC.txt
  graphkit scc --directed --recursive --stack-budget 512 SCC.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			if !g.Directed() {
				return fmt.Errorf("scc needs --directed")
			}

			var opts []scc.Option
			if cfg.RecursiveLabeling {
				opts = append(opts, scc.WithRecursiveLabeling(), scc.WithStackBudget(cfg.stackBudget()))
			}
			prog := newProgress(loggerFromContext(cmd.Context()), "kosaraju")
			res, err := scc.Kosaraju(g, opts...)
			if err != nil {
				return err
			}
			prog.done("finished", "components", res.Count())

			sizes := make([]int, 0, cfg.Top)
			for _, cs := range res.Largest(cfg.Top) {
				sizes = append(sizes, cs.Size)
			}
			p := printer{cmd.OutOrStdout()}
			p.success("Strongly connected components")
			p.stats(g.VertexCount(), g.EdgeCount(), true)
			p.keyNumber("Components", int64(res.Count()))
			p.keyValue(fmt.Sprintf("Top %d sizes", cfg.Top), joinIDs(sizes))
			return nil
		},
	}

	cmd.Flags().IntVar(&a.flags.Top, "top", defaultConfig().Top, "number of largest components to list")
	a.bindLabelingFlags(cmd)

	return cmd
}

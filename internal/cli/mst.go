package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

func (a *app) mstCommand() *cobra.Command {
	var (
		method string
		root   uint64
		edges  bool
	)

	cmd := &cobra.Command{
		Use:   "mst <file>",
		Short: "Compute the cost of a minimum spanning tree",
		Example: `  graphkit mst --header edges.txt
  graphkit mst --method prim --root 1 --edges edges.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method)}
			if cmd.Flags().Changed("root") {
				opts = append(opts, prim_kruskal.WithRoot(core.VertexID(root)))
			}
			prog := newProgress(loggerFromContext(cmd.Context()), "mst")
			tree, err := prim_kruskal.Compute(g, opts...)
			if err != nil {
				return err
			}
			prog.done("finished", "method", method)

			p := printer{cmd.OutOrStdout()}
			p.success("Minimum spanning tree (%s)", method)
			p.stats(g.VertexCount(), g.EdgeCount(), g.Directed())
			p.keyNumber("Edges", int64(len(tree.Edges)))
			p.keyNumber("Total", tree.Total)
			if edges {
				for _, e := range tree.Edges {
					p.keyValue(fmt.Sprintf("%d-%d", e.From, e.To), fmt.Sprint(e.Weight))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "prim or kruskal")
	cmd.Flags().Uint64Var(&root, "root", 0, "Prim start vertex (lowest id if unset)")
	cmd.Flags().BoolVar(&edges, "edges", false, "list the tree edges")

	return cmd
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
)

func (a *app) dijkstraCommand() *cobra.Command {
	var (
		method  string
		targets string
		paths   bool
	)

	cmd := &cobra.Command{
		Use:   "dijkstra <file>",
		Short: "Print shortest distances from a source vertex",
		Long: `Print shortest distances from --source.

Without --targets every vertex is listed. Vertices the source cannot reach
are reported as unreachable rather than with a sentinel distance.`,
		Example: `  graphkit dijkstra --format adjacency --source 1 --targets 7,37,59 dijkstraData.txt
  graphkit dijkstra --directed --method heap --paths roads.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			m, err := dijkstra.ParseMethod(method)
			if err != nil {
				return err
			}
			want, err := parseTargets(targets)
			if err != nil {
				return err
			}
			if want == nil {
				want = g.Vertices()
			}

			opts := []dijkstra.Option{dijkstra.Source(core.VertexID(cfg.Source)), dijkstra.WithMethod(m)}
			if paths {
				opts = append(opts, dijkstra.WithReturnPath())
			}
			prog := newProgress(loggerFromContext(cmd.Context()), "dijkstra")
			res, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}
			prog.done("finished", "method", m, "source", cfg.Source)

			p := printer{cmd.OutOrStdout()}
			p.success("Shortest distances from %d", cfg.Source)
			p.stats(g.VertexCount(), g.EdgeCount(), g.Directed())
			for _, v := range want {
				if !g.HasVertex(v) {
					p.warning("vertex %d is not in the graph", v)
					continue
				}
				d, ok := res.Distance(v)
				if !ok {
					p.keyValue(fmt.Sprint(v), "unreachable")
					continue
				}
				p.keyNumber(fmt.Sprint(v), d)
				if paths {
					path, err := res.Path(v)
					if err != nil {
						return err
					}
					p.path(toStrings(path))
				}
			}
			if n := len(res.Unreachable()); n > 0 {
				p.warning("%d vertices unreachable", n)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&a.flags.Source, "source", defaultConfig().Source, "source vertex")
	cmd.Flags().StringVar(&method, "method", dijkstra.MethodNaive.String(), "frontier strategy: naive or heap")
	cmd.Flags().StringVar(&targets, "targets", "", "comma-separated vertices to report (all if empty)")
	cmd.Flags().BoolVar(&paths, "paths", false, "print the shortest path to every reported vertex")

	return cmd
}

// parseTargets parses "7,37,59"; an empty string yields nil.
func parseTargets(s string) ([]core.VertexID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]core.VertexID, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", part, err)
		}
		out = append(out, core.VertexID(v))
	}
	return out, nil
}

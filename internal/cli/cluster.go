package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/cluster"
	"github.com/katalvlaran/graphkit/loader"
)

func (a *app) clusterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster <file>",
		Short: "Max-spacing k-clustering of a weighted graph",
		Example: `  graphkit cluster --header --k 4 clustering1.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()), "k-clustering")
			res, err := cluster.KClustering(g, cfg.K)
			if err != nil {
				return err
			}
			prog.done("finished", "k", cfg.K, "merged", len(res.Accepted))

			p := printer{cmd.OutOrStdout()}
			p.success("%d-clustering", cfg.K)
			p.stats(g.VertexCount(), g.EdgeCount(), g.Directed())
			p.keyNumber("Clusters", int64(res.Count))
			if res.HasSpacing {
				p.keyNumber("Spacing", res.Spacing)
			} else {
				p.keyValue("Spacing", "none (single cluster)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&a.flags.K, "k", defaultConfig().K, "number of clusters")

	return cmd
}

func (a *app) hammingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamming <file>",
		Short: "Cluster bit labels that differ in at most --distance bits",
		Long: `Cluster bit labels that differ in at most --distance bits.

The input starts with an "n width" header followed by n labels written as
"0 1 1" or "011". The format flags do not apply.`,
		Example: `  graphkit hamming --distance 2 clustering_big.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.flags.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			rc, err := openInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer rc.Close()
			labels, width, err := loader.ReadLabels(rc)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			logger.Debug("labels loaded", "count", len(labels), "width", width)

			prog := newProgress(logger, "hamming")
			res, err := cluster.Hamming(labels, width, cluster.WithMaxDistance(cfg.HammingDistance))
			if err != nil {
				return err
			}
			prog.done("finished", "distance", cfg.HammingDistance, "clusters", res.Count)

			p := printer{cmd.OutOrStdout()}
			p.success("Hamming clustering (distance ≤ %d)", cfg.HammingDistance)
			p.keyNumber("Labels", int64(len(labels)))
			p.keyNumber("Width", int64(width))
			p.keyNumber("Clusters", int64(res.Count))
			return nil
		},
	}

	cmd.Flags().IntVar(&a.flags.HammingDistance, "distance", defaultConfig().HammingDistance, "maximum Hamming distance inside a cluster")

	return cmd
}

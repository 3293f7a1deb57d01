package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/core"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by main with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries the flag values shared by every subcommand.
type app struct {
	flags flagValues
}

// NewRootCommand builds the graphkit command tree. Output goes to the
// command's out writer and logs to its err writer, so tests can capture both.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "graphkit",
		Short:        "graphkit runs classic graph algorithms on edge-list files",
		Long:         `graphkit loads a graph from an edge list or adjacency file and runs topological sorting, strongly connected components, shortest paths, spanning trees or clustering on it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if a.flags.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphkit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	a.flags.bindPersistent(root)

	root.AddCommand(a.toposortCommand())
	root.AddCommand(a.sccCommand())
	root.AddCommand(a.dijkstraCommand())
	root.AddCommand(a.mstCommand())
	root.AddCommand(a.clusterCommand())
	root.AddCommand(a.hammingCommand())
	root.AddCommand(a.generateCommand())

	return root
}

// Execute runs the graphkit CLI with ctx, which main cancels on SIGINT.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load resolves the configuration and reads the graph named by args[0].
func (a *app) load(cmd *cobra.Command, args []string) (Config, *core.Graph, error) {
	cfg, err := a.flags.resolve(cmd)
	if err != nil {
		return cfg, nil, err
	}
	logger := loggerFromContext(cmd.Context())

	prog := newProgress(logger, "load")
	g, err := readGraph(args[0], cmd.InOrStdin(), cfg)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "directed", g.Directed())
	prog.done("loaded", "input", args[0])

	return cfg, g, nil
}

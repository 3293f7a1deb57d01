package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/loader"
)

// openInput opens path for reading; "-" is stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readGraph loads the graph at path in the configured format.
func readGraph(path string, stdin io.Reader, cfg Config) (*core.Graph, error) {
	rc, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	opts := []loader.Option{loader.WithDirected(cfg.Directed)}
	if cfg.Header {
		opts = append(opts, loader.WithHeader())
	}

	var g *core.Graph
	switch cfg.Format {
	case formatAdjacency:
		g, err = loader.ReadAdjacency(rc, opts...)
	default:
		g, err = loader.ReadEdgeList(rc, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

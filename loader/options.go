package loader

import "github.com/katalvlaran/graphkit/core"

// Options configures ReadEdgeList and ReadAdjacency.
type Options struct {
	// Graph holds the core options used for the resulting graph.
	Graph []core.GraphOption

	// Header consumes a leading "n" or "n m" line.
	Header bool

	// Base is the first vertex id a header vertex count refers to.
	Base core.VertexID
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an undirected, header-less configuration with
// 1-based header vertex numbering.
func DefaultOptions() Options {
	return Options{Base: 1}
}

// WithGraphOptions appends core options (direction, loops, multi-edges).
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.Graph = append(o.Graph, opts...) }
}

// WithDirected is shorthand for WithGraphOptions(core.WithDirected(d)).
func WithDirected(d bool) Option {
	return WithGraphOptions(core.WithDirected(d))
}

// WithHeader marks the first content line as a "n [m]" header.
func WithHeader() Option {
	return func(o *Options) { o.Header = true }
}

// WithBase sets the id of the first header-declared vertex.
func WithBase(base core.VertexID) Option {
	return func(o *Options) { o.Base = base }
}

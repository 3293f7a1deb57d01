// Package dijkstra defines core types and configuration options
// for the shortest-path computation.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that the Source option was not supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOverflow indicates that a shortest path could exceed the int64 range.
	ErrOverflow = errors.New("dijkstra: path length may overflow int64")

	// ErrDisconnected indicates WithRequireConnected was set and the source
	// does not reach every vertex.
	ErrDisconnected = errors.New("dijkstra: source does not reach every vertex")

	// ErrNoPaths indicates Path was called on a Result computed without
	// WithReturnPath.
	ErrNoPaths = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates a Path request for an unreachable vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Method selects the frontier strategy.
type Method int

const (
	// MethodNaive scans the whole frontier every round.
	MethodNaive Method = iota

	// MethodHeap uses a binary heap with lazy decrease-key.
	MethodHeap
)

// String returns the flag spelling of m.
func (m Method) String() string {
	switch m {
	case MethodNaive:
		return "naive"
	case MethodHeap:
		return "heap"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "naive" and "heap" to their Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "naive", "":
		return MethodNaive, nil
	case "heap":
		return MethodHeap, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown method %q", s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be present in the graph).
// Method           – frontier strategy, MethodNaive by default.
// ReturnPath       – if true, Result.Prev is populated.
// RequireConnected – if true, fail with ErrDisconnected unless every vertex is reachable.
type Options struct {
	Source           core.VertexID
	Method           Method
	ReturnPath       bool
	RequireConnected bool

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be supplied.
func Source(v core.VertexID) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithMethod selects the frontier strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithRequireConnected makes an unreachable vertex an error.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// DefaultOptions returns an Options struct with no source, the naive
// method, no predecessor map and unreachable vertices tolerated.
func DefaultOptions() Options {
	return Options{Method: MethodNaive}
}

// Result holds the distances from Source.
type Result struct {
	// Source is the vertex distances are measured from.
	Source core.VertexID

	// Dist holds the shortest distance of every reachable vertex. A vertex
	// missing from Dist is unreachable.
	Dist map[core.VertexID]int64

	// Prev maps every reachable vertex except Source to its predecessor on
	// one shortest path. Nil unless WithReturnPath was given.
	Prev map[core.VertexID]core.VertexID

	vertices []core.VertexID
}

// Distance returns the shortest distance to v and whether v is reachable.
func (r *Result) Distance(v core.VertexID) (int64, bool) {
	d, ok := r.Dist[v]

	return d, ok
}

// Unreachable lists, ascending, the vertices the source cannot reach.
func (r *Result) Unreachable() []core.VertexID {
	var out []core.VertexID
	for _, v := range r.vertices {
		if _, ok := r.Dist[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// Path reconstructs the shortest path from Source to v, both included.
func (r *Result) Path(v core.VertexID) ([]core.VertexID, error) {
	if r.Prev == nil {
		return nil, ErrNoPaths
	}
	if _, ok := r.Dist[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}
	path := []core.VertexID{v}
	for cur := v; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same ID, and distinct
// indices must yield distinct IDs.
type IDFn func(idx int) core.VertexID

// DenseIDFn maps idx to itself: 0→0, 42→42.
// Complexity: O(1). Never panics.
func DenseIDFn(idx int) core.VertexID {
	return core.VertexID(idx)
}

// StrideIDFn returns an IDFn spacing identifiers k apart (0, k, 2k, …).
// Useful for exercising algorithms on sparse identifier spaces.
// Panics if k < 1.
func StrideIDFn(k uint64) IDFn {
	if k < 1 {
		panic(fmt.Sprintf("StrideIDFn: k must be ≥ 1, got %d", k))
	}
	return func(idx int) core.VertexID {
		return core.VertexID(uint64(idx) * k)
	}
}

// OffsetIDFn returns an IDFn starting at base (base, base+1, …).
// OffsetIDFn(1) matches the 1-based numbering of the classic course datasets.
func OffsetIDFn(base core.VertexID) IDFn {
	return func(idx int) core.VertexID {
		return base + core.VertexID(idx)
	}
}

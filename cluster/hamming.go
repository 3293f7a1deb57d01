package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/dsu"
)

// MaxMasks bounds the number of flip masks Hamming will enumerate.
const MaxMasks = 1 << 22

// HammingOptions configures Hamming.
type HammingOptions struct {
	// MaxDistance merges labels differing in at most this many bits.
	MaxDistance int

	err error
}

// HammingOption mutates HammingOptions.
type HammingOption func(*HammingOptions)

// WithMaxDistance sets the merge radius d; d < 0 → ErrBadDistance.
func WithMaxDistance(d int) HammingOption {
	return func(o *HammingOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// DefaultHammingOptions merges labels at distance ≤ 2.
func DefaultHammingOptions() HammingOptions {
	return HammingOptions{MaxDistance: 2}
}

// HammingResult is the outcome of Hamming.
type HammingResult struct {
	// Component holds the cluster of every input node, 0..Count-1, numbered
	// in order of first appearance.
	Component []int

	// Count is the number of clusters.
	Count int

	// Sizes holds the node count of every cluster, indexed by cluster.
	Sizes []int
}

// Masks returns every width-bit mask with at most d bits set, ordered by
// popcount then value; the zero mask comes first. The result is checked to
// hold Σ C(width, i), i ≤ d, distinct values.
//
// Errors: ErrBadWidth, ErrBadDistance, ErrTooManyMasks.
func Masks(width, d int) ([]Label, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDistance, d)
	}
	if d > width {
		d = width
	}

	// 1. Expected size, refusing before any allocation blows up
	want, c := 0, 1 // c = C(width, i)
	for i := 0; i <= d; i++ {
		if i > 0 {
			c = c * (width - i + 1) / i
		}
		want += c
		if c > MaxMasks || want > MaxMasks {
			return nil, fmt.Errorf("%w: width %d, distance %d", ErrTooManyMasks, width, d)
		}
	}

	// 2. Enumerate each popcount class with an index combination
	masks := make([]Label, 0, want)
	for i := 0; i <= d; i++ {
		pos := make([]int, i)
		for j := range pos {
			pos[j] = j
		}
		for {
			var m Label
			for _, p := range pos {
				m |= 1 << uint(p)
			}
			masks = append(masks, m)

			// advance to the next combination in lexicographic order
			j := i - 1
			for j >= 0 && pos[j] == width-i+j {
				j--
			}
			if j < 0 {
				break
			}
			pos[j]++
			for k := j + 1; k < i; k++ {
				pos[k] = pos[k-1] + 1
			}
		}
	}
	sort.SliceStable(masks, func(a, b int) bool {
		ca, cb := Distance(masks[a], 0), Distance(masks[b], 0)
		if ca != cb {
			return ca < cb
		}
		return masks[a] < masks[b]
	})

	// 3. Verify: right count, all distinct
	seen := make(map[Label]struct{}, len(masks))
	for _, m := range masks {
		seen[m] = struct{}{}
	}
	if len(masks) != want || len(seen) != want {
		return nil, fmt.Errorf("cluster: mask enumeration produced %d (%d distinct), want %d",
			len(masks), len(seen), want)
	}

	return masks, nil
}

// Hamming clusters nodes 0..len(labels)-1 so that nodes whose labels differ
// in at most MaxDistance bits end up together, transitively.
//
// Steps:
//  1. Validate width and labels; enumerate flip masks.
//  2. Group node indices by label.
//  3. For each distinct label ascending, with leader = its first node:
//     union the leader with its own group once, then for every non-zero
//     mask union the leader with every node labelled label ^ mask.
//
// Complexity: O(n + distinct × masks × α(n)).
func Hamming(labels []Label, width int, opts ...HammingOption) (*HammingResult, error) {
	// 1. Validate
	o := DefaultHammingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	masks, err := Masks(width, o.MaxDistance)
	if err != nil {
		return nil, err
	}
	if width < 64 {
		limit := Label(1) << uint(width)
		for i, l := range labels {
			if l >= limit {
				return nil, fmt.Errorf("%w: node %d label %b, width %d", ErrLabelTooWide, i, uint64(l), width)
			}
		}
	}

	// 2. Group by label
	groups := make(map[Label][]int, len(labels))
	for i, l := range labels {
		groups[l] = append(groups[l], i)
	}
	keys := make([]Label, 0, len(groups))
	for l := range groups {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	// 3. Leader unions
	forest := dsu.New(len(labels))
	for _, key := range keys {
		own := groups[key]
		leader := own[0]
		for _, idx := range own[1:] {
			forest.Union(leader, idx)
		}
		for _, m := range masks[1:] {
			for _, idx := range groups[key^m] {
				forest.Union(leader, idx)
			}
		}
	}

	return &HammingResult{
		Component: forest.Labels(),
		Count:     forest.Count(),
		Sizes:     forest.Sizes(),
	}, nil
}

package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/cluster"
	"github.com/katalvlaran/graphkit/dsu"
)

func parse(t *testing.T, rows ...string) []cluster.Label {
	t.Helper()
	out := make([]cluster.Label, len(rows))
	for i, s := range rows {
		l, _, err := cluster.ParseLabel(s)
		require.NoError(t, err)
		out[i] = l
	}
	return out
}

func TestMasks_Count(t *testing.T) {
	masks, err := cluster.Masks(24, 2)
	require.NoError(t, err)
	assert.Len(t, masks, 1+24+276)
	assert.Equal(t, cluster.Label(0), masks[0])
	for _, m := range masks {
		assert.LessOrEqual(t, cluster.Distance(m, 0), 2)
	}

	masks, err = cluster.Masks(3, 5)
	require.NoError(t, err)
	assert.Len(t, masks, 8, "distance above width covers every mask")

	masks, err = cluster.Masks(64, 1)
	require.NoError(t, err)
	assert.Len(t, masks, 65)
}

func TestMasks_Errors(t *testing.T) {
	_, err := cluster.Masks(0, 1)
	assert.ErrorIs(t, err, cluster.ErrBadWidth)
	_, err = cluster.Masks(65, 1)
	assert.ErrorIs(t, err, cluster.ErrBadWidth)
	_, err = cluster.Masks(8, -1)
	assert.ErrorIs(t, err, cluster.ErrBadDistance)
	_, err = cluster.Masks(64, 10)
	assert.ErrorIs(t, err, cluster.ErrTooManyMasks)
}

func TestParseLabel(t *testing.T) {
	l, w, err := cluster.ParseLabel("0 1 1")
	require.NoError(t, err)
	assert.Equal(t, cluster.Label(3), l)
	assert.Equal(t, 3, w)
	assert.Equal(t, "011", l.Format(w))

	l, w, err = cluster.ParseLabel("110")
	require.NoError(t, err)
	assert.Equal(t, cluster.Label(6), l)
	assert.Equal(t, 3, w)

	_, _, err = cluster.ParseLabel("0 2 1")
	assert.Error(t, err)
	_, _, err = cluster.ParseLabel("   ")
	assert.ErrorIs(t, err, cluster.ErrBadWidth)
}

func TestHamming_TransitiveChain(t *testing.T) {
	labels := parse(t, "000", "001", "011", "111", "110")
	res, err := cluster.Hamming(labels, 3, cluster.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, []int{5}, res.Sizes)

	// the default radius of 2 reaches the same single cluster
	res, err = cluster.Hamming(labels, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, []int{5}, res.Sizes)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, res.Component)
}

func TestHamming_DuplicatesAndDistance(t *testing.T) {
	// 0000 twice, 0011 at distance 2, 1111 at distance 2 from 0011
	labels := parse(t, "0000", "0000", "0011", "1111", "1000")
	res, err := cluster.Hamming(labels, 4, cluster.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count, "only identical labels merge at distance 0")
	assert.Equal(t, res.Component[0], res.Component[1])

	res, err = cluster.Hamming(labels, 4, cluster.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 0}, res.Component)

	res, err = cluster.Hamming(labels, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestHamming_Errors(t *testing.T) {
	_, err := cluster.Hamming([]cluster.Label{8}, 3)
	assert.ErrorIs(t, err, cluster.ErrLabelTooWide)
	_, err = cluster.Hamming(nil, 0)
	assert.ErrorIs(t, err, cluster.ErrBadWidth)
	_, err = cluster.Hamming(nil, 4, cluster.WithMaxDistance(-2))
	assert.ErrorIs(t, err, cluster.ErrBadDistance)
}

func TestHamming_Empty(t *testing.T) {
	res, err := cluster.Hamming(nil, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Component)
}

// TestHamming_MatchesPairwise compares the mask probing against an O(n²)
// pairwise union on random labels.
func TestHamming_MatchesPairwise(t *testing.T) {
	r := rand.New(rand.NewSource(51))
	for trial := 0; trial < 15; trial++ {
		const width = 10
		n := 20 + r.Intn(150)
		labels := make([]cluster.Label, n)
		for i := range labels {
			labels[i] = cluster.Label(r.Intn(1 << width))
		}
		d := r.Intn(3)

		res, err := cluster.Hamming(labels, width, cluster.WithMaxDistance(d))
		require.NoError(t, err)

		f := dsu.New(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cluster.Distance(labels[i], labels[j]) <= d {
					f.Union(i, j)
				}
			}
		}
		assert.Equal(t, f.Labels(), res.Component, "trial %d (d=%d)", trial, d)
	}
}

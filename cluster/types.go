package cluster

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Sentinel errors for clustering.
var (
	// ErrNilGraph is returned when a nil graph is passed to KClustering.
	ErrNilGraph = errors.New("cluster: graph is nil")

	// ErrInvalidK indicates k is outside 1..V.
	ErrInvalidK = errors.New("cluster: k must lie in 1..V")

	// ErrDisconnected indicates the graph has more than k connected
	// components, so k clusters cannot be reached by merging.
	ErrDisconnected = errors.New("cluster: too many components for k")

	// ErrBadWidth indicates a label width outside 1..64.
	ErrBadWidth = errors.New("cluster: label width must lie in 1..64")

	// ErrLabelTooWide indicates a label with a bit set at or above width.
	ErrLabelTooWide = errors.New("cluster: label exceeds width")

	// ErrBadDistance indicates a negative Hamming distance.
	ErrBadDistance = errors.New("cluster: distance must be non-negative")

	// ErrTooManyMasks indicates the flip-mask set would be impractically large.
	ErrTooManyMasks = errors.New("cluster: too many flip masks")
)

// Label is a bit-vector node label; bit width-1 is the first bit written.
type Label uint64

// ParseLabel reads a label written most significant bit first, either as
// separate tokens ("0 1 1") or one run ("011"). It returns the label and
// its width.
func ParseLabel(s string) (Label, int, error) {
	digits := strings.Join(strings.Fields(s), "")
	if len(digits) == 0 || len(digits) > 64 {
		return 0, 0, fmt.Errorf("%w: %d bits in %q", ErrBadWidth, len(digits), s)
	}
	var l Label
	for _, c := range digits {
		switch c {
		case '0':
			l <<= 1
		case '1':
			l = l<<1 | 1
		default:
			return 0, 0, fmt.Errorf("cluster: invalid bit %q in %q", c, s)
		}
	}

	return l, len(digits), nil
}

// Format renders l as width binary digits, most significant first.
func (l Label) Format(width int) string {
	return fmt.Sprintf("%0*b", width, uint64(l))
}

// Distance returns the Hamming distance between a and b.
func Distance(a, b Label) int {
	return bits.OnesCount64(uint64(a ^ b))
}

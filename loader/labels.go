package loader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphkit/cluster"
)

// ReadLabels parses an "n width" header followed by n bit labels, returning
// the labels in file order and their width.
//
// Errors:
//   - ErrSyntax for a malformed header or label, or a label of another width.
//   - ErrCountMismatch if the body holds a different number of labels.
func ReadLabels(r io.Reader) ([]cluster.Label, int, error) {
	lr := newLineReader(r)
	h, err := lr.header(2)
	if err != nil {
		return nil, 0, err
	}
	if h.m < 0 {
		return nil, 0, lr.syntaxf("header needs \"n width\"")
	}
	width := h.m

	labels := make([]cluster.Label, 0, h.n)
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			break
		}
		l, w, err := cluster.ParseLabel(text)
		if err != nil {
			return nil, 0, lr.syntaxf("%v", err)
		}
		if w != width {
			return nil, 0, lr.syntaxf("label has %d bits, header says %d", w, width)
		}
		labels = append(labels, l)
	}
	if len(labels) != h.n {
		return nil, 0, fmt.Errorf("%w: header declares %d labels, read %d", ErrCountMismatch, h.n, len(labels))
	}

	return labels, width, nil
}

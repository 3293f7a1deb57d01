package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrSyntax reports a malformed line.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrCountMismatch reports a header count that disagrees with the body.
	ErrCountMismatch = errors.New("loader: header count mismatch")
)

// maxLine bounds a single input line; adjacency rows of dense graphs get long.
const maxLine = 16 << 20

// lineReader yields trimmed content lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	return &lineReader{sc: sc}
}

// next returns the next non-blank, non-comment line. ok is false at EOF.
func (lr *lineReader) next() (text string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		text = strings.TrimSpace(lr.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return text, true, nil
	}
	if err := lr.sc.Err(); err != nil {
		return "", false, fmt.Errorf("loader: line %d: %w", lr.line+1, err)
	}

	return "", false, nil
}

// syntaxf wraps ErrSyntax with the current line number.
func (lr *lineReader) syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, lr.line, fmt.Sprintf(format, args...))
}

func (lr *lineReader) vertex(tok string) (core.VertexID, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, lr.syntaxf("bad vertex %q", tok)
	}
	return core.VertexID(v), nil
}

func (lr *lineReader) weight(tok string) (int64, error) {
	w, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, lr.syntaxf("bad weight %q", tok)
	}
	return w, nil
}

// header is a parsed "n [m]" line; m < 0 when absent.
type header struct {
	n, m int
}

func (lr *lineReader) header(maxFields int) (header, error) {
	text, ok, err := lr.next()
	if err != nil {
		return header{}, err
	}
	if !ok {
		return header{}, lr.syntaxf("missing header")
	}
	f := strings.Fields(text)
	if len(f) > maxFields {
		return header{}, lr.syntaxf("header %q has %d fields, want at most %d", text, len(f), maxFields)
	}
	h := header{m: -1}
	for i, tok := range f {
		x, err := strconv.Atoi(tok)
		if err != nil || x < 0 {
			return header{}, lr.syntaxf("bad header count %q", tok)
		}
		if i == 0 {
			h.n = x
		} else {
			h.m = x
		}
	}

	return h, nil
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// begin creates the builder and, with a header, registers declared vertices.
func begin(lr *lineReader, o Options, maxFields int) (*core.Builder, header, error) {
	b := core.NewBuilder(o.Graph...)
	h := header{m: -1}
	if !o.Header {
		return b, h, nil
	}
	h, err := lr.header(maxFields)
	if err != nil {
		return nil, h, err
	}
	for i := 0; i < h.n; i++ {
		b.AddVertex(o.Base + core.VertexID(i))
	}

	return b, h, nil
}

// ReadEdgeList parses "u v [w]" lines into a Graph.
//
// Errors:
//   - ErrSyntax for malformed lines (wrong field count, bad numbers).
//   - ErrCountMismatch if a header edge count disagrees with the body.
//   - core.ErrLoopNotAllowed / core.ErrMultiEdgeNotAllowed, with the line number.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	lr := newLineReader(r)
	b, h, err := begin(lr, o, 2)
	if err != nil {
		return nil, err
	}

	edges := 0
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		f := strings.Fields(text)
		if len(f) != 2 && len(f) != 3 {
			return nil, lr.syntaxf("want \"u v [w]\", got %q", text)
		}
		u, err := lr.vertex(f[0])
		if err != nil {
			return nil, err
		}
		v, err := lr.vertex(f[1])
		if err != nil {
			return nil, err
		}
		var w int64
		if len(f) == 3 {
			if w, err = lr.weight(f[2]); err != nil {
				return nil, err
			}
		}
		if err := b.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", lr.line, err)
		}
		edges++
	}
	if h.m >= 0 && h.m != edges {
		return nil, fmt.Errorf("%w: header declares %d edges, read %d", ErrCountMismatch, h.m, edges)
	}

	return b.Build(), nil
}

// listing tracks which row first listed an undirected pair and how many of
// its listings still await the mirror from the other endpoint's row.
type listing struct {
	row  core.VertexID
	open int
}

// ReadAdjacency parses "v n1,w1 n2,w2 ..." (or unweighted "v n1 n2 ...")
// rows into a Graph. A row with only v registers an isolated vertex.
//
// Undirected files usually list every edge under both endpoints. A pair
// first added from u's row is skipped once when v's row lists it back, so
// the first listing decides the weight whatever the row order. A repeat
// within one row goes to the builder and is rejected unless multi-edges are
// enabled. A header holds only the row count "n".
func ReadAdjacency(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	lr := newLineReader(r)
	b, h, err := begin(lr, o, 1)
	if err != nil {
		return nil, err
	}

	// normalized pair -> row that first listed it and listings not yet mirrored
	origin := make(map[[2]core.VertexID]*listing)
	rows := 0
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		f := strings.Fields(text)
		v, err := lr.vertex(f[0])
		if err != nil {
			return nil, err
		}
		b.AddVertex(v)
		rows++
		for _, tok := range f[1:] {
			nb, ws, weighted := strings.Cut(tok, ",")
			n, err := lr.vertex(nb)
			if err != nil {
				return nil, err
			}
			var w int64
			if weighted {
				if w, err = lr.weight(ws); err != nil {
					return nil, err
				}
			}
			key := [2]core.VertexID{min(v, n), max(v, n)}
			l := origin[key]
			if !b.Directed() && l != nil && l.row != v && l.open > 0 {
				l.open--
				continue
			}
			if err := b.AddEdge(v, n, w); err != nil {
				return nil, fmt.Errorf("loader: line %d: %w", lr.line, err)
			}
			switch {
			case b.Directed():
			case l == nil || l.open == 0:
				origin[key] = &listing{row: v, open: 1}
			case l.row == v:
				l.open++
			}
		}
	}
	if o.Header && h.n != rows {
		return nil, fmt.Errorf("%w: header declares %d rows, read %d", ErrCountMismatch, h.n, rows)
	}

	return b.Build(), nil
}

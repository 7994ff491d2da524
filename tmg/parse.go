// SPDX-License-Identifier: MIT
// Package: tmg
//
// Purpose:
//   - Stream a TMG "simple" file line by line into a Graph.
//
// Contract:
//   - Exactly 3 tokens per vertex and edge line, 2 on the counts line.
//   - V must be > 0 and E >= 0.
//   - No partial Graph is ever returned alongside an error.

package tmg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadapsp/geo"
	"github.com/katalvlaran/roadapsp/matrix"
)

// Header is the only accepted first line (compared field by field).
const Header = "TMG 1.0 simple"

// MaxVertices bounds V; the dense matrix needs 8·V² bytes.
const MaxVertices = 1 << 14

// preallocCap bounds slice capacity taken from the counts line.
const preallocCap = 1024

var headerFields = strings.Fields(Header)

// Edge is one undirected input edge as it appeared in the file.
type Edge struct {
	From, To int
	Label    string
	Meters   float64
}

// Graph is a parsed TMG file.
type Graph struct {
	Labels []string
	Coords []geo.Coord
	Edges  []Edge
	Matrix *matrix.WeightedAdjacency
}

// VertexIndex returns the id of the first vertex carrying label.
// Complexity: O(V).
func (g *Graph) VertexIndex(label string) (int, bool) {
	for i, l := range g.Labels {
		if l == label {
			return i, true
		}
	}

	return 0, false
}

// lineReader tracks the current 1-based line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
	text string
}

// next advances one line; ok is false at EOF or on a read error.
func (lr *lineReader) next() bool {
	if !lr.sc.Scan() {
		return false
	}
	lr.line++
	lr.text = lr.sc.Text()

	return true
}

// fail builds a FormatError for the current line.
func (lr *lineReader) fail(err error) error {
	return &FormatError{Line: lr.line, Text: lr.text, Err: err}
}

// eof reports a truncated input, or the scanner's own error if it had one.
func (lr *lineReader) eof(what string) error {
	if err := lr.sc.Err(); err != nil {
		return &FormatError{Line: lr.line + 1, Err: fmt.Errorf("reading %s: %w", what, err)}
	}

	return &FormatError{Line: lr.line + 1, Err: fmt.Errorf("missing %s: %w", what, ErrTruncated)}
}

// fields splits the current line and checks the token count.
func (lr *lineReader) fields(want int) ([]string, error) {
	f := strings.Fields(lr.text)
	if len(f) != want {
		return nil, lr.fail(fmt.Errorf("got %d, want %d: %w", len(f), want, ErrTokenCount))
	}

	return f, nil
}

// Parse reads a TMG graph from r.
//
// Errors: *FormatError wrapping ErrHeader, ErrTokenCount, ErrNumber,
// ErrTruncated, ErrTrailing, matrix.ErrInvalidSize or matrix.ErrOutOfRange.
// Complexity: O(V² + E) time (matrix allocation dominates), O(V²) memory.
func Parse(r io.Reader) (*Graph, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	// header
	if !lr.next() {
		return nil, lr.eof("header")
	}
	if !slices.Equal(strings.Fields(lr.text), headerFields) {
		return nil, lr.fail(ErrHeader)
	}

	// counts
	if !lr.next() {
		return nil, lr.eof("counts line")
	}
	f, err := lr.fields(2)
	if err != nil {
		return nil, err
	}
	nv, err := strconv.Atoi(f[0])
	if err != nil {
		return nil, lr.fail(fmt.Errorf("vertex count %q: %w", f[0], ErrNumber))
	}
	ne, err := strconv.Atoi(f[1])
	if err != nil {
		return nil, lr.fail(fmt.Errorf("edge count %q: %w", f[1], ErrNumber))
	}
	if nv <= 0 || ne < 0 {
		return nil, lr.fail(fmt.Errorf("V=%d E=%d: %w", nv, ne, matrix.ErrInvalidSize))
	}
	if nv > MaxVertices {
		return nil, lr.fail(fmt.Errorf("V=%d above %d: %w", nv, MaxVertices, matrix.ErrInvalidSize))
	}

	g := &Graph{
		Labels: make([]string, 0, min(nv, preallocCap)),
		Coords: make([]geo.Coord, 0, min(nv, preallocCap)),
		Edges:  make([]Edge, 0, min(ne, preallocCap)),
	}

	// vertices
	var lat, lng float64
	for i := 0; i < nv; i++ {
		if !lr.next() {
			return nil, lr.eof(fmt.Sprintf("vertex %d of %d", i, nv))
		}
		if f, err = lr.fields(3); err != nil {
			return nil, err
		}
		if lat, err = parseCoord(f[1]); err != nil {
			return nil, lr.fail(fmt.Errorf("latitude %q: %w", f[1], ErrNumber))
		}
		if lng, err = parseCoord(f[2]); err != nil {
			return nil, lr.fail(fmt.Errorf("longitude %q: %w", f[2], ErrNumber))
		}
		g.Labels = append(g.Labels, f[0])
		g.Coords = append(g.Coords, geo.Coord{Lat: lat, Lng: lng})
	}

	if g.Matrix, err = matrix.New(nv); err != nil {
		return nil, &FormatError{Err: err}
	}

	// edges
	var from, to int
	var m float64
	for i := 0; i < ne; i++ {
		if !lr.next() {
			return nil, lr.eof(fmt.Sprintf("edge %d of %d", i, ne))
		}
		if f, err = lr.fields(3); err != nil {
			return nil, err
		}
		if from, err = strconv.Atoi(f[0]); err != nil {
			return nil, lr.fail(fmt.Errorf("from %q: %w", f[0], ErrNumber))
		}
		if to, err = strconv.Atoi(f[1]); err != nil {
			return nil, lr.fail(fmt.Errorf("to %q: %w", f[1], ErrNumber))
		}
		if from < 0 || from >= nv || to < 0 || to >= nv {
			return nil, lr.fail(fmt.Errorf("edge %d→%d with V=%d: %w", from, to, nv, matrix.ErrOutOfRange))
		}
		m = geo.Distance(g.Coords[from], g.Coords[to])
		if err = g.Matrix.AddEdge(from, to, m); err != nil {
			return nil, lr.fail(err)
		}
		if err = g.Matrix.AddEdge(to, from, m); err != nil {
			return nil, lr.fail(err)
		}
		g.Edges = append(g.Edges, Edge{From: from, To: to, Label: f[2], Meters: m})
	}

	// only blank lines may follow
	for lr.next() {
		if strings.TrimSpace(lr.text) != "" {
			return nil, lr.fail(ErrTrailing)
		}
	}
	if err = lr.sc.Err(); err != nil {
		return nil, &FormatError{Line: lr.line + 1, Err: err}
	}

	return g, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tmg.ParseFile(%s): %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("tmg.ParseFile(%s): %w", path, err)
	}

	return g, nil
}

// parseCoord reads a finite decimal-degree value; NaN and ±Inf are rejected.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNumber
	}

	return v, nil
}

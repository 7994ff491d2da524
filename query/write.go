// SPDX-License-Identifier: MIT

package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadapsp/apsp"
	"github.com/katalvlaran/roadapsp/matrix"
)

const (
	pathSep   = "->"
	noPathTxt = "-"
)

// WriteAnswers prints one line per answer: "from to distance path".
//
//	0 1 4 0->3->1
//	0 5 +Inf -
//	0 9 error: Result.Distance: ...
//
// The path column is "-" when there is no path or predecessors were off.
func WriteAnswers(w io.Writer, answers []Answer) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		switch {
		case a.Err != nil && !errors.Is(a.Err, apsp.ErrNoPath):
			fmt.Fprintf(bw, "%d %d error: %v\n", a.From, a.To, a.Err)
		default:
			fmt.Fprintf(bw, "%d %d %s %s\n", a.From, a.To, formatFloat(a.Distance), formatPath(a.Path))
		}
	}

	return bw.Flush()
}

// WriteMatrix prints m one row per line with tab-separated columns.
func WriteMatrix(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("query.WriteMatrix: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	cols := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("query.WriteMatrix: %w", err)
		}
		for j, v := range row {
			cols[j] = formatFloat(v)
		}
		bw.WriteString(strings.Join(cols, "\t"))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatPath(p []int) string {
	if len(p) == 0 {
		return noPathTxt
	}
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, pathSep)
}

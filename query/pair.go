// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPair indicates a pair spec that is not two non-negative integers.
var ErrBadPair = errors.New("query: malformed pair")

// Pair is one ordered from→to question.
type Pair struct {
	From, To int
}

func (p Pair) String() string { return fmt.Sprintf("%d→%d", p.From, p.To) }

// ParsePairs reads specs of the form "from to" (any whitespace; a single
// comma is also accepted as separator). Indices are validated against the
// graph later, by Resolve.
func ParsePairs(specs []string) ([]Pair, error) {
	out := make([]Pair, 0, len(specs))
	for i, s := range specs {
		f := strings.Fields(strings.ReplaceAll(s, ",", " "))
		if len(f) != 2 {
			return nil, fmt.Errorf("query.ParsePairs[%d] %q: %w", i, s, ErrBadPair)
		}
		from, err1 := strconv.Atoi(f[0])
		to, err2 := strconv.Atoi(f[1])
		if err1 != nil || err2 != nil || from < 0 || to < 0 {
			return nil, fmt.Errorf("query.ParsePairs[%d] %q: %w", i, s, ErrBadPair)
		}
		out = append(out, Pair{From: from, To: to})
	}

	return out, nil
}

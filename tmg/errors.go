// SPDX-License-Identifier: MIT

package tmg

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader indicates the first line is not "TMG 1.0 simple".
	ErrHeader = errors.New("tmg: bad header")

	// ErrTokenCount indicates a line with the wrong number of fields.
	ErrTokenCount = errors.New("tmg: wrong token count")

	// ErrNumber indicates a field that should be numeric is not.
	ErrNumber = errors.New("tmg: malformed number")

	// ErrTruncated indicates the input ended before all declared lines were read.
	ErrTruncated = errors.New("tmg: unexpected end of input")

	// ErrTrailing indicates non-blank content after the last declared edge.
	ErrTrailing = errors.New("tmg: trailing content")
)

// FormatError reports where a TMG file is malformed.
type FormatError struct {
	Line int    // 1-based; 0 when the failure is not tied to a line
	Text string // offending line as read
	Err  error  // sentinel or wrapped matrix error
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *FormatError) Unwrap() error { return e.Err }

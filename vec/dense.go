// SPDX-License-Identifier: MIT
// Package vec: Dense, a concrete row-major matrix over any numeric.Real
// scalar, storing elements in a flat slice for cache friendliness. It is
// the carrier for benchmark rotation matrices, so construction is strict:
// data is validated once, then the value is treated as immutable.

package vec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cec2005/numeric"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Real values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T numeric.Real] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r·c) time and memory.
func NewDense[T numeric.Real](rows, cols int) (*Dense[T], error) {
	// Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("New", rows, cols, ErrBadShape)
	}

	// Allocate flat slice and return.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense from row slices.
// Stage 1 (Validate): non-empty, rectangular, every entry finite.
// Stage 2 (Copy): rows are copied; the input remains caller-owned.
// Returns ErrBadShape for empty/ragged input and ErrNaNInf for
// non-finite entries.
// Complexity: O(r·c).
func FromRows[T numeric.Real](rows [][]T) (*Dense[T], error) {
	// Reject empty input outright.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf("FromRows", len(rows), 0, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		// Every row must match the width of the first.
		if len(row) != c {
			return nil, denseErrorf("FromRows", i, len(row), ErrBadShape)
		}
		for j, v := range row {
			// Strict ingestion: no NaN/Inf may enter a rotation matrix.
			if !numeric.IsFinite(v) {
				return nil, denseErrorf("FromRows", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T numeric.Real](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Non-finite v is rejected, keeping
// the whole-matrix finiteness invariant established at construction.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if !numeric.IsFinite(v) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(r·c).
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// row returns the i-th row as a sub-slice of the backing store.
// Internal fast path for Rotate; callers must not retain or mutate it.
func (m *Dense[T]) row(i int) []T { return m.data[i*m.c : (i+1)*m.c] }

// String renders the matrix row by row, mainly for debugging and tests.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		fmt.Fprintf(&sb, "%v\n", m.row(i))
	}

	return sb.String()
}

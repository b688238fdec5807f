// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Callers match with errors.Is; context is added with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into BuildDenseWeights.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that rows passed to FromRows do not form an n×n matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that FromRows received a matrix with w[i][j] != w[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrReservedWeight indicates an edge weight equal to Infinity, which would be
	// indistinguishable from a missing edge.
	ErrReservedWeight = errors.New("matrix: weight collides with the Infinity sentinel")
)

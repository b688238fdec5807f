// SPDX-License-Identifier: MIT

package graphio

import (
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
)

func TestCountValidator(t *testing.T) {
	assert.NoError(t, countValidator("0"))
	assert.NoError(t, countValidator(" 12 "))
	assert.ErrorIs(t, countValidator("-1"), ErrFormat)
	assert.ErrorIs(t, countValidator("ten"), ErrFormat)
	assert.ErrorIs(t, countValidator(3), ErrFormat, "non-string answers are rejected")
}

func TestEdgeValidator(t *testing.T) {
	validate := edgeValidator(1, 3)
	assert.NoError(t, validate("1 3 7"))
	assert.NoError(t, validate("2 2 -4"), "loops are accepted")
	assert.ErrorIs(t, validate("0 2 1"), core.ErrInvalidEdge)
	assert.ErrorIs(t, validate("1 4 1"), core.ErrInvalidEdge)
	assert.ErrorIs(t, validate("1 2"), ErrFormat)
	assert.ErrorIs(t, validate("1 2 x"), ErrFormat)
}

func TestParseEdgeLine(t *testing.T) {
	e, err := parseEdgeLine("\t5 6   -2", 1)
	assert.NoError(t, err)
	assert.Equal(t, core.Edge{Src: 4, Dst: 5, Weight: -2}, e)
}

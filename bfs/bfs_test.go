// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path4 is 0-1-2-3 with a loop on 2 and a separate vertex 4.
func path4() *core.Graph {
	return core.MustGraph(5, []core.Edge{
		{Src: 0, Dst: 1, Weight: 9},
		{Src: 2, Dst: 1, Weight: 1},
		{Src: 2, Dst: 2, Weight: 7},
		{Src: 2, Dst: 3, Weight: 3},
	})
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(path4(), 5)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(core.MustGraph(0, nil), 0)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(path4(), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndParents(t *testing.T) {
	res, err := bfs.BFS(path4(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2, 3}, res.Order)
	assert.Equal(t, []int{1, 0, 1, 2, bfs.Unreached}, res.Depth)
	assert.Equal(t, []int{1, bfs.Unreached, 1, 2, bfs.Unreached}, res.Parent)
	assert.True(t, res.Reached(3))
	assert.False(t, res.Reached(4))
	assert.False(t, res.Reached(-1))
	assert.Equal(t, []int{4}, res.Unvisited())

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(path4(), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{2, 3, 4}, res.Unvisited())
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(path4(), 0, bfs.WithOnVisit(func(v, _ int) error {
		seen = append(seen, v)
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path4(), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	labels, count, err := bfs.Components(path4())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, labels)

	labels, count, err = bfs.Components(core.MustGraph(3, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 1, 2}, labels)

	labels, count, err = bfs.Components(core.MustGraph(0, nil))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, labels)

	_, _, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
